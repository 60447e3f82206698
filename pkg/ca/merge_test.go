// Copyright The Calcium Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ca

import (
	"math/big"
	"testing"

	"github.com/jiwenfei/calcium/pkg/ca/numfield"
	"github.com/jiwenfei/calcium/pkg/ca/ring"
)

// Merging a field with itself is the identity.
func Test_Merge_01(t *testing.T) {
	ctx := NewContext()
	nf := ctx.InternNF(numfield.NewMinPoly(*big.NewRat(-2, 1), *big.NewRat(0, 1)))

	common, liftA, liftB := Merge(ctx, nf, nf)
	if common != nf {
		t.Error("merging a field with itself should return that same field")
	}

	f := ring.FracFromGen(0)
	if !liftA(f).Equal(f) || !liftB(f).Equal(f) {
		t.Error("self-merge lift should be the identity")
	}
}

// Merging two distinct NF fields produces a two-generator MULTI field.
func Test_Merge_02(t *testing.T) {
	ctx := NewContext()
	sqrt2 := ctx.InternNF(numfield.NewMinPoly(*big.NewRat(-2, 1), *big.NewRat(0, 1)))
	sqrt3 := ctx.InternNF(numfield.NewMinPoly(*big.NewRat(-3, 1), *big.NewRat(0, 1)))

	common, _, _ := Merge(ctx, sqrt2, sqrt3)

	fld := ctx.Field(common)
	if fld.Kind != KindMulti || len(fld.Gens) != 2 {
		t.Fatalf("expected a two-generator MULTI field, got %v", fld)
	}
}

// Merging Pi and I and then extracting the product recovers (1/1)*pi*i.
func Test_Merge_03(t *testing.T) {
	ctx := NewContext()

	pi := Pi(ctx)
	i := I(ctx)

	prod := Mul(ctx, pi, i)

	p, q, ok := AsFmpqPiI(ctx, prod)
	if !ok || p != 1 || q != 1 {
		t.Errorf("expected to recognise pi*i as (1/1)*pi*i, got p=%d q=%d ok=%v", p, q, ok)
	}
}
