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

// A three-generator MULTI value whose representation only actually uses two
// of its three generators should condense down to the smaller two-generator
// MULTI field, not merely pass through or collapse all the way to QQ/NF.
func Test_Reduce_01(t *testing.T) {
	ctx := NewContext()

	sqrt2 := ctx.InternNF(numfield.NewMinPoly(*big.NewRat(-2, 1), *big.NewRat(0, 1)))
	sqrt3 := ctx.InternNF(numfield.NewMinPoly(*big.NewRat(-3, 1), *big.NewRat(0, 1)))
	pi := ctx.InternFunc(Ext{Head: HeadPi})

	multi := ctx.InternField(Field{Kind: KindMulti, Gens: []FieldID{sqrt2, sqrt3, pi}})
	gens := generatorList(ctx, multi)

	var varOf = map[FieldID]ring.Var{}
	for i, g := range gens {
		varOf[g] = ring.Var(i)
	}

	// Build sqrt2 + pi, deliberately never referencing sqrt3's variable.
	num := ring.FromGen(varOf[sqrt2]).Add(ring.FromGen(varOf[pi]))
	v := Value{Field: multi, Repr: ring.Frac{Num: num, Den: ring.One}}

	reduced := Reduce(ctx, v)

	rf := ctx.Field(reduced.Field)
	if rf.Kind != KindMulti || len(rf.Gens) != 2 {
		t.Fatalf("expected condensation to a two-generator MULTI field, got kind=%v gens=%v", rf.Kind, rf.Gens)
	}

	var sawSqrt2, sawPi, sawSqrt3 bool

	for _, g := range rf.Gens {
		switch g {
		case sqrt2:
			sawSqrt2 = true
		case pi:
			sawPi = true
		case sqrt3:
			sawSqrt3 = true
		}
	}

	if !sawSqrt2 || !sawPi || sawSqrt3 {
		t.Errorf("condensed field should keep exactly {sqrt2, pi}, got %v", rf.Gens)
	}
}

// Condensation is idempotent: reducing an already-reduced value is a no-op.
func Test_Reduce_02(t *testing.T) {
	ctx := NewContext()

	once := Reduce(ctx, Add(ctx, Pi(ctx), One()))
	twice := Reduce(ctx, once)

	if once.Field != twice.Field || !once.Equal(twice) {
		t.Error("reducing an already-reduced value should be a no-op")
	}
}

// A FUNC/MULTI value whose representation cancels down to a bare rational
// condenses all the way to QQField.
func Test_Reduce_03(t *testing.T) {
	ctx := NewContext()

	z := Pi(ctx)
	v := Sub(ctx, Add(ctx, z, One()), z)

	if v.Field != QQField || !v.Equal(One()) {
		t.Errorf("(pi+1)-pi should condense to the rational 1, got field=%d repr=%v", v.Field, v.Repr)
	}
}
