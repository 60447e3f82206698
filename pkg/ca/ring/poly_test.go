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
package ring

import (
	"math/big"
	"testing"
)

// Adding 1 to x should be structurally identical to adding x to 1.
func Test_Poly_01(t *testing.T) {
	lhs := FromGen(0).Add(One)
	rhs := One.Add(FromGen(0))
	//
	assertEqual(t, lhs, rhs)
}

// Adding then subtracting the same term is equivalent to doing nothing.
func Test_Poly_02(t *testing.T) {
	lhs := FromGen(0).Add(FromGen(1)).Sub(FromGen(1))
	rhs := FromGen(0)
	//
	assertEqual(t, lhs, rhs)
}

func Test_Poly_03(t *testing.T) {
	var zero Poly
	if !zero.IsZero() {
		t.Error("zero-value Poly is not recognised as zero")
	}
}

func Test_Poly_04(t *testing.T) {
	x0 := FromGen(0)

	v, ok := x0.IsGen()
	if !ok || v != 0 {
		t.Error("bare generator not recognised by IsGen")
	}

	if _, ok := One.IsGen(); ok {
		t.Error("constant wrongly recognised as a generator")
	}
}

func Test_Poly_05(t *testing.T) {
	c, ok := FromInt64(7).AsConstant()
	if !ok || c.Cmp(big.NewInt(7)) != 0 {
		t.Error("constant polynomial not recognised")
	}

	if _, ok := FromGen(0).AsConstant(); ok {
		t.Error("non-constant wrongly recognised as constant")
	}
}

// Renaming x1 -> x0 after computing x0+x1 over {x0,x1} should match directly
// building 2*x0 over the single-generator ring.
func Test_Poly_06(t *testing.T) {
	p := FromGen(0).Add(FromGen(1))
	renamed := p.Rename([]Var{0, 0})
	expect := FromGen(0).MulScalar(big.NewInt(2))
	//
	assertEqual(t, renamed, expect)
}

func Test_Poly_07(t *testing.T) {
	used := FromGen(0).Add(FromGen(2)).UsedVars()
	if len(used) != 2 || used[0] != 0 || used[1] != 2 {
		t.Errorf("unexpected used variable set: %v", used)
	}
}

func assertEqual(t *testing.T, lhs Poly, rhs Poly) {
	t.Helper()

	if !lhs.Equal(rhs) {
		t.Errorf("polynomials not equal: %v vs %v", lhs, rhs)
	}
}
