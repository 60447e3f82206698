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
)

// exp(0) = 1.
func Test_Exp_01(t *testing.T) {
	ctx := NewContext()

	if !Exp(ctx, Zero()).Equal(One()) {
		t.Error("exp(0) should be exactly 1")
	}
}

// exp(log(z)) = z for a symbolic z.
func Test_Exp_02(t *testing.T) {
	ctx := NewContext()
	z := Pi(ctx)

	got := Exp(ctx, Log(ctx, z))
	if !got.Equal(z) {
		t.Errorf("exp(log(z)) should recover z, got field=%d", got.Field)
	}
}

// exp(log(z)/2) = z^(1/2), unresolvable in general, so this must report
// Unknown rather than a wrong or over-confident value.
func Test_Exp_03(t *testing.T) {
	ctx := NewContext()
	z := Pi(ctx)
	half := FromRat(big.NewRat(1, 2))

	arg := Mul(ctx, half, Log(ctx, z))
	got := Exp(ctx, arg)

	if got.Special != UnknownValue {
		t.Errorf("expected an Unknown result for a non-extractable fractional power, got %+v", got)
	}
}

// exp((1/2)*pi*i) = i.
func Test_Exp_04(t *testing.T) {
	ctx := NewContext()

	half := FromRat(big.NewRat(1, 2))
	piI := Mul(ctx, Pi(ctx), I(ctx))
	arg := Mul(ctx, half, piI)

	got := Exp(ctx, arg)
	want := I(ctx)

	if got.Field != want.Field || !got.Equal(want) {
		t.Errorf("exp((1/2)*pi*i) should equal i, got field=%d repr=%v", got.Field, got.Repr)
	}
}

// exp(pi*i) = -1.
func Test_Exp_05(t *testing.T) {
	ctx := NewContext()

	piI := Mul(ctx, Pi(ctx), I(ctx))
	got := Exp(ctx, piI)

	if !got.Equal(NegOne()) {
		t.Errorf("exp(pi*i) should equal -1, got %+v", got)
	}
}

// exp of a fresh transcendental value with no special-case match produces a
// FUNC(Exp(...)) generator, and applying Exp again to the same argument
// reuses that same field via interning.
func Test_Exp_06(t *testing.T) {
	ctx := NewContext()
	z := Pi(ctx)

	a := Exp(ctx, Add(ctx, z, One()))
	b := Exp(ctx, Add(ctx, z, One()))

	if a.Field != b.Field {
		t.Error("two equal exp(...) calls should intern to the same FUNC field")
	}
}

// exp((1/2)*log(3)) = 3^(1/2), landing in the number field defined by
// y^2-3: a rational base raised to a non-extractable rational power adjoins
// the missing root as a new algebraic number rather than reporting Unknown.
func Test_Exp_07(t *testing.T) {
	ctx := NewContext()

	three := FromRat(big.NewRat(3, 1))
	half := FromRat(big.NewRat(1, 2))

	arg := Mul(ctx, half, Log(ctx, three))
	got := Exp(ctx, arg)

	rf := ctx.Field(got.Field)
	if rf.Kind != KindNF || rf.MinPoly.Degree() != 2 {
		t.Fatalf("expected a degree-2 NF result for 3^(1/2), got kind=%v", rf.Kind)
	}

	if !Mul(ctx, got, got).Equal(three) {
		t.Errorf("squaring exp((1/2)*log(3)) should recover 3, got %+v", got)
	}
}

// exp((2/3)*pi*i) gives a primitive cube root of unity in NF(y^2+y+1).
func Test_Exp_08(t *testing.T) {
	ctx := NewContext()

	twoThirds := FromRat(big.NewRat(2, 3))
	piI := Mul(ctx, Pi(ctx), I(ctx))
	arg := Mul(ctx, twoThirds, piI)

	got := Exp(ctx, arg)

	rf := ctx.Field(got.Field)
	if rf.Kind != KindNF || rf.MinPoly.Degree() != 2 {
		t.Fatalf("expected a degree-2 NF result for exp((2/3)*pi*i), got kind=%v", rf.Kind)
	}

	one := big.NewRat(1, 1)
	if len(rf.MinPoly.Coeffs) != 2 || rf.MinPoly.Coeffs[0].Cmp(one) != 0 || rf.MinPoly.Coeffs[1].Cmp(one) != 0 {
		t.Errorf("expected minimal polynomial y^2+y+1, got coeffs %v", rf.MinPoly.Coeffs)
	}

	// A primitive cube root of unity cubes to exactly 1.
	cubed := Mul(ctx, Mul(ctx, got, got), got)
	if !cubed.Equal(One()) {
		t.Errorf("exp((2/3)*pi*i) cubed should equal 1, got %+v", cubed)
	}
}
