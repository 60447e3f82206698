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
package qqbar

import (
	"math/big"
	"testing"
)

// Phi_1(x) = x - 1.
func Test_Qqbar_01(t *testing.T) {
	p := cyclotomic(1)
	if len(p.coeffs) != 2 || p.coeffs[0].Cmp(big.NewInt(-1)) != 0 || p.coeffs[1].Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Phi_1 should be x-1, got %v", p.coeffs)
	}
}

// Phi_4(x) = x^2 + 1, the minimal polynomial of i.
func Test_Qqbar_02(t *testing.T) {
	p := cyclotomic(4)
	if len(p.coeffs) != 3 {
		t.Fatalf("expected degree-2 polynomial, got %v", p.coeffs)
	}

	if p.coeffs[0].Cmp(big.NewInt(1)) != 0 || p.coeffs[1].Sign() != 0 || p.coeffs[2].Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Phi_4 should be x^2+1, got %v", p.coeffs)
	}
}

// Phi_3(x) = x^2 + x + 1.
func Test_Qqbar_03(t *testing.T) {
	p := cyclotomic(3)
	if len(p.coeffs) != 3 {
		t.Fatalf("expected degree-2 polynomial, got %v", p.coeffs)
	}

	for i := 0; i < 3; i++ {
		if p.coeffs[i].Cmp(big.NewInt(1)) != 0 {
			t.Errorf("Phi_3 should be x^2+x+1, got %v", p.coeffs)
		}
	}
}

// exp(i*pi) = -1: p/q=1/1, 2q=2, gcd(1,2)=1, m=2, Phi_2(x)=x+1, so the
// resulting field is degree 1 and the generator collapses to the rational
// value -1.
func Test_Qqbar_04(t *testing.T) {
	mp, elt := ExpPiI(1, 1)

	if mp.Degree() != 1 || mp.Coeffs[0].Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("expected minimal polynomial x+1, got degree %d coeffs %v", mp.Degree(), mp.Coeffs)
	}

	r, ok := elt.AsRat()
	if !ok || r.Cmp(big.NewRat(-1, 1)) != 0 {
		t.Errorf("exp(i*pi) should collapse to the rational -1, got %v (ok=%v)", r, ok)
	}
}

// exp(i*pi/2) = i, a root of x^2+1.
func Test_Qqbar_05(t *testing.T) {
	mp, _ := ExpPiI(1, 2)

	if mp.Degree() != 2 {
		t.Fatalf("expected degree-2 minimal polynomial for exp(i*pi/2), got degree %d", mp.Degree())
	}
}

// exp(i*pi/5) and exp(i*pi*3/5) both reduce to the same m=10 cyclotomic
// field (twoQ=10, gcd(1,10)=gcd(3,10)=1), but they are distinct primitive
// 10th roots of unity: returning the bare field generator regardless of p
// would make these indistinguishable.
func Test_Qqbar_06(t *testing.T) {
	mp1, e1 := ExpPiI(1, 5)
	mp3, e3 := ExpPiI(3, 5)

	if mp1.Degree() != 4 || mp3.Degree() != 4 {
		t.Fatalf("expected both to land in the degree-4 (m=10) cyclotomic field, got %d and %d", mp1.Degree(), mp3.Degree())
	}

	if e1.Equal(e3) {
		t.Error("exp(i*pi/5) and exp(i*pi*3/5) must be distinct roots of unity, got the same element")
	}

	if !mp1.Pow(e1, 3).Equal(e3) {
		t.Error("exp(i*pi*3/5) should equal exp(i*pi/5)^3")
	}

	if r, ok := mp1.Pow(e1, 10).AsRat(); !ok || r.Cmp(big.NewRat(1, 1)) != 0 {
		t.Error("exp(i*pi/5)^10 should collapse to the rational 1")
	}
}
