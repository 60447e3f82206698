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
package numfield

import (
	"math/big"
	"testing"
)

// sqrt2 returns the minimal polynomial x^2 - 2 (stored as non-leading
// coefficients [-2, 0]).
func sqrt2() MinPoly {
	c0 := *big.NewRat(-2, 1)
	c1 := *big.NewRat(0, 1)

	return NewMinPoly(c0, c1)
}

func Test_NumField_01(t *testing.T) {
	m := sqrt2()
	alpha := m.Gen()
	//
	sq := m.Mul(alpha, alpha)

	r, ok := sq.AsRat()
	if !ok || r.Cmp(big.NewRat(2, 1)) != 0 {
		t.Errorf("expected alpha^2 == 2, got %v (ok=%v)", r, ok)
	}
}

func Test_NumField_02(t *testing.T) {
	m := sqrt2()
	alpha := m.Gen()
	one := m.FromRat(big.NewRat(1, 1))
	//
	sum := m.Add(one, alpha)
	diff := m.Sub(sum, alpha)

	if !diff.Equal(one) {
		t.Error("(1+alpha)-alpha should equal 1")
	}
}

func Test_NumField_03(t *testing.T) {
	m := sqrt2()
	alpha := m.Gen()
	//
	inv := m.Inverse(alpha)
	prod := m.Mul(alpha, inv)

	r, ok := prod.AsRat()
	if !ok || r.Cmp(big.NewRat(1, 1)) != 0 {
		t.Errorf("alpha * alpha^-1 should be 1, got %v", r)
	}
}

func Test_NumField_04(t *testing.T) {
	m := sqrt2()
	alpha := m.Gen()
	//
	cubed := m.Pow(alpha, 3)
	expect := m.Scale(alpha, big.NewRat(2, 1))

	if !cubed.Equal(expect) {
		t.Error("alpha^3 should equal 2*alpha")
	}
}

func Test_NumField_05(t *testing.T) {
	m := sqrt2()

	if _, ok := m.Gen().AsRat(); ok {
		t.Error("alpha should not be recognised as rational")
	}
}
