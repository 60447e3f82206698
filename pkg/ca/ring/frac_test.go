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

func Test_Frac_01(t *testing.T) {
	f := Frac{FromInt64(6), FromInt64(4)}.Reduce()
	expect := Frac{FromInt64(3), FromInt64(2)}
	//
	if !f.Num.Equal(expect.Num) || !f.Den.Equal(expect.Den) {
		t.Errorf("content reduction failed: got %v/%v", f.Num, f.Den)
	}
}

// Reduction is idempotent.
func Test_Frac_02(t *testing.T) {
	f := Frac{FromInt64(6), FromInt64(4)}.Reduce()
	g := f.Reduce()
	//
	if !f.Num.Equal(g.Num) || !f.Den.Equal(g.Den) {
		t.Error("ideal reduction is not idempotent")
	}
}

func Test_Frac_03(t *testing.T) {
	f := Frac{FromGen(0).MulScalar(big.NewInt(3)), FromInt64(2)}

	c, v, ok := f.IsGen()
	if !ok || v != 0 || c.Cmp(big.NewRat(3, 2)) != 0 {
		t.Errorf("expected 3/2 * gen(0), got c=%v v=%v ok=%v", c, v, ok)
	}
}

func Test_Frac_04(t *testing.T) {
	if !FracFromInt(0).IsZero() {
		t.Error("0/1 should be zero")
	}

	if !FracFromInt(5).Div(FracFromInt(5)).IsOne() {
		t.Error("5/5 should be one")
	}
}

func Test_Frac_05(t *testing.T) {
	f := FracFromGen(0)
	renamed := f.Rename([]Var{1})
	//
	if !renamed.Equal(FracFromGen(1)) {
		t.Error("fraction renaming failed")
	}
}
