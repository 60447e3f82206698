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

// Package fingerprint provides a Schwartz-Zippel style randomised nonzero
// test for multivariate rational functions, used as a fast probabilistic
// upgrade from "unknown" to "definitely nonzero" when a structural check
// cannot decide whether a rational-function representation is exactly zero.
//
// Generator variables are assigned independent uniformly random elements of
// the bls12-377 scalar field and the numerator/denominator are evaluated
// there; a nonzero numerator residue at a random point implies, with
// overwhelming probability, that the numerator is not the identically-zero
// polynomial. The test never claims a value IS zero - only that it might be.
package fingerprint

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/jiwenfei/calcium/pkg/ca/ring"
)

// Element wraps fr.Element with value-receiver arithmetic.
type Element struct {
	fr.Element
}

// Add x + y.
func (x Element) Add(y Element) Element {
	var res fr.Element
	res.Add(&x.Element, &y.Element)

	return Element{res}
}

// Mul x * y.
func (x Element) Mul(y Element) Element {
	var res fr.Element
	res.Mul(&x.Element, &y.Element)

	return Element{res}
}

// IsZero holds when this is the additive identity.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// fromBigInt reduces an arbitrary-precision integer into the scalar field.
func fromBigInt(v *big.Int) Element {
	var e fr.Element
	e.SetBigInt(v)

	return Element{e}
}

// Assignment maps generator indices to random field elements, reused across
// both the numerator and denominator evaluation of a single check.
type Assignment map[ring.Var]Element

// RandomAssignment samples a fresh uniformly random scalar for every
// variable in vars, suitable for a single Schwartz-Zippel trial.
func RandomAssignment(vars []ring.Var) (Assignment, error) {
	a := make(Assignment, len(vars))

	for _, v := range vars {
		var e fr.Element
		if _, err := e.SetRandom(); err != nil {
			return nil, err
		}

		a[v] = Element{e}
	}

	return a, nil
}

// evalPoly evaluates a polynomial at an assignment of its variables.
func evalPoly(p ring.Poly, a Assignment) Element {
	var sum Element

	for i := range p.Len() {
		term := p.Term(i)
		coeff := term.Coefficient()
		acc := fromBigInt(&coeff)

		for j := range term.Len() {
			v := term.Nth(j)

			val, ok := a[v]
			if !ok {
				// A variable with no assignment contributes as zero, which is
				// sound here: a monomial containing it evaluates to zero and
				// this can only ever make the nonzero test more conservative,
				// never wrongly report "definitely nonzero".
				val = Element{}
			}

			acc = acc.Mul(val)
		}

		sum = sum.Add(acc)
	}

	return sum
}

// IsDefinitelyNonzero evaluates f.Num and f.Den at a. It returns true only
// when the denominator is nonzero at a (so the trial is valid) and the
// numerator is nonzero at a - in which case f is, with overwhelming
// probability, not the identically-zero rational function. A false result is
// inconclusive: it does not mean f is zero.
func IsDefinitelyNonzero(f ring.Frac, a Assignment) bool {
	den := evalPoly(f.Den, a)
	if den.IsZero() {
		return false
	}

	return !evalPoly(f.Num, a).IsZero()
}
