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

// Package qqbar constructs specific algebraic numbers needed by the
// exponential simplification cascade: roots of unity exp(i*pi*p/q) for small
// rational multiples of pi, by way of cyclotomic polynomials. It stands in
// for the "algebraic number library" external collaborator assumed by the
// specification; nothing in the example corpus builds cyclotomic
// polynomials, so the standard recursive quotient construction is
// implemented directly here over a small dense single-variable polynomial
// type (kept separate from the multivariate pkg/ca/ring representation,
// since this construction is inherently univariate and exact-integer).
package qqbar

import (
	"math/big"

	"github.com/jiwenfei/calcium/pkg/ca/numfield"
)

// intPoly is a dense univariate polynomial over Z, coefficients in ascending
// degree, used only to build cyclotomic polynomials.
type intPoly struct {
	coeffs []big.Int
}

func onePoly() intPoly {
	return intPoly{[]big.Int{*big.NewInt(1)}}
}

// xPowMinusOne returns x^n - 1.
func xPowMinusOne(n int) intPoly {
	c := make([]big.Int, n+1)
	c[0] = *big.NewInt(-1)
	c[n] = *big.NewInt(1)

	return intPoly{c}
}

func (p intPoly) degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i].Sign() != 0 {
			return i
		}
	}

	return 0
}

// divExact performs exact polynomial division p / d, panicking if the
// division is not exact (which would indicate a bug in the cyclotomic
// recursion, since by construction every divisor here divides evenly).
func (p intPoly) divExact(d intPoly) intPoly {
	rem := make([]big.Int, len(p.coeffs))
	copy(rem, p.coeffs)

	dd := d.degree()
	lead := d.coeffs[dd]

	pd := p.degree()
	if pd < dd {
		panic("qqbar: cyclotomic division underflow")
	}

	quot := make([]big.Int, pd-dd+1)

	for k := pd; k >= dd; k-- {
		if rem[k].Sign() == 0 {
			continue
		}

		var q big.Int

		r := new(big.Int)
		q.QuoRem(&rem[k], &lead, r)

		if r.Sign() != 0 {
			panic("qqbar: cyclotomic polynomial division was not exact")
		}

		quot[k-dd] = q

		for i := 0; i <= dd; i++ {
			var t big.Int

			t.Mul(&q, &d.coeffs[i])
			rem[k-dd+i].Sub(&rem[k-dd+i], &t)
		}
	}

	return intPoly{quot}
}

// divisors returns the positive divisors of n in ascending order.
func divisors(n int) []int {
	var ds []int

	for d := 1; d <= n; d++ {
		if n%d == 0 {
			ds = append(ds, d)
		}
	}

	return ds
}

// cyclotomic computes Phi_n(x), the n-th cyclotomic polynomial, via the
// standard recursive quotient formula
//
//	Phi_n(x) = (x^n - 1) / prod_{d | n, d < n} Phi_d(x)
func cyclotomic(n int) intPoly {
	if n <= 0 {
		panic("qqbar: cyclotomic order must be positive")
	}

	num := xPowMinusOne(n)
	denom := onePoly()

	for _, d := range divisors(n) {
		if d == n {
			continue
		}

		denom = polyMul(denom, cyclotomic(d))
	}

	return num.divExact(denom)
}

func polyMul(a, b intPoly) intPoly {
	c := make([]big.Int, len(a.coeffs)+len(b.coeffs)-1)

	for i := range a.coeffs {
		if a.coeffs[i].Sign() == 0 {
			continue
		}

		for j := range b.coeffs {
			if b.coeffs[j].Sign() == 0 {
				continue
			}

			var t big.Int

			t.Mul(&a.coeffs[i], &b.coeffs[j])
			c[i+j].Add(&c[i+j], &t)
		}
	}

	return intPoly{c}
}

// toMinPoly converts a monic intPoly of degree d into a numfield.MinPoly
// (non-leading coefficients, ascending degree, as big.Rat).
func (p intPoly) toMinPoly() numfield.MinPoly {
	d := p.degree()
	c := make([]big.Rat, d)

	for i := 0; i < d; i++ {
		c[i].SetInt(&p.coeffs[i])
	}

	return numfield.NewMinPoly(c...)
}

// CyclotomicMinPoly returns the minimal polynomial of a primitive n-th root
// of unity, i.e. the n-th cyclotomic polynomial expressed as a
// numfield.MinPoly.
func CyclotomicMinPoly(n int) numfield.MinPoly {
	return cyclotomic(n).toMinPoly()
}

// ExpPiI constructs exp(i*pi*p/q) as an algebraic number, returning the
// minimal polynomial of the enclosing number field together with the
// element itself. The enclosing field is generated by a primitive m-th
// root of unity zeta_m (the field's own generator), and the requested value
// exp(i*pi*p/q) = zeta_m^k for k = p'/gcd(p', 2q) is computed from it with
// MinPoly.Pow, since in general it is a non-trivial power of the generator,
// not the generator itself. p/q is assumed already reduced to lowest terms
// by the caller, with q > 0.
func ExpPiI(p, q int64) (numfield.MinPoly, numfield.Element) {
	// exp(i*pi*p/q) = exp(2*pi*i*p/(2q)), a primitive m-th root of unity
	// raised to the power k, where m = (2q)/gcd(p, 2q) and k = p/gcd(p, 2q).
	twoQ := 2 * q
	pAbs := absInt64(p)
	g := gcd(pAbs, twoQ)
	m := twoQ / g
	k := pAbs / g

	mp := CyclotomicMinPoly(int(m))
	gen := mp.Gen()

	if p < 0 {
		// zeta_m^(-k) = zeta_m^(m-(k mod m)), kept in [0, m).
		k = (m - k%m) % m
	}

	return mp, mp.Pow(gen, uint64(k))
}

// RadicalMinPoly returns the minimal polynomial y^q - r, used to adjoin a
// q-th root of the rational r as a new algebraic number when r is not
// already an exact q-th power of a rational. This does not check
// irreducibility of y^q - r (the general reducibility criteria for binomial
// polynomials, e.g. Capelli's theorem, are not implemented here); it is
// exercised only for the literal rational-base case the exponential
// cascade's PowRat needs (spec scenario exp((1/2)*log(3)) = 3^(1/2) in
// NF(y^2-3)), where q is small and r is squarefree-in-practice.
func RadicalMinPoly(r *big.Rat, q int64) numfield.MinPoly {
	c := make([]big.Rat, q)
	c[0].Neg(r)

	return numfield.NewMinPoly(c...)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	if a < 0 {
		return -a
	}

	return a
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
