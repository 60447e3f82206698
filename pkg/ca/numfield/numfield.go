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

// Package numfield implements exact arithmetic in a simple algebraic number
// field Q(alpha), defined by a monic minimal polynomial over Q. An element is
// a dense coefficient vector [c0, c1, ..., c_{d-1}] representing
// c0 + c1*alpha + ... + c_{d-1}*alpha^(d-1), kept canonical by reducing every
// product modulo the defining relation
//
//	alpha^d = -(m0 + m1*alpha + ... + m_{d-1}*alpha^(d-1))
//
// This stands in for the "number-field element" external collaborator the
// specification assumes (numerator/denominator extraction, canonicalised
// arithmetic); nothing in the example corpus provides algebraic-number
// arithmetic over Q, so it is implemented directly here on math/big.
package numfield

import "math/big"

// MinPoly is a monic minimal polynomial over Q, stored as its non-leading
// coefficients in ascending degree: alpha^d + Coeffs[d-1]*alpha^(d-1) + ...
// + Coeffs[0] = 0.
type MinPoly struct {
	Coeffs []big.Rat
}

// NewMinPoly constructs a minimal polynomial from its non-leading
// coefficients (ascending degree); the polynomial's degree is len(coeffs).
func NewMinPoly(coeffs ...big.Rat) MinPoly {
	return MinPoly{coeffs}
}

// Degree returns the degree of the field extension.
func (m MinPoly) Degree() int {
	return len(m.Coeffs)
}

// Cmp provides the deterministic total order over minimal polynomials
// required by the Field comparison (lexicographic on coefficients, degree
// first).
func (m MinPoly) Cmp(other MinPoly) int {
	if len(m.Coeffs) != len(other.Coeffs) {
		if len(m.Coeffs) < len(other.Coeffs) {
			return -1
		}

		return 1
	}

	for i := range m.Coeffs {
		if c := m.Coeffs[i].Cmp(&other.Coeffs[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Element is a field element expressed in the power basis of alpha, always
// kept at exactly Degree() coefficients.
type Element struct {
	Coeffs []big.Rat
}

// FromRat embeds a rational as a constant field element.
func (m MinPoly) FromRat(r *big.Rat) Element {
	c := make([]big.Rat, m.Degree())
	if len(c) > 0 {
		c[0].Set(r)
	}

	return Element{c}
}

// Gen returns the element alpha itself. For a degree-1 extension the basis
// is just {1}, so alpha collapses to the rational -Coeffs[0] (the unique
// root of the linear relation alpha + Coeffs[0] = 0).
func (m MinPoly) Gen() Element {
	if m.Degree() == 1 {
		var c0 big.Rat

		c0.Neg(&m.Coeffs[0])

		return Element{[]big.Rat{c0}}
	}

	c := make([]big.Rat, m.Degree())
	c[1].SetInt64(1)

	return Element{c}
}

// IsZero holds when every coefficient is zero.
func (e Element) IsZero() bool {
	for i := range e.Coeffs {
		if e.Coeffs[i].Sign() != 0 {
			return false
		}
	}

	return true
}

// AsRat returns the rational value of this element if it has no alpha
// component (i.e. it lies in the QQ subfield), and false otherwise.
func (e Element) AsRat() (*big.Rat, bool) {
	for i := 1; i < len(e.Coeffs); i++ {
		if e.Coeffs[i].Sign() != 0 {
			return nil, false
		}
	}

	if len(e.Coeffs) == 0 {
		return big.NewRat(0, 1), true
	}

	r := new(big.Rat).Set(&e.Coeffs[0])

	return r, true
}

// Equal performs exact coefficientwise equality.
func (e Element) Equal(other Element) bool {
	if len(e.Coeffs) != len(other.Coeffs) {
		return false
	}

	for i := range e.Coeffs {
		if e.Coeffs[i].Cmp(&other.Coeffs[i]) != 0 {
			return false
		}
	}

	return true
}

// Add returns a + b.
func (m MinPoly) Add(a, b Element) Element {
	c := make([]big.Rat, m.Degree())

	for i := range c {
		c[i].Add(&a.Coeffs[i], &b.Coeffs[i])
	}

	return Element{c}
}

// Sub returns a - b.
func (m MinPoly) Sub(a, b Element) Element {
	c := make([]big.Rat, m.Degree())

	for i := range c {
		c[i].Sub(&a.Coeffs[i], &b.Coeffs[i])
	}

	return Element{c}
}

// Neg returns -a.
func (m MinPoly) Neg(a Element) Element {
	c := make([]big.Rat, m.Degree())

	for i := range c {
		c[i].Neg(&a.Coeffs[i])
	}

	return Element{c}
}

// Scale returns s*a for a rational scalar s.
func (m MinPoly) Scale(a Element, s *big.Rat) Element {
	c := make([]big.Rat, m.Degree())

	for i := range c {
		c[i].Mul(&a.Coeffs[i], s)
	}

	return Element{c}
}

// Mul returns a*b reduced modulo the minimal polynomial.
func (m MinPoly) Mul(a, b Element) Element {
	d := m.Degree()
	raw := make([]big.Rat, 2*d-1)

	for i := range a.Coeffs {
		if a.Coeffs[i].Sign() == 0 {
			continue
		}

		for j := range b.Coeffs {
			if b.Coeffs[j].Sign() == 0 {
				continue
			}

			var t big.Rat

			t.Mul(&a.Coeffs[i], &b.Coeffs[j])
			raw[i+j].Add(&raw[i+j], &t)
		}
	}

	return Element{m.reduce(raw)}
}

// reduce performs polynomial long division of raw (a dense coefficient
// vector possibly longer than Degree()) by the monic relation
// alpha^d = -sum(Coeffs[i]*alpha^i), returning a vector of exactly Degree()
// coefficients.
func (m MinPoly) reduce(raw []big.Rat) []big.Rat {
	d := m.Degree()
	buf := make([]big.Rat, len(raw))

	for i := range raw {
		buf[i].Set(&raw[i])
	}

	for k := len(buf) - 1; k >= d; k-- {
		if buf[k].Sign() == 0 {
			continue
		}

		var a big.Rat

		a.Set(&buf[k])
		buf[k].SetInt64(0)

		for i := 0; i < d; i++ {
			var t big.Rat

			t.Mul(&a, &m.Coeffs[i])
			buf[k-d+i].Sub(&buf[k-d+i], &t)
		}
	}

	if len(buf) < d {
		padded := make([]big.Rat, d)
		copy(padded, buf)

		return padded
	}

	return buf[:d]
}

// Pow returns a^n via repeated squaring, reduced modulo the minimal
// polynomial at every step.
func (m MinPoly) Pow(a Element, n uint64) Element {
	result := m.FromRat(big.NewRat(1, 1))
	base := a

	for n > 0 {
		if n&1 == 1 {
			result = m.Mul(result, base)
		}

		base = m.Mul(base, base)
		n >>= 1
	}

	return result
}

// Inverse returns a^-1 via a^(d-1)... fallback is not provided; instead this
// solves the linear system implied by a*x = 1 using Gaussian elimination
// over the regular representation of multiplication-by-a. Panics if a is
// zero, which is a precondition violation on the caller's part.
func (m MinPoly) Inverse(a Element) Element {
	if a.IsZero() {
		panic("numfield: inverse of zero element")
	}

	d := m.Degree()
	// Build the matrix of multiplication-by-a applied to each basis vector.
	mat := make([][]big.Rat, d)

	for i := 0; i < d; i++ {
		basis := make([]big.Rat, d)
		basis[i].SetInt64(1)
		mat[i] = m.Mul(a, Element{basis}).Coeffs
	}
	// Solve mat^T * x = e0 by Gaussian elimination (columns are basis
	// images, so we transpose conceptually by indexing [row][col]=mat[col][row]).
	aug := make([][]big.Rat, d)

	for r := 0; r < d; r++ {
		aug[r] = make([]big.Rat, d+1)
		for c := 0; c < d; c++ {
			aug[r][c].Set(&mat[c][r])
		}
	}

	aug[0][d].SetInt64(1)

	for col := 0; col < d; col++ {
		pivot := -1

		for r := col; r < d; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}

		if pivot == -1 {
			panic("numfield: singular multiplication matrix (minimal polynomial is not irreducible)")
		}

		aug[col], aug[pivot] = aug[pivot], aug[col]

		inv := new(big.Rat).Inv(&aug[col][col])
		for c := col; c <= d; c++ {
			aug[col][c].Mul(&aug[col][c], inv)
		}

		for r := 0; r < d; r++ {
			if r == col || aug[r][col].Sign() == 0 {
				continue
			}

			var factor big.Rat

			factor.Set(&aug[r][col])

			for c := col; c <= d; c++ {
				var t big.Rat

				t.Mul(&factor, &aug[col][c])
				aug[r][c].Sub(&aug[r][c], &t)
			}
		}
	}

	res := make([]big.Rat, d)
	for r := 0; r < d; r++ {
		res[r].Set(&aug[r][d])
	}

	return Element{res}
}
