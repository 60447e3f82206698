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
	"slices"
)

// Poly is a sum of monomials over a fixed (but unbounded) set of generator
// variables, with integer coefficients.  A zero-value Poly represents the
// zero polynomial.  Terms are kept sorted and de-duplicated by shape, so two
// Polys built from the same multiset of monomials always compare Equal.
type Poly struct {
	terms []Monomial
}

// Zero is the zero polynomial.
var Zero = Poly{}

// One is the constant polynomial 1.
var One = FromInt64(1)

// FromInt64 constructs a constant polynomial.
func FromInt64(v int64) Poly {
	if v == 0 {
		return Poly{}
	}

	return Poly{[]Monomial{NewMonomial(*big.NewInt(v))}}
}

// FromInt constructs a constant polynomial from a big.Int.
func FromInt(v *big.Int) Poly {
	if v.Sign() == 0 {
		return Poly{}
	}

	var c big.Int

	c.Set(v)

	return Poly{[]Monomial{NewMonomial(c)}}
}

// FromGen constructs the polynomial equal to a single bare generator.
func FromGen(v Var) Poly {
	return Poly{[]Monomial{Gen(v)}}
}

// FromTerms builds a polynomial from zero or more monomials, combining terms
// with matching shape and dropping any which cancel to zero.
func FromTerms(terms ...Monomial) Poly {
	var p Poly

	for _, t := range terms {
		p.addTerm(t)
	}

	return p
}

// Len returns the number of (non-zero, de-duplicated) terms.
func (p Poly) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term.
func (p Poly) Term(ith uint) Monomial {
	return p.terms[ith]
}

// IsZero holds exactly when this polynomial has no terms. Because terms are
// kept reduced, this is an exact (not heuristic) structural test.
func (p Poly) IsZero() bool {
	return len(p.terms) == 0
}

// IsOne holds exactly when this polynomial is the constant 1.
func (p Poly) IsOne() bool {
	c, ok := p.AsConstant()
	return ok && c.Cmp(big.NewInt(1)) == 0
}

// AsConstant returns the constant value of this polynomial if it has no
// variables (the fmpz_mpoly_is_fmpz test), and false otherwise.
func (p Poly) AsConstant() (*big.Int, bool) {
	switch len(p.terms) {
	case 0:
		return big.NewInt(0), true
	case 1:
		if p.terms[0].Len() == 0 {
			c := p.terms[0].Coefficient()
			return &c, true
		}
	}

	return nil, false
}

// IsGen holds when this polynomial is exactly one generator variable raised
// to the first power with unit coefficient, i.e. it is syntactically a
// generator of the ring (the fmpz_mpoly_is_gen test). On success it also
// returns that generator's index.
func (p Poly) IsGen() (Var, bool) {
	if len(p.terms) != 1 {
		return 0, false
	}

	t := p.terms[0]
	if t.Len() != 1 || t.coefficient.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}

	return t.Nth(0), true
}

// UsedVars returns the sorted, de-duplicated set of generator indices that
// appear (with non-zero coefficient) anywhere in this polynomial.
func (p Poly) UsedVars() []Var {
	seen := map[Var]bool{}

	for _, t := range p.terms {
		for i := range t.Len() {
			seen[t.Nth(i)] = true
		}
	}

	vars := make([]Var, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}

	slices.Sort(vars)

	return vars
}

// Equal performs structural equality between two polynomials.
func (p Poly) Equal(other Poly) bool {
	if len(p.terms) != len(other.terms) {
		return false
	}

	for i := range p.terms {
		if !p.terms[i].Equal(other.terms[i]) {
			return false
		}
	}

	return true
}

// Clone performs a deep copy of this polynomial.
func (p Poly) Clone() Poly {
	nterms := make([]Monomial, len(p.terms))
	for i := range nterms {
		nterms[i] = p.terms[i].Clone()
	}

	return Poly{nterms}
}

// Neg returns the negation of this polynomial.
func (p Poly) Neg() Poly {
	nterms := make([]Monomial, len(p.terms))
	for i := range nterms {
		nterms[i] = p.terms[i].Neg()
	}

	return Poly{nterms}
}

// Add returns the sum of this polynomial and another.
func (p Poly) Add(other Poly) Poly {
	r := p.Clone()

	for i := range other.terms {
		r.addTerm(other.terms[i])
	}

	return r
}

// Sub returns the difference of this polynomial and another.
func (p Poly) Sub(other Poly) Poly {
	r := p.Clone()

	for i := range other.terms {
		r.addTerm(other.terms[i].Neg())
	}

	return r
}

// Mul returns the product of this polynomial and another.
func (p Poly) Mul(other Poly) Poly {
	var r Poly

	for _, ith := range p.terms {
		for _, jth := range other.terms {
			r.addTerm(ith.Mul(jth))
		}
	}

	return r
}

// MulScalar scales this polynomial by an integer.
func (p Poly) MulScalar(scalar *big.Int) Poly {
	var r Poly

	for _, ith := range p.terms {
		r.addTerm(ith.MulScalar(scalar))
	}

	return r
}

// Rename produces a copy of this polynomial with every generator variable
// translated through mapping (mapping[old] == new).  This implements the
// "composition under a variable renaming" operation used when lifting a
// representation into a larger field during Merge.
func (p Poly) Rename(mapping []Var) Poly {
	var r Poly

	for _, t := range p.terms {
		r.addTerm(t.Rename(mapping))
	}

	return r
}

// addTerm folds a single monomial into this polynomial in place, merging
// with any existing term of matching shape and dropping zero results.
func (p *Poly) addTerm(term Monomial) {
	if term.IsZero() {
		return
	}

	for i := range p.terms {
		if p.terms[i].Matches(term) {
			var c big.Int
			c.Add(&p.terms[i].coefficient, &term.coefficient)

			if c.Sign() == 0 {
				p.terms = slices.Delete(p.terms, i, i+1)
			} else {
				p.terms[i] = Monomial{c, p.terms[i].vars}
			}

			return
		}
	}

	// New shape: insert keeping terms in canonical sorted order so that Equal
	// (and hence Field identity built on top of it) does not depend on
	// insertion order.
	idx, _ := slices.BinarySearchFunc(p.terms, term, func(a, b Monomial) int { return a.Cmp(b) })
	p.terms = slices.Insert(p.terms, idx, term.Clone())
}
