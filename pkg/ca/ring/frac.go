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

// Frac is a rational function Num/Den over the integers, i.e. the
// representation used by FUNC and MULTI field elements (mirrors fmpz_mpoly_q
// in the external collaborator library described by the specification).
type Frac struct {
	Num Poly
	Den Poly
}

// FracFromInt builds the constant rational function n/1.
func FracFromInt(n int64) Frac {
	return Frac{FromInt64(n), One}
}

// FracFromPoly lifts a bare polynomial to a rational function with
// denominator 1.
func FracFromPoly(p Poly) Frac {
	return Frac{p, One}
}

// FracFromGen builds the rational function equal to a single generator.
func FracFromGen(v Var) Frac {
	return Frac{FromGen(v), One}
}

// IsZero holds when the numerator is the zero polynomial.
func (f Frac) IsZero() bool {
	return f.Num.IsZero()
}

// IsOne holds when numerator and denominator are identical (after content
// reduction numerator == denominator exactly for the value 1).
func (f Frac) IsOne() bool {
	r := f.Reduce()
	return r.Num.Equal(r.Den)
}

// AsConstant returns the rational value of this fraction if both numerator
// and denominator are constants, and false otherwise.
func (f Frac) AsConstant() (*big.Rat, bool) {
	n, ok1 := f.Num.AsConstant()
	d, ok2 := f.Den.AsConstant()

	if !ok1 || !ok2 || d.Sign() == 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(n, d), true
}

// IsGen reports whether this fraction is exactly c*g for some generator g
// (with denominator a non-zero constant), returning c and g's index.  This is
// a structural (not numerical) test: c need not be ±1.
func (f Frac) IsGen() (c *big.Rat, v Var, ok bool) {
	coeff, vars, ok := f.MonomialRatio()
	if !ok || len(vars) != 1 {
		return nil, 0, false
	}

	return coeff, vars[0], true
}

// MonomialRatio generalises IsGen to an arbitrary-arity monomial: it reports
// whether this fraction is exactly c * (product of generators in vars), with
// a non-zero constant denominator, returning c and the (ascending, per
// Monomial's canonical ordering) list of generators involved.
func (f Frac) MonomialRatio() (c *big.Rat, vars []Var, ok bool) {
	den, isConstDen := f.Den.AsConstant()
	if !isConstDen || den.Sign() == 0 {
		return nil, nil, false
	}

	if f.Num.Len() != 1 {
		return nil, nil, false
	}

	term := f.Num.Term(0)
	num := term.Coefficient()

	vs := make([]Var, term.Len())
	for i := range vs {
		vs[i] = term.Nth(uint(i))
	}

	return new(big.Rat).SetFrac(&num, den), vs, true
}

// Neg negates this fraction.
func (f Frac) Neg() Frac {
	return Frac{f.Num.Neg(), f.Den}
}

// Add returns the sum of two fractions.
func (f Frac) Add(g Frac) Frac {
	return Frac{f.Num.Mul(g.Den).Add(g.Num.Mul(f.Den)), f.Den.Mul(g.Den)}.Reduce()
}

// Sub returns the difference of two fractions.
func (f Frac) Sub(g Frac) Frac {
	return Frac{f.Num.Mul(g.Den).Sub(g.Num.Mul(f.Den)), f.Den.Mul(g.Den)}.Reduce()
}

// Mul returns the product of two fractions.
func (f Frac) Mul(g Frac) Frac {
	return Frac{f.Num.Mul(g.Num), f.Den.Mul(g.Den)}.Reduce()
}

// Div returns the quotient of two fractions.  Panics if g is exactly zero,
// which is a precondition violation on the caller's part (division by the
// zero element is undefined and must be special-cased before reaching here).
func (f Frac) Div(g Frac) Frac {
	if g.IsZero() {
		panic("ring: division by zero fraction")
	}

	return Frac{f.Num.Mul(g.Den), f.Den.Mul(g.Num)}.Reduce()
}

// Equal performs a cheap structural equality check after content reduction.
// It is sound (true implies exact mathematical equality) but not complete:
// rational functions which are equal but not related by a scalar content
// factor (e.g. differ by a common polynomial factor) are not recognised
// here; callers needing a complete decision should escalate to ideal
// reduction or a numerical/fingerprint check.
func (f Frac) Equal(g Frac) bool {
	rf, rg := f.Reduce(), g.Reduce()
	return rf.Num.Equal(rg.Num) && rf.Den.Equal(rg.Den)
}

// UsedVars returns every generator appearing in either the numerator or
// denominator, sorted ascending.
func (f Frac) UsedVars() []Var {
	seen := map[Var]bool{}

	for _, v := range f.Num.UsedVars() {
		seen[v] = true
	}

	for _, v := range f.Den.UsedVars() {
		seen[v] = true
	}

	vars := make([]Var, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}

	slices.Sort(vars)

	return vars
}

// Rename composes this fraction's numerator and denominator under a
// generator-index renaming, as used when lifting a representation from a
// source ring into a larger target ring during Merge.
func (f Frac) Rename(mapping []Var) Frac {
	return Frac{f.Num.Rename(mapping), f.Den.Rename(mapping)}
}

// Reduce performs the "ideal reduction" normalisation contracted by the
// specification: it content-normalises the denominator and numerator by
// their combined integer gcd, and canonicalises sign so the denominator's
// lexicographically-first term is positive. No polynomial relations among
// generators are installed (permitted but not required by the contract).
// This pass is idempotent: applying it twice never changes an
// already-reduced Frac, since the resulting content is always 1 and the sign
// is already canonical.
func (f Frac) Reduce() Frac {
	g := integerContent(f.Num, f.Den)

	if g.Cmp(big.NewInt(1)) != 0 {
		f = Frac{f.Num.divScalar(g), f.Den.divScalar(g)}
	}

	if f.Den.Len() > 0 && f.Den.terms[0].IsNegative() {
		f = Frac{f.Num.Neg(), f.Den.Neg()}
	}

	return f
}

// divScalar divides every coefficient by a (presumed exact) integer divisor.
func (p Poly) divScalar(d *big.Int) Poly {
	var r Poly

	for _, t := range p.terms {
		var c big.Int
		c.Div(&t.coefficient, d)
		r.addTerm(Monomial{c, t.vars})
	}

	return r
}

// integerContent computes the gcd of every coefficient appearing across both
// polynomials, or 1 if there are none.
func integerContent(ps ...Poly) *big.Int {
	g := big.NewInt(0)

	for _, p := range ps {
		for _, t := range p.terms {
			c := t.Coefficient()
			g.GCD(nil, nil, g, new(big.Int).Abs(&c))
		}
	}

	if g.Sign() == 0 {
		return big.NewInt(1)
	}

	return g
}
