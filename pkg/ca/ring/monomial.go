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

// Package ring provides multivariate integer-coefficient polynomials and
// rational functions over a named set of generator variables.  Each variable
// is identified purely by its index within the owning ring context; the ring
// itself assigns no meaning to that index; callers (field.go, merge.go)
// interpret it as a position into a Field's ordered generator list.
package ring

import (
	"math/big"
	"slices"
)

// Var identifies a generator variable by its position in the owning ring.
type Var = uint

// Monomial is a coefficient times a product of (possibly repeated) generator
// variables, e.g. 3*x0*x0*x2 has coefficient 3 and vars [0,0,2].
type Monomial struct {
	coefficient big.Int
	// vars holds one entry per occurrence of a variable in the product,
	// kept sorted in ascending order so that two monomials over the same set
	// of variables (with multiplicity) compare equal term-by-term.
	vars []Var
}

// NewMonomial constructs a monomial from a coefficient and zero or more
// variable occurrences (duplicates denote powers).
func NewMonomial(coefficient big.Int, vars ...Var) Monomial {
	nvars := slices.Clone(vars)
	slices.Sort(nvars)

	return Monomial{coefficient, nvars}
}

// Gen constructs the monomial 1*v (i.e. the bare generator variable).
func Gen(v Var) Monomial {
	return NewMonomial(*big.NewInt(1), v)
}

// Coefficient returns the coefficient of this monomial.
func (m Monomial) Coefficient() big.Int {
	return m.coefficient
}

// Len returns the number of variable occurrences (i.e. the total degree).
func (m Monomial) Len() uint {
	return uint(len(m.vars))
}

// Nth returns the nth variable occurrence.
func (m Monomial) Nth(index uint) Var {
	return m.vars[index]
}

// IsZero holds when the coefficient is zero.
func (m Monomial) IsZero() bool {
	return m.coefficient.Sign() == 0
}

// IsNegative holds when the coefficient is negative.
func (m Monomial) IsNegative() bool {
	return m.coefficient.Sign() < 0
}

// Matches determines whether this monomial has exactly the same variables
// (with multiplicity) as other, ignoring coefficients.
func (m Monomial) Matches(other Monomial) bool {
	return slices.Equal(m.vars, other.vars)
}

// Equal performs full structural equality, including the coefficient.
func (m Monomial) Equal(other Monomial) bool {
	return m.coefficient.Cmp(&other.coefficient) == 0 && m.Matches(other)
}

// Cmp provides a deterministic total order over monomial shapes (ignoring
// coefficient): first by degree, then lexicographically by variable index.
func (m Monomial) Cmp(other Monomial) int {
	if len(m.vars) != len(other.vars) {
		if len(m.vars) < len(other.vars) {
			return -1
		}

		return 1
	}

	for i := range m.vars {
		if m.vars[i] != other.vars[i] {
			if m.vars[i] < other.vars[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// Neg returns a negated copy of this monomial.
func (m Monomial) Neg() Monomial {
	r := m.Clone()
	r.coefficient.Neg(&r.coefficient)

	return r
}

// Mul returns the product of this monomial and another.
func (m Monomial) Mul(other Monomial) Monomial {
	var coeff big.Int

	coeff.Mul(&m.coefficient, &other.coefficient)

	return NewMonomial(coeff, append(slices.Clone(m.vars), other.vars...)...)
}

// MulScalar scales this monomial's coefficient by an integer.
func (m Monomial) MulScalar(scalar *big.Int) Monomial {
	r := m.Clone()
	r.coefficient.Mul(&r.coefficient, scalar)

	return r
}

// Rename produces a copy of this monomial with every variable index
// translated through mapping.  It panics if a variable is not covered by the
// mapping, since that indicates a caller defect (an incomplete generator
// renaming during a field lift).
func (m Monomial) Rename(mapping []Var) Monomial {
	nvars := make([]Var, len(m.vars))

	for i, v := range m.vars {
		if int(v) >= len(mapping) {
			panic("ring: variable renaming is not defined for this generator")
		}

		nvars[i] = mapping[v]
	}

	slices.Sort(nvars)

	return Monomial{m.coefficient, nvars}
}

// Clone performs a deep copy of this monomial.
func (m Monomial) Clone() Monomial {
	var val big.Int

	val.Set(&m.coefficient)

	return Monomial{val, slices.Clone(m.vars)}
}
