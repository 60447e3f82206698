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
	"math"
	"math/big"
	"math/cmplx"

	"github.com/jiwenfei/calcium/pkg/ca/ring"
)

// noEnclosure marks an Ext or Value enclosure as unavailable: there is
// deliberately no general numerical evaluator for algebraic (NF) generators
// or for unrecognised HeadFunc extensions here, so those report "no
// information" rather than an invented bound.
var noEnclosure = Enclosure{Radius: math.MaxFloat64}

func hasEnclosure(e Enclosure) bool {
	return e.Radius != math.MaxFloat64
}

// evalExtEnclosure computes the cached numerical ball for a freshly interned
// Ext, recursing into its arguments' own (already-interned, hence already
// evaluable) enclosures.
func evalExtEnclosure(ctx *Context, e Ext) Enclosure {
	switch e.Head {
	case HeadPi:
		return PointEnclosure(math.Pi, 0)
	case HeadExp:
		if len(e.Args) == 1 {
			if arg, ok := e.Args[0].Enclosure(ctx); ok {
				return expEnclosure(arg)
			}
		}
	case HeadLog:
		if len(e.Args) == 1 {
			if arg, ok := e.Args[0].Enclosure(ctx); ok {
				if r, ok := logEnclosure(arg); ok {
					return r
				}
			}
		}
	}

	return noEnclosure
}

// expEnclosure bounds exp over a ball by a first-order Lipschitz estimate:
// |exp(z+h) - exp(z)| <= |exp(z)|*(e^|h| - 1) for |h| <= radius.
func expEnclosure(e Enclosure) Enclosure {
	center := cmplx.Exp(complex(e.ReCenter, e.ImCenter))
	radius := cmplx.Abs(center) * (math.Exp(e.Radius) - 1)

	return Enclosure{real(center), imag(center), radius}
}

// logEnclosure bounds log over a ball that provably excludes the origin (so
// the branch cut cannot be straddled); it declines (returns false) otherwise.
func logEnclosure(e Enclosure) (Enclosure, bool) {
	mag := math.Hypot(e.ReCenter, e.ImCenter)
	if e.Radius >= mag {
		return Enclosure{}, false
	}

	center := cmplx.Log(complex(e.ReCenter, e.ImCenter))
	radius := math.Log(mag / (mag - e.Radius))

	return Enclosure{real(center), imag(center), radius}, true
}

// Enclosure returns v's numerical ball, when one can be computed: exact for
// QQ, propagated through the rational-function representation for FUNC and
// MULTI (provided every generator involved itself has a usable enclosure),
// and unavailable for NF and Special values - this implementation does not
// attempt numerical root isolation for algebraic generators.
func (v Value) Enclosure(ctx *Context) (Enclosure, bool) {
	if v.IsSpecial() {
		return Enclosure{}, false
	}

	switch ctx.Field(v.Field).Kind {
	case KindQQ:
		f, _ := new(big.Float).SetRat(v.Rat()).Float64()
		return PointEnclosure(f, 0), true
	case KindNF:
		return Enclosure{}, false
	default:
		return fracEnclosure(ctx, v.Field, v.Frac(ctx))
	}
}

// fracEnclosure evaluates a rational function's numerator and denominator by
// substituting each generator variable with that generator field's own
// cached enclosure (FUNC generators only; a MULTI generator list containing
// an NF entry makes the whole evaluation unavailable).
func fracEnclosure(ctx *Context, field FieldID, f ring.Frac) (Enclosure, bool) {
	gens := generatorList(ctx, field)
	varEnc := make(map[ring.Var]Enclosure, len(gens))

	for i, g := range gens {
		gf := ctx.Field(g)
		if gf.Kind != KindFunc {
			return Enclosure{}, false
		}

		enc := ctx.Ext(gf.Ext).Enclosure
		if !hasEnclosure(enc) {
			return Enclosure{}, false
		}

		varEnc[ring.Var(i)] = enc
	}

	num, ok := polyEnclosure(f.Num, varEnc)
	if !ok {
		return Enclosure{}, false
	}

	den, ok := polyEnclosure(f.Den, varEnc)
	if !ok || !den.DefinitelyNonzero() {
		return Enclosure{}, false
	}

	return num.Mul(reciprocal(den)), true
}

// polyEnclosure evaluates a polynomial at an assignment of its generators to
// numerical balls, returning false if some used generator has none.
func polyEnclosure(p ring.Poly, vars map[ring.Var]Enclosure) (Enclosure, bool) {
	sum := Enclosure{}

	for i := range p.Len() {
		term := p.Term(i)
		coeff := term.Coefficient()

		cf, _ := new(big.Float).SetInt(&coeff).Float64()
		contribution := PointEnclosure(cf, 0)

		for j := range term.Len() {
			enc, ok := vars[term.Nth(j)]
			if !ok {
				return Enclosure{}, false
			}

			contribution = contribution.Mul(enc)
		}

		sum = sum.Add(contribution)
	}

	return sum, true
}

// reciprocal bounds 1/e for a ball e already known (by the caller) to
// exclude the origin, via the first-order estimate
// |1/(c+h) - 1/c| <= |h| / (|c|*(|c|-|h|)).
func reciprocal(e Enclosure) Enclosure {
	c := complex(e.ReCenter, e.ImCenter)
	mag := cmplx.Abs(c)
	inv := 1 / c
	radius := e.Radius / (mag * (mag - e.Radius))

	return Enclosure{real(inv), imag(inv), radius}
}
