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
	"math/big"

	"github.com/jiwenfei/calcium/pkg/ca/fingerprint"
)

// Tribool is the three-valued logic result every classification predicate
// in this package returns. Unknown is a first-class outcome, not an error:
// it means the system could not decide, not that the question is invalid.
type Tribool uint8

const (
	Unknown Tribool = iota
	True
	False
)

func triFromBool(b bool) Tribool {
	if b {
		return True
	}

	return False
}

// IsZero classifies whether v is exactly zero.
func IsZero(ctx *Context, v Value) Tribool {
	switch v.Special {
	case Undefined, UnknownValue:
		return Unknown
	case UInf, PosInf, NegInf:
		return False
	}

	switch ctx.Field(v.Field).Kind {
	case KindQQ:
		return triFromBool(v.Rat().Sign() == 0)
	case KindNF:
		return triFromBool(v.NFElement(ctx).IsZero())
	case KindFunc, KindMulti:
		f := v.Frac(ctx)
		if f.IsZero() {
			return True
		}

		if enc, ok := v.Enclosure(ctx); ok && enc.DefinitelyNonzero() {
			return False
		}

		// The numerator is not the zero polynomial as written, but without
		// installed algebraic relations among generators that is only a
		// sound witness for "maybe nonzero" - escalate to a probabilistic
		// check before giving up and reporting Unknown.
		a, err := fingerprint.RandomAssignment(f.UsedVars())
		if err != nil {
			return Unknown
		}

		if fingerprint.IsDefinitelyNonzero(f, a) {
			return False
		}

		return Unknown
	default:
		return Unknown
	}
}

// IsOne classifies whether v is exactly one.
func IsOne(ctx *Context, v Value) Tribool {
	switch v.Special {
	case Undefined, UnknownValue:
		return Unknown
	case UInf, PosInf, NegInf:
		return False
	}

	switch ctx.Field(v.Field).Kind {
	case KindQQ:
		return triFromBool(v.Rat().Cmp(big.NewRat(1, 1)) == 0)
	case KindNF:
		r, ok := v.NFElement(ctx).AsRat()
		if !ok {
			return Unknown
		}

		return triFromBool(r.Cmp(big.NewRat(1, 1)) == 0)
	case KindFunc, KindMulti:
		return IsZero(ctx, Sub(ctx, v, One()))
	default:
		return Unknown
	}
}

// IsUndefined classifies whether v is the undefined special value.
func IsUndefined(v Value) Tribool {
	return triFromBool(v.Special == Undefined)
}

// IsPosInf classifies whether v is the special value +inf.
func IsPosInf(v Value) Tribool {
	return triFromBool(v.Special == PosInf)
}

// IsNegInf classifies whether v is the special value -inf.
func IsNegInf(v Value) Tribool {
	return triFromBool(v.Special == NegInf)
}

// IsUInf classifies whether v is the unsigned special value uinf.
func IsUInf(v Value) Tribool {
	return triFromBool(v.Special == UInf)
}

// IsFmpqTimesGenAsExt reports whether v is exactly c * g for some rational
// c and some FUNC-field generator g whose Ext matches head, returning c.
// This mirrors the structural (non-numerical) extraction used by the
// exponential cascade to recognise things like "(p/q) * log(z)" or
// "(p/q) * pi" without first expanding into a full rational-function test.
func IsFmpqTimesGenAsExt(ctx *Context, v Value, head ExtHead) (c *big.Rat, args []Value, ok bool) {
	if v.IsSpecial() {
		return nil, nil, false
	}

	fld := ctx.Field(v.Field)
	if fld.Kind != KindFunc {
		return nil, nil, false
	}

	ext := ctx.Ext(fld.Ext)
	if ext.Head != head {
		return nil, nil, false
	}

	coeff, v_, isGen := v.Frac(ctx).IsGen()
	if !isGen || v_ != 0 {
		return nil, nil, false
	}

	return coeff, ext.Args, true
}

// AsFmpqPiI reports whether v is exactly (p/q) * pi * i for some rational
// p/q, returning that rational in lowest terms. This is the entry
// condition for the "root of unity" branch of the exponential cascade.
func AsFmpqPiI(ctx *Context, v Value) (p, q int64, ok bool) {
	if v.IsSpecial() {
		return 0, 0, false
	}

	fld := ctx.Field(v.Field)
	if fld.Kind != KindMulti {
		return 0, 0, false
	}

	// v must be a bare multiple of the product of both MULTI generator
	// variables; that generator list must correspond to a two-element
	// {NF(i), FUNC(Pi)} generator list for this to denote (p/q)*pi*i
	// specifically. Since this module only ever constructs pi*i through
	// Mul(Pi, I), and Merge canonically orders generators, that
	// combination always lands at the same recognisable shape: exactly two
	// generator fields, one NF(x^2+1) and one FUNC(Pi), whose product forms
	// the numerator monomial.
	if len(fld.Gens) != 2 {
		return 0, 0, false
	}

	coeff, vars, isMono := v.Frac(ctx).MonomialRatio()
	if !isMono || len(vars) != 2 || vars[0] != 0 || vars[1] != 1 {
		return 0, 0, false
	}

	var sawI, sawPi bool

	for _, g := range fld.Gens {
		gf := ctx.Field(g)

		switch gf.Kind {
		case KindNF:
			if gf.MinPoly.Cmp(imaginaryUnitMinPoly()) == 0 {
				sawI = true
			}
		case KindFunc:
			if ctx.Ext(gf.Ext).Head == HeadPi {
				sawPi = true
			}
		}
	}

	if !sawI || !sawPi {
		return 0, 0, false
	}

	num := coeff.Num().Int64()
	den := coeff.Denom().Int64()

	return num, den, true
}
