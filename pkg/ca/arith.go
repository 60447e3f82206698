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

	"github.com/jiwenfei/calcium/pkg/ca/ring"
)

// Add computes a + b, propagating special values first and otherwise
// merging into the smallest common field.
func Add(ctx *Context, a, b Value) Value {
	if s, ok := combineSpecial(a, b, false); ok {
		return s
	}

	if a.Field == QQField && b.Field == QQField {
		return FromRat(new(big.Rat).Add(a.Rat(), b.Rat()))
	}

	if a.Field == b.Field && ctx.Field(a.Field).Kind == KindNF {
		mp := ctx.Field(a.Field).MinPoly

		return Reduce(ctx, Value{Field: a.Field, Repr: mp.Add(a.NFElement(ctx), b.NFElement(ctx))})
	}

	common, fa, fb := MergeValues(ctx, a, b)

	return Reduce(ctx, wrapFrac(common, fa.Add(fb)))
}

// Sub computes a - b.
func Sub(ctx *Context, a, b Value) Value {
	return Add(ctx, a, Neg(ctx, b))
}

// Neg computes -a.
func Neg(ctx *Context, a Value) Value {
	switch a.Special {
	case Undefined, UnknownValue, UInf:
		return a
	case PosInf:
		return NegativeInfinity()
	case NegInf:
		return PositiveInfinity()
	}

	switch ctx.Field(a.Field).Kind {
	case KindQQ:
		return FromRat(new(big.Rat).Neg(a.Rat()))
	case KindNF:
		mp := ctx.Field(a.Field).MinPoly

		return Value{Field: a.Field, Repr: mp.Neg(a.NFElement(ctx))}
	default:
		return Value{Field: a.Field, Repr: a.Frac(ctx).Neg()}
	}
}

// Mul computes a * b.
func Mul(ctx *Context, a, b Value) Value {
	if s, ok := combineSpecial(a, b, true); ok {
		return s
	}

	if a.Field == QQField && b.Field == QQField {
		return FromRat(new(big.Rat).Mul(a.Rat(), b.Rat()))
	}

	if a.Field == b.Field && ctx.Field(a.Field).Kind == KindNF {
		mp := ctx.Field(a.Field).MinPoly

		return Reduce(ctx, Value{Field: a.Field, Repr: mp.Mul(a.NFElement(ctx), b.NFElement(ctx))})
	}

	common, fa, fb := MergeValues(ctx, a, b)

	return Reduce(ctx, wrapFrac(common, fa.Mul(fb)))
}

// Div computes a / b. Division by the zero element yields uinf (or undefined
// for 0/0) rather than a panic: unlike ring.Frac.Div (an internal representation-level operation
// with a strict precondition), this is a user-facing operation and zero
// denominators are an expected input to classify, not a programmer error.
func Div(ctx *Context, a, b Value) Value {
	if a.Special == Undefined || b.Special == Undefined {
		return UndefinedValue()
	}

	if a.Special == UnknownValue || b.Special == UnknownValue {
		return UnknownResult()
	}

	bInf := b.Special == UInf || b.Special == PosInf || b.Special == NegInf
	aInf := a.Special == UInf || a.Special == PosInf || a.Special == NegInf

	if bInf {
		if aInf {
			return UndefinedValue()
		}
		// a finite / infinite = 0, regardless of sign.
		return Zero()
	}

	switch IsZero(ctx, b) {
	case True:
		if IsZero(ctx, a) == True {
			return UndefinedValue()
		}

		return UndirectedInfinity()
	case Unknown:
		return UnknownResult()
	}

	if aInf {
		// infinite / finite nonzero: sign-adjust a signed infinity by a QQ
		// divisor's sign; a non-QQ divisor's sign is not determined here, so
		// conservatively fall back to unsigned infinity rather than keep a
		// sign that may be wrong.
		if b.Field == QQField {
			if b.Rat().Sign() < 0 {
				return Value{Special: flipSign(a.Special)}
			}

			return a
		}

		return UndirectedInfinity()
	}

	if a.Field == QQField && b.Field == QQField {
		return FromRat(new(big.Rat).Quo(a.Rat(), b.Rat()))
	}

	if a.Field == b.Field && ctx.Field(a.Field).Kind == KindNF {
		mp := ctx.Field(a.Field).MinPoly

		return Reduce(ctx, Value{Field: a.Field, Repr: mp.Mul(a.NFElement(ctx), mp.Inverse(b.NFElement(ctx)))})
	}

	common, fa, fb := MergeValues(ctx, a, b)

	return Reduce(ctx, wrapFrac(common, fa.Div(fb)))
}

// wrapFrac builds a Value directly from a ring.Frac representation in the
// named field, without any reduction or condensation (callers apply Reduce
// themselves once ready to finalise).
func wrapFrac(field FieldID, f ring.Frac) Value {
	return Value{Field: field, Repr: f}
}

// combineSpecial implements the propagation rules for the five special
// constants across a binary operation: Undefined and Unknown are always
// absorbing, and the infinities combine according to the usual extended
// arithmetic conventions. multiplicative selects between the
// addition/subtraction family of rules (false) and the
// multiplication/division family (true), since the two families disagree on
// how +inf and -inf combine.
func combineSpecial(a, b Value, multiplicative bool) (Value, bool) {
	if a.Special == Undefined || b.Special == Undefined {
		return UndefinedValue(), true
	}

	if a.Special == UnknownValue || b.Special == UnknownValue {
		return UnknownResult(), true
	}

	aInf := a.Special == UInf || a.Special == PosInf || a.Special == NegInf
	bInf := b.Special == UInf || b.Special == PosInf || b.Special == NegInf

	if !aInf && !bInf {
		return Value{}, false
	}

	if multiplicative {
		if aInf && bInf {
			return UndirectedInfinity(), true
		}
		// exactly one side is infinite; the other, if zero, makes the
		// product undefined, and otherwise the infinity (sign-adjusted for
		// a negative finite factor) survives. Sign adjustment for QQ-only
		// finite factors is handled precisely; anything else is treated
		// conservatively as unsigned infinity.
		inf, finite := a, b
		if bInf {
			inf, finite = b, a
		}

		if finite.Field == QQField && finite.Special == NotSpecial {
			switch finite.Rat().Sign() {
			case 0:
				return UndefinedValue(), true
			case -1:
				return Value{Special: flipSign(inf.Special)}, true
			}

			return inf, true
		}

		// A non-QQ finite factor's sign is not determined here, so
		// conservatively report unsigned infinity rather than keep a sign
		// that may be wrong.
		return UndirectedInfinity(), true
	}

	// additive family: two equal infinities stay that infinity, two
	// different ones (opposite signs, or UInf with a signed infinity) give
	// undefined, and an infinity plus a finite value stays that infinity.
	if aInf && bInf {
		if a.Special == b.Special {
			return a, true
		}

		return UndefinedValue(), true
	}

	if aInf {
		return a, true
	}

	return b, true
}

func flipSign(s Special) Special {
	switch s {
	case PosInf:
		return NegInf
	case NegInf:
		return PosInf
	default:
		return s
	}
}
