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

	log "github.com/sirupsen/logrus"

	"github.com/jiwenfei/calcium/pkg/ca/numfield"
	"github.com/jiwenfei/calcium/pkg/ca/qqbar"
	"github.com/jiwenfei/calcium/pkg/ca/ring"
)

// maxRootOfUnityDenominator bounds the q in exp((p/q)*pi*i) below which this
// cascade constructs an explicit algebraic root of unity rather than a
// fresh opaque Exp(...) generator. Beyond this bound the cyclotomic
// polynomial's degree grows fast enough that a symbolic Exp generator is
// the more useful normal form.
const maxRootOfUnityDenominator = 12

// Exp computes exp(v), following a decision cascade that recognises several
// algebraically significant special cases before falling back to
// constructing a fresh transcendental generator.
func Exp(ctx *Context, v Value) Value {
	if result, ok := expSpecial(v); ok {
		return result
	}

	// exp((p/q) * log(z)) = z^(p/q), exp(log(z)) being the q=1 case.
	if c, args, ok := IsFmpqTimesGenAsExt(ctx, v, HeadLog); ok {
		z := args[0]
		p := c.Num().Int64()
		q := c.Denom().Int64()

		return PowRat(ctx, z, p, q)
	}

	if IsZero(ctx, v) == True {
		return One()
	}

	if p, q, ok := AsFmpqPiI(ctx, v); ok {
		if q <= maxRootOfUnityDenominator {
			return Reduce(ctx, rootOfUnityValue(ctx, p, q))
		}
	}

	return Reduce(ctx, freshExpGenerator(ctx, v))
}

// expSpecial implements the propagation of the five special constants
// through exp: exp(undefined) and exp(unknown) stay as they are,
// exp(+inf) = +inf, exp(-inf) = 0, and exp(uinf) is undefined (the limit
// depends on direction of approach).
func expSpecial(v Value) (Value, bool) {
	switch v.Special {
	case Undefined, UnknownValue:
		return v, true
	case PosInf:
		return PositiveInfinity(), true
	case NegInf:
		return Zero(), true
	case UInf:
		return UndefinedValue(), true
	default:
		return Value{}, false
	}
}

// rootOfUnityValue constructs exp((p/q)*pi*i) as an explicit algebraic
// number via its cyclotomic minimal polynomial.
func rootOfUnityValue(ctx *Context, p, q int64) Value {
	mp, elem := qqbar.ExpPiI(p, q)
	fid := ctx.InternNF(mp)

	log.WithFields(log.Fields{"p": p, "q": q}).Debug("exp: constructed root of unity via cyclotomic field")

	return Value{Field: fid, Repr: elem}
}

// freshExpGenerator builds a new (or reused, via Context interning) opaque
// transcendental value FUNC(Exp(v)), the fallback normal form once no
// special-case simplification applies.
func freshExpGenerator(ctx *Context, v Value) Value {
	fid := ctx.InternFunc(Ext{Head: HeadExp, Args: []Value{v}})

	return Value{Field: fid, Repr: ring.FracFromGen(0)}
}

// PowRat computes z^(p/q) for an integer numerator and positive integer
// denominator in lowest terms. The q=1 (integer power) case is resolved by
// IntPow in z's own field, and the case where z is itself a rational
// exhibiting an exact q-th root within QQ; a rational z without an exact
// root instead adjoins the q-th
// root as a fresh algebraic number (NF(y^q - z), see radicalPow) - this is
// what exp((1/2)*log(3)) needs to land in NF(y^2-3) rather than reporting
// Unknown. Anything else (a non-rational base z) yields an Unknown result
// rather than attempting general algebraic root extraction, which this
// implementation does not support.
func PowRat(ctx *Context, z Value, p, q int64) Value {
	if q == 1 {
		return IntPow(ctx, z, p)
	}

	if z.Field == QQField && !z.IsSpecial() {
		if root, ok := exactRatRoot(z.Rat(), q); ok {
			return IntPow(ctx, FromRat(root), p)
		}

		return radicalPow(ctx, z.Rat(), p, q)
	}

	return UnknownResult()
}

// radicalPow adjoins a q-th root of the rational r as a fresh algebraic
// number - the minimal polynomial y^q - r, interned as a new NF field - and
// raises its generator to the p-th power (inverting first if p is
// negative), reducing the result before returning it.
func radicalPow(ctx *Context, r *big.Rat, p, q int64) Value {
	mp := qqbar.RadicalMinPoly(r, q)
	fid := ctx.InternNF(mp)
	gen := mp.Gen()

	var elem numfield.Element
	if p < 0 {
		elem = mp.Pow(mp.Inverse(gen), uint64(-p))
	} else {
		elem = mp.Pow(gen, uint64(p))
	}

	return Reduce(ctx, Value{Field: fid, Repr: elem})
}

// IntPow computes z^n for an integer n by repeated squaring, inverting
// first when n is negative.
func IntPow(ctx *Context, z Value, n int64) Value {
	if n == 0 {
		return One()
	}

	if n < 0 {
		return Div(ctx, One(), IntPow(ctx, z, -n))
	}

	result := One()
	base := z

	for n > 0 {
		if n&1 == 1 {
			result = Mul(ctx, result, base)
		}

		base = Mul(ctx, base, base)
		n >>= 1
	}

	return result
}

// exactRatRoot returns the exact q-th root of r if one exists among the
// rationals (i.e. both numerator and denominator are perfect q-th powers of
// integers, accounting for sign when q is odd), and false otherwise.
func exactRatRoot(r *big.Rat, q int64) (*big.Rat, bool) {
	if q <= 0 {
		return nil, false
	}

	neg := r.Sign() < 0
	if neg && q%2 == 0 {
		return nil, false
	}

	num := new(big.Int).Abs(r.Num())
	den := new(big.Int).Abs(r.Denom())

	rn, ok := exactIntRoot(num, q)
	if !ok {
		return nil, false
	}

	rd, ok := exactIntRoot(den, q)
	if !ok {
		return nil, false
	}

	result := new(big.Rat).SetFrac(rn, rd)
	if neg {
		result.Neg(result)
	}

	return result, true
}

// Log computes log(z), the natural logarithm, propagating special values and
// recognising only log(0) = -inf and log(1) = 0 (an undecidable zero test
// gives Unknown) before falling back to a fresh transcendental
// generator; this is the minimal counterpart Exp's log(z) recognition case
// needs to round-trip against.
func Log(ctx *Context, z Value) Value {
	switch z.Special {
	case Undefined, UnknownValue:
		return z
	case PosInf:
		return PositiveInfinity()
	case NegInf, UInf:
		return UndefinedValue()
	}

	switch IsZero(ctx, z) {
	case True:
		return NegativeInfinity()
	case Unknown:
		return UnknownResult()
	}

	if IsOne(ctx, z) == True {
		return Zero()
	}

	fid := ctx.InternFunc(Ext{Head: HeadLog, Args: []Value{z}})

	return Value{Field: fid, Repr: ring.FracFromGen(0)}
}

// exactIntRoot returns the exact q-th root of a non-negative integer n, if
// n is a perfect q-th power, via binary search.
func exactIntRoot(n *big.Int, q int64) (*big.Int, bool) {
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}

	lo, hi := big.NewInt(1), new(big.Int).Set(n)

	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, big.NewInt(1))
		mid.Rsh(mid, 1)

		p := new(big.Int).Exp(mid, big.NewInt(q), nil)

		switch p.Cmp(n) {
		case 0:
			return mid, true
		case -1:
			lo = mid
		default:
			hi = new(big.Int).Sub(mid, big.NewInt(1))
		}
	}

	p := new(big.Int).Exp(lo, big.NewInt(q), nil)
	if p.Cmp(n) == 0 {
		return lo, true
	}

	return nil, false
}
