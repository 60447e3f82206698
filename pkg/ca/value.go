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

	"github.com/jiwenfei/calcium/pkg/ca/numfield"
	"github.com/jiwenfei/calcium/pkg/ca/ring"
)

// Special marks a Value as one of the non-field "extended" constants that
// no Field representation can hold.
type Special uint8

const (
	// NotSpecial means the Value is an ordinary field element: see Field
	// and Repr.
	NotSpecial Special = iota
	Undefined
	UnknownValue
	UInf
	PosInf
	NegInf
)

// Value is an element of the extended complex numbers: either one of the
// five special constants above, or an ordinary element of some Field,
// represented as:
//
//   - *big.Rat, when Field.Kind == KindQQ
//   - numfield.Element, when Field.Kind == KindNF
//   - ring.Frac, when Field.Kind == KindFunc or KindMulti
//
// Repr's dynamic type is always determined by Field's Kind; callers should
// use the typed accessors below rather than asserting directly.
type Value struct {
	Special Special
	Field   FieldID
	Repr    any
}

// IsSpecial reports whether v is one of the extended constants rather than
// an ordinary field element.
func (v Value) IsSpecial() bool {
	return v.Special != NotSpecial
}

// Rat returns v's representation as *big.Rat. Panics if v is not a QQ
// value, which is a programmer error (callers must check Field.Kind, or
// use classify.go's predicates, before calling this).
func (v Value) Rat() *big.Rat {
	if v.IsSpecial() || v.Field != QQField {
		panic("ca: Rat() called on a non-QQ value")
	}

	return v.Repr.(*big.Rat)
}

// NFElement returns v's representation as a numfield.Element. Panics if v
// is not an NF value.
func (v Value) NFElement(ctx *Context) numfield.Element {
	if v.IsSpecial() || ctx.Field(v.Field).Kind != KindNF {
		panic("ca: NFElement() called on a non-NF value")
	}

	return v.Repr.(numfield.Element)
}

// Frac returns v's representation as a ring.Frac. Panics if v is not a
// FUNC or MULTI value.
func (v Value) Frac(ctx *Context) ring.Frac {
	if v.IsSpecial() {
		panic("ca: Frac() called on a special value")
	}

	switch ctx.Field(v.Field).Kind {
	case KindFunc, KindMulti:
		return v.Repr.(ring.Frac)
	default:
		panic("ca: Frac() called on a non-FUNC/MULTI value")
	}
}

// Equal performs exact structural equality: two Values are equal here only
// when they carry literally the same representation in the same field (or
// the same special marker). This is sound but incomplete, exactly like
// ring.Frac.Equal - two values that are mathematically equal but live in
// differently-shaped representations are not recognised by this check.
func (v Value) Equal(other Value) bool {
	if v.Special != other.Special {
		return false
	}

	if v.IsSpecial() {
		return true
	}

	if v.Field != other.Field {
		return false
	}

	switch a := v.Repr.(type) {
	case *big.Rat:
		b, ok := other.Repr.(*big.Rat)
		return ok && a.Cmp(b) == 0
	case numfield.Element:
		b, ok := other.Repr.(numfield.Element)
		return ok && a.Equal(b)
	case ring.Frac:
		b, ok := other.Repr.(ring.Frac)
		return ok && a.Equal(b)
	default:
		return false
	}
}

// FromRat embeds a rational number as a QQ value.
func FromRat(r *big.Rat) Value {
	return Value{Field: QQField, Repr: new(big.Rat).Set(r)}
}

// FromInt64 embeds an integer as a QQ value.
func FromInt64(n int64) Value {
	return FromRat(big.NewRat(n, 1))
}

// Zero is the rational 0.
func Zero() Value { return FromInt64(0) }

// One is the rational 1.
func One() Value { return FromInt64(1) }

// NegOne is the rational -1.
func NegOne() Value { return FromInt64(-1) }

// imaginaryUnitMinPoly is the minimal polynomial x^2+1.
func imaginaryUnitMinPoly() numfield.MinPoly {
	return numfield.NewMinPoly(*big.NewRat(1, 1), *big.NewRat(0, 1))
}

// I constructs the imaginary unit as an NF(x^2+1) value.
func I(ctx *Context) Value {
	fid := ctx.InternNF(imaginaryUnitMinPoly())

	return Value{Field: fid, Repr: ctx.Field(fid).MinPoly.Gen()}
}

// NegI constructs -i.
func NegI(ctx *Context) Value {
	fid := ctx.InternNF(imaginaryUnitMinPoly())
	mp := ctx.Field(fid).MinPoly

	return Value{Field: fid, Repr: mp.Neg(mp.Gen())}
}

// Pi constructs the transcendental constant pi as a FUNC(Pi) value.
func Pi(ctx *Context) Value {
	fid := ctx.InternFunc(Ext{Head: HeadPi})

	return Value{Field: fid, Repr: ring.FracFromGen(0)}
}

// PositiveInfinity is the signed infinity +inf.
func PositiveInfinity() Value { return Value{Special: PosInf} }

// NegativeInfinity is the signed infinity -inf.
func NegativeInfinity() Value { return Value{Special: NegInf} }

// UndirectedInfinity is the unsigned "complex infinity".
func UndirectedInfinity() Value { return Value{Special: UInf} }

// UndefinedValue is the result of an operation with no consistent value
// (e.g. 0/0).
func UndefinedValue() Value { return Value{Special: Undefined} }

// UnknownResult marks a value this system could not determine (distinct
// from Undefined: the true value exists, but was not computed).
func UnknownResult() Value { return Value{Special: UnknownValue} }
