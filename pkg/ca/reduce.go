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

// Reduce applies ideal reduction to v's representation and then condenses
// it: if the reduced representation no longer uses every generator of v's
// field, v is re-expressed in the smallest field that still covers exactly
// the generators it actually uses (falling all the way back to QQField
// when no generator survives at all). QQ values pass through unchanged; an
// NF value whose element lies in the rational subfield is demoted to QQ,
// and any other NF value passes through unchanged, since neither has a
// rational-function representation to reduce.
func Reduce(ctx *Context, v Value) Value {
	if v.IsSpecial() {
		return v
	}

	switch ctx.Field(v.Field).Kind {
	case KindQQ:
		return v
	case KindNF:
		if r, ok := v.NFElement(ctx).AsRat(); ok {
			return FromRat(r)
		}

		return v
	}

	f := v.Frac(ctx).Reduce()
	allGens := generatorList(ctx, v.Field)
	used := f.UsedVars()

	if len(used) == len(allGens) {
		return Value{Field: v.Field, Repr: f}
	}

	if len(used) == 0 {
		if c, ok := f.AsConstant(); ok {
			return FromRat(c)
		}

		return Value{Field: v.Field, Repr: f}
	}

	subGens := make([]FieldID, len(used))
	mapping := make([]ring.Var, len(allGens))

	for newIdx, oldIdx := range used {
		subGens[newIdx] = allGens[oldIdx]
		mapping[oldIdx] = ring.Var(newIdx)
	}

	renamed := f.Rename(mapping)

	if len(subGens) == 1 {
		target := subGens[0]

		if ctx.Field(target).Kind == KindNF {
			if elem, ok := fracToNFElement(ctx.Field(target).MinPoly, renamed); ok {
				return Value{Field: target, Repr: elem}
			}
			// The denominator reduces to zero at alpha: the claimed unused
			// generator actually matters (a pole), so decline to condense
			// and keep the original, wider representation.
			return Value{Field: v.Field, Repr: f}
		}

		return Value{Field: target, Repr: renamed}
	}

	newField := ctx.InternField(Field{Kind: KindMulti, Gens: subGens})
	finalGens := generatorList(ctx, newField)
	finalMap := renamingFor(subGens, finalGens)

	return Value{Field: newField, Repr: renamed.Rename(finalMap)}
}

// fracToNFElement converts a single-variable rational function (over that
// field's opaque generator, already renumbered to local variable 0) into an
// algebraic number field element by evaluating numerator and denominator in
// the power basis of alpha and dividing. Returns false if the denominator
// evaluates to the zero element, which means the representation cannot be
// condensed into this field after all.
func fracToNFElement(mp numfield.MinPoly, f ring.Frac) (numfield.Element, bool) {
	num := polyToNFElement(mp, f.Num)
	den := polyToNFElement(mp, f.Den)

	if den.IsZero() {
		return numfield.Element{}, false
	}

	return mp.Mul(num, mp.Inverse(den)), true
}

// polyToNFElement evaluates a single-variable polynomial (in local variable
// 0) at alpha, reducing modulo mp as it accumulates.
func polyToNFElement(mp numfield.MinPoly, p ring.Poly) numfield.Element {
	elem := mp.FromRat(big.NewRat(0, 1))

	for i := range p.Len() {
		term := p.Term(i)
		degree := term.Len()
		coeff := term.Coefficient()

		var r big.Rat

		r.SetInt(&coeff)

		contribution := mp.Scale(mp.Pow(mp.Gen(), uint64(degree)), &r)
		elem = mp.Add(elem, contribution)
	}

	return elem
}
