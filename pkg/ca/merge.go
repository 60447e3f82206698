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

// generatorList returns the ordered list of "generator fields" a field
// contributes to a MULTI merge: QQ contributes none, NF and FUNC contribute
// themselves as a singleton, and MULTI contributes its own Gens list
// directly.
func generatorList(ctx *Context, f FieldID) []FieldID {
	fld := ctx.Field(f)

	switch fld.Kind {
	case KindQQ:
		return nil
	case KindNF, KindFunc:
		return []FieldID{f}
	case KindMulti:
		return fld.Gens
	default:
		return nil
	}
}

// Merge computes the smallest common field containing both a and b's
// values, together with the renaming needed to lift a representation from
// each source field into that common field's local variable numbering.
//
// Preconditions (violating either is a programmer error and panics, not a
// recoverable error): neither a nor b may be QQField, and neither Value a
// nor the fields being merged may be a special value's field. Callers are
// expected to special-case QQ and Special values before ever reaching this
// algorithm - merging is only meaningful between two genuine extension
// fields.
func Merge(ctx *Context, a, b FieldID) (common FieldID, liftA, liftB func(ring.Frac) ring.Frac) {
	if a == QQField || b == QQField {
		panic("ca: Merge called with a QQ field - QQ values must be special-cased before merging")
	}

	if a == b {
		id := func(f ring.Frac) ring.Frac { return f }

		return a, id, id
	}

	gensA := generatorList(ctx, a)
	gensB := generatorList(ctx, b)

	merged := sortedMergeGenerators(ctx, gensA, gensB)

	if len(merged) == 1 {
		common = merged[0]
	} else {
		common = ctx.InternField(Field{Kind: KindMulti, Gens: merged})
	}

	// After InternField, MULTI fields are stored with Gens canonically
	// re-sorted; recompute the renaming against the field's own stored
	// order so liftA/liftB land in the variable numbering the result
	// actually uses.
	finalGens := generatorList(ctx, common)
	mapA := renamingFor(gensA, finalGens)
	mapB := renamingFor(gensB, finalGens)

	liftA = func(f ring.Frac) ring.Frac { return f.Rename(mapA) }
	liftB = func(f ring.Frac) ring.Frac { return f.Rename(mapB) }

	return common, liftA, liftB
}

// sortedMergeGenerators performs the sorted-merge union of two generator
// lists under the Context's deterministic field order, returning the
// merged list (renamingFor computes each input's positions within it).
func sortedMergeGenerators(ctx *Context, a, b []FieldID) (merged []FieldID) {
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch c := ctx.compareFields(a[i], b[j]); {
		case c < 0:
			merged = append(merged, a[i])
			i++
		case c > 0:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}

	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)

	return merged
}

// renamingFor builds the Rename mapping taking each index of src to its
// position within dst (src is assumed to be a sub-sequence of dst, which
// sortedMergeGenerators guarantees).
func renamingFor(src, dst []FieldID) []ring.Var {
	mapping := make([]ring.Var, len(src))

	for i, g := range src {
		for j, d := range dst {
			if g == d {
				mapping[i] = ring.Var(j)
				break
			}
		}
	}

	return mapping
}

// MergeValues lifts two ordinary (non-special) Values into their common
// field, returning both representations as ring.Frac expressed in that
// field's local variables. A QQ-field operand is merge-compatible with any
// field (it simply embeds as a constant), but is never itself the target
// of a generator renaming.
func MergeValues(ctx *Context, a, b Value) (common FieldID, fa, fb ring.Frac) {
	switch {
	case a.Field == QQField && b.Field == QQField:
		return QQField, valueToFrac(ctx, a), valueToFrac(ctx, b)
	case a.Field == QQField:
		return b.Field, valueToFrac(ctx, a), valueToFrac(ctx, b)
	case b.Field == QQField:
		return a.Field, valueToFrac(ctx, a), valueToFrac(ctx, b)
	}

	common, liftA, liftB := Merge(ctx, a.Field, b.Field)

	return common, liftA(valueToFrac(ctx, a)), liftB(valueToFrac(ctx, b))
}

// valueToFrac expresses any non-special Value as a ring.Frac in its own
// field's local variable numbering: QQ embeds as a rational constant, NF
// expands its coefficient-vector representation into the power basis of
// the field's (here treated as opaque) generator, and FUNC/MULTI values
// already are a ring.Frac.
func valueToFrac(ctx *Context, v Value) ring.Frac {
	switch ctx.Field(v.Field).Kind {
	case KindQQ:
		r := v.Rat()

		return ring.Frac{Num: ring.FromInt(r.Num()), Den: ring.FromInt(r.Denom())}
	case KindNF:
		return nfElementToFrac(v.NFElement(ctx))
	default:
		return v.Frac(ctx)
	}
}

// nfElementToFrac lifts a dense algebraic coefficient vector into a
// rational function over a single opaque generator variable (index 0),
// clearing denominators into a common constant denominator. The generator
// is not reduced modulo the field's minimal polynomial here - ideal
// reduction installing that relation is permitted but not required.
func nfElementToFrac(e numfield.Element) ring.Frac {
	den := big.NewInt(1)
	for i := range e.Coeffs {
		den = lcm(den, e.Coeffs[i].Denom())
	}

	num := ring.Zero
	genPow := ring.One

	for i := range e.Coeffs {
		if i > 0 {
			genPow = genPow.Mul(ring.FromGen(0))
		}

		c := &e.Coeffs[i]
		if c.Sign() == 0 {
			continue
		}

		var scaled big.Int

		scaled.Mul(c.Num(), new(big.Int).Div(den, c.Denom()))
		num = num.Add(genPow.MulScalar(&scaled))
	}

	return ring.Frac{Num: num, Den: ring.FromInt(den)}
}

// lcm returns the least common multiple of two positive integers.
func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Div(a, g)
	l.Mul(l, b)

	return l
}
