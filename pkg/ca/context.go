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
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/jiwenfei/calcium/pkg/ca/numfield"
)

// Context is the field registry: a pair of growable, content-interned
// tables (one of Ext descriptions, one of Fields) plus the stable QQField
// entry every Context carries. A Value only ever makes sense relative to
// the Context it was built in - FieldID and ExtID are indices into that
// Context's tables, not portable handles.
//
// Interning here is a simple linear scan with structural equality, not a
// hash-bucket table: the number of distinct fields and extensions a single
// computation visits is expected to stay small, so the scan is the right
// tool for this table.
type Context struct {
	exts   []Ext
	fields []Field
	log    *log.Entry
}

// NewContext constructs a fresh registry, pre-populated with the rational
// field at QQField.
func NewContext() *Context {
	ctx := &Context{
		log: log.WithField("component", "ca.context"),
	}
	ctx.fields = append(ctx.fields, Field{Kind: KindQQ})
	ctx.log.Debug("new context: registered QQ field")

	return ctx
}

// Ext returns the extension description at id.
func (ctx *Context) Ext(id ExtID) Ext {
	return ctx.exts[id]
}

// Field returns the field at id.
func (ctx *Context) Field(id FieldID) Field {
	return ctx.fields[id]
}

// InternExt returns the ExtID for e, reusing an existing equal entry if one
// is already registered.
func (ctx *Context) InternExt(e Ext) ExtID {
	for i, existing := range ctx.exts {
		if existing.equal(e) {
			return ExtID(i)
		}
	}

	e.Enclosure = evalExtEnclosure(ctx, e)

	id := ExtID(len(ctx.exts))
	ctx.exts = append(ctx.exts, e)
	ctx.log.Debugf("interned new ext #%d: %s", id, e.Head)

	return id
}

// InternField returns the FieldID for f, reusing an existing equal entry if
// one is already registered. For KindMulti, f.Gens is first canonicalised
// into the Context's deterministic total field order, so that two MULTI
// fields built from the same generator set in a different order intern to
// the same handle.
func (ctx *Context) InternField(f Field) FieldID {
	if f.Kind == KindMulti {
		gens := append([]FieldID(nil), f.Gens...)
		sort.Slice(gens, func(i, j int) bool {
			return ctx.compareFields(gens[i], gens[j]) < 0
		})
		f.Gens = gens
	}

	for i, existing := range ctx.fields {
		if existing.equal(f) {
			return FieldID(i)
		}
	}

	id := FieldID(len(ctx.fields))
	ctx.fields = append(ctx.fields, f)
	ctx.log.Debugf("interned new field #%d: %s", id, f.Kind)

	return id
}

// InternNF interns (or reuses) the single algebraic extension field defined
// by m.
func (ctx *Context) InternNF(m numfield.MinPoly) FieldID {
	return ctx.InternField(Field{Kind: KindNF, MinPoly: m})
}

// InternFunc interns (or reuses) the single transcendental extension field
// whose generator is described by e.
func (ctx *Context) InternFunc(e Ext) FieldID {
	extID := ctx.InternExt(e)

	return ctx.InternField(Field{Kind: KindFunc, Ext: extID})
}

// compareFields implements the deterministic total order over Fields
// required for canonical MULTI generator-list identity: QQ < NF < FUNC <
// MULTI, with same-kind ties broken by minimal polynomial for NF, by
// extension identity for FUNC (stable because a single Context only ever
// creates a given Ext once and subsequent requests reuse it, so creation
// order is deterministic for a deterministic sequence of operations), and
// by recursive generator-list comparison for MULTI.
func (ctx *Context) compareFields(a, b FieldID) int {
	if a == b {
		return 0
	}

	fa, fb := ctx.fields[a], ctx.fields[b]

	if fa.Kind != fb.Kind {
		if fa.Kind < fb.Kind {
			return -1
		}

		return 1
	}

	switch fa.Kind {
	case KindQQ:
		return 0
	case KindNF:
		return fa.MinPoly.Cmp(fb.MinPoly)
	case KindFunc:
		if fa.Ext == fb.Ext {
			return 0
		}

		if fa.Ext < fb.Ext {
			return -1
		}

		return 1
	case KindMulti:
		if len(fa.Gens) != len(fb.Gens) {
			if len(fa.Gens) < len(fb.Gens) {
				return -1
			}

			return 1
		}

		for i := range fa.Gens {
			if c := ctx.compareFields(fa.Gens[i], fb.Gens[i]); c != 0 {
				return c
			}
		}

		return 0
	default:
		return 0
	}
}
