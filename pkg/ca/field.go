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

import "github.com/jiwenfei/calcium/pkg/ca/numfield"

// FieldKind discriminates the four field variants a Value's representation
// can live in.
type FieldKind uint8

const (
	// KindQQ is the rational field itself - every Context has exactly one,
	// pre-registered at FieldID 0.
	KindQQ FieldKind = iota
	// KindNF is a single algebraic extension Q(alpha), alpha a root of
	// MinPoly.
	KindNF
	// KindFunc is a single transcendental extension Q(theta), theta the
	// generator described by Ext.
	KindFunc
	// KindMulti is a multivariate extension generated by an ordered list
	// of NF/FUNC "generator fields".
	KindMulti
)

func (k FieldKind) String() string {
	switch k {
	case KindQQ:
		return "QQ"
	case KindNF:
		return "NF"
	case KindFunc:
		return "FUNC"
	case KindMulti:
		return "MULTI"
	default:
		return "?"
	}
}

// FieldID is a stable index into a Context's field table.
type FieldID int

// QQField is the FieldID of the pre-registered rational field, the same in
// every Context.
const QQField FieldID = 0

// Field is one node of the field registry: a rational field, a single
// algebraic or transcendental extension of it, or a multivariate extension
// generated by several such single extensions.
type Field struct {
	Kind FieldKind

	// MinPoly is populated only when Kind == KindNF.
	MinPoly numfield.MinPoly

	// Ext is populated only when Kind == KindFunc: the ExtID describing the
	// transcendental generator.
	Ext ExtID

	// Gens is populated only when Kind == KindMulti: the canonically
	// ordered (per Context.compareFields) list of generator fields, each of
	// which has Kind == KindNF or Kind == KindFunc.
	Gens []FieldID
}

// equal performs a structural comparison used by Context interning. Gens
// comparisons assume both sides are already canonically ordered, which
// Context.InternField guarantees before a MULTI field is ever stored.
func (f Field) equal(other Field) bool {
	if f.Kind != other.Kind {
		return false
	}

	switch f.Kind {
	case KindQQ:
		return true
	case KindNF:
		return f.MinPoly.Cmp(other.MinPoly) == 0
	case KindFunc:
		return f.Ext == other.Ext
	case KindMulti:
		if len(f.Gens) != len(other.Gens) {
			return false
		}

		for i := range f.Gens {
			if f.Gens[i] != other.Gens[i] {
				return false
			}
		}

		return true
	default:
		return false
	}
}
