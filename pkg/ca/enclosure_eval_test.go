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

import "testing"

// pi's enclosure should be a tight, exact (zero-radius) point around its
// float64 approximation.
func Test_EnclosureEval_01(t *testing.T) {
	ctx := NewContext()

	enc, ok := Pi(ctx).Enclosure(ctx)
	if !ok {
		t.Fatal("pi should have a numerical enclosure")
	}

	if enc.Radius != 0 {
		t.Errorf("pi's Ext-level enclosure should be exact, got radius %v", enc.Radius)
	}

	if enc.ReCenter < 3.14 || enc.ReCenter > 3.15 {
		t.Errorf("pi's enclosure center should approximate pi, got %v", enc.ReCenter)
	}
}

// An NF value (no numerical root isolation implemented) reports no
// enclosure, honestly, rather than a fabricated one.
func Test_EnclosureEval_02(t *testing.T) {
	ctx := NewContext()

	if _, ok := I(ctx).Enclosure(ctx); ok {
		t.Error("an NF value should not report a numerical enclosure")
	}
}

// exp(pi) - 1 is far enough from the origin that the enclosure pre-check
// alone should resolve IsZero to False, without needing the fingerprint
// escalation.
func Test_EnclosureEval_03(t *testing.T) {
	ctx := NewContext()

	z := Sub(ctx, Exp(ctx, Pi(ctx)), One())

	enc, ok := z.Enclosure(ctx)
	if !ok {
		t.Fatal("exp(pi) - 1 should have a numerical enclosure")
	}

	if !enc.DefinitelyNonzero() {
		t.Error("exp(pi) - 1's enclosure should be definitely nonzero")
	}

	if IsZero(ctx, z) != False {
		t.Error("exp(pi) - 1 should classify as definitely nonzero")
	}
}
