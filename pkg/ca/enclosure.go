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

import "math"

// Enclosure is a deliberately lightweight float64 center-radius ball over
// the complex plane, used only as a cheap numerical heuristic (e.g. "these
// two values are plausibly different, stop trying structural
// simplifications"). It is not arbitrary-precision and carries no rigorous
// error-propagation guarantees; a real enclosure/ball-arithmetic library is
// out of scope here, so this stands in for just enough of one to give the
// classification predicates a fast pre-check.
type Enclosure struct {
	ReCenter, ImCenter float64
	Radius             float64
}

// PointEnclosure builds an exact (zero-radius) enclosure around a point.
func PointEnclosure(re, im float64) Enclosure {
	return Enclosure{re, im, 0}
}

// Add returns an enclosure containing e+f.
func (e Enclosure) Add(f Enclosure) Enclosure {
	return Enclosure{e.ReCenter + f.ReCenter, e.ImCenter + f.ImCenter, e.Radius + f.Radius}
}

// Mul returns an enclosure containing e*f, over-approximating the radius by
// the triangle inequality rather than computing a tight product bound.
func (e Enclosure) Mul(f Enclosure) Enclosure {
	re := e.ReCenter*f.ReCenter - e.ImCenter*f.ImCenter
	im := e.ReCenter*f.ImCenter + e.ImCenter*f.ReCenter

	magE := math.Hypot(e.ReCenter, e.ImCenter)
	magF := math.Hypot(f.ReCenter, f.ImCenter)
	radius := magE*f.Radius + magF*e.Radius + e.Radius*f.Radius

	return Enclosure{re, im, radius}
}

// DefinitelyNonzero reports whether this enclosure's radius is strictly
// smaller than its distance from the origin, i.e. zero provably lies
// outside the ball. A false result is inconclusive, not a claim of zero.
func (e Enclosure) DefinitelyNonzero() bool {
	return math.Hypot(e.ReCenter, e.ImCenter) > e.Radius
}

// DefinitelyDistinct reports whether e and f's balls are disjoint, meaning
// the values they enclose cannot be equal. A false result is inconclusive.
func (e Enclosure) DefinitelyDistinct(f Enclosure) bool {
	dist := math.Hypot(e.ReCenter-f.ReCenter, e.ImCenter-f.ImCenter)

	return dist > e.Radius+f.Radius
}
