// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intervalset represents subsets of the extended real line as a
// minimal sorted sequence of disjoint, non-adjacent half-open intervals.
//
// Every Set is kept in canonical form:
//   - intervals are sorted ascending by start
//   - for adjacent intervals a and b, a.End() < b.Start()
//   - no interval is empty
//
// Because the form is canonical, two sets hold the same points exactly when
// they hold the same intervals, so Equal is a plain element-wise comparison.
//
// Boundaries are float64 values; NegInf and PosInf are valid boundaries.
//
// Example:
//
//	a := intervalset.MustNew(
//	    intervalset.MustInterval(0, 10),
//	    intervalset.MustInterval(20, 30),
//	)
//	b := intervalset.MustNew(intervalset.MustInterval(5, 25))
//	a.Union(b)      // {[0, 30)}
//	a.Intersect(b)  // {[5, 10), [20, 25)}
//	a.Complement()  // {[-∞, 0), [10, 20), [30, +∞)}
package intervalset

import (
	"math"
	"strconv"
)

var (
	// NegInf is the lowest boundary, -∞.
	NegInf = math.Inf(-1)
	// PosInf is the highest boundary, +∞.
	PosInf = math.Inf(1)
)

func isNegInf(v float64) bool {
	return math.IsInf(v, -1)
}

func isPosInf(v float64) bool {
	return math.IsInf(v, 1)
}

// formatBound renders a boundary value, using ∞ symbols for the sentinels.
func formatBound(v float64) string {
	switch {
	case isNegInf(v):
		return "-∞"
	case isPosInf(v):
		return "+∞"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
