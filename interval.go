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

package intervalset

import (
	"cmp"
	"fmt"
	"slices"
)

// Interval is the half-open range [start, end) with start < end.
// Either boundary may be NegInf or PosInf.
//
// Examples:
//   - [0, 10) holds 0 but not 10
//   - [-∞, 5) holds every value below 5, including -∞ itself
//   - [5, +∞) holds 5 and everything above it, including +∞
//
// Intervals are values; the zero Interval is [0, 0) and is not valid.
// Use NewInterval or MustInterval to build one.
type Interval struct {
	start float64
	end   float64
}

// NewInterval creates the interval [start, end).
// It fails with an *InvalidIntervalError unless start < end.
func NewInterval(start, end float64) (Interval, error) {
	iv := Interval{start: start, end: end}
	if err := iv.validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// MustInterval is like NewInterval but panics if start >= end.
// Intended for literals and tests.
func MustInterval(start, end float64) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// validate rejects empty, reversed and NaN-bounded intervals.
func (iv Interval) validate() error {
	if !(iv.start < iv.end) {
		return &InvalidIntervalError{Start: iv.start, End: iv.end}
	}
	return nil
}

// Start returns the inclusive lower boundary.
func (iv Interval) Start() float64 {
	return iv.start
}

// End returns the exclusive upper boundary.
func (iv Interval) End() float64 {
	return iv.end
}

// Contains returns true if start <= v < end.
// An interval ending at +∞ also contains +∞.
func (iv Interval) Contains(v float64) bool {
	if isPosInf(v) {
		return isPosInf(iv.end)
	}
	return iv.start <= v && v < iv.end
}

// Compare orders intervals by start, then by end.
// Returns negative if iv sorts before other, zero if equal, positive otherwise.
func (iv Interval) Compare(other Interval) int {
	if c := cmp.Compare(iv.start, other.start); c != 0 {
		return c
	}
	return cmp.Compare(iv.end, other.end)
}

// Less reports whether iv sorts strictly before other.
func (iv Interval) Less(other Interval) bool {
	return iv.Compare(other) < 0
}

// Equal reports whether both boundaries match exactly.
func (iv Interval) Equal(other Interval) bool {
	return iv.start == other.start && iv.end == other.end
}

// Overlaps returns true if the intervals share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start < other.end && other.start < iv.end
}

// Touches returns true if the intervals overlap or are adjacent, so that
// their union is a single interval.
func (iv Interval) Touches(other Interval) bool {
	return iv.start <= other.end && other.start <= iv.end
}

// Covers returns true if every point of other is also in iv.
func (iv Interval) Covers(other Interval) bool {
	return iv.start <= other.start && other.end <= iv.end
}

// String renders the interval as [start, end).
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", formatBound(iv.start), formatBound(iv.end))
}

// normalizeIntervals canonicalizes valid intervals by:
//  1. Sorting by start, then end
//  2. Merging overlapping or adjacent intervals
//
// The input slice is sorted in place; the result does not alias it.
func normalizeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	slices.SortFunc(intervals, Interval.Compare)

	merged := make([]Interval, 0, len(intervals))
	current := intervals[0]
	for _, iv := range intervals[1:] {
		if iv.start <= current.end {
			current.end = max(current.end, iv.end)
			continue
		}
		merged = append(merged, current)
		current = iv
	}
	merged = append(merged, current)

	return slices.Clip(merged)
}
