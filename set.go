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
	"iter"
	"slices"
	"sort"
	"strings"
)

// Set is a subset of the extended real line stored as sorted, disjoint,
// non-adjacent half-open intervals.
//
// The zero value is the empty set and is ready to use. A nil *Set is treated
// as empty by every read-only method.
//
// Insert mutates the set in place and must not run concurrently with any
// other method on the same Set. All other methods only read their operands
// and return fresh sets, so an unmutated Set may be shared between goroutines.
//
// Example:
//
//	set, err := intervalset.FromPairs([2]float64{0, 10}, [2]float64{5, 20})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(set) // {[0, 20)}
type Set struct {
	intervals []Interval
}

// New builds a set from any collection of intervals. The input may be
// unsorted, overlapping or duplicated; it is sorted and coalesced into
// canonical form. The caller's slice is not modified.
//
// Every interval is checked eagerly and the first invalid one is reported
// as an *InvalidIntervalError.
func New(intervals ...Interval) (*Set, error) {
	for _, iv := range intervals {
		if err := iv.validate(); err != nil {
			return nil, err
		}
	}
	return newSet(slices.Clone(intervals)), nil
}

// MustNew is like New but panics on an invalid interval.
func MustNew(intervals ...Interval) *Set {
	s, err := New(intervals...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromPairs builds a set from raw (start, end) pairs.
func FromPairs(pairs ...[2]float64) (*Set, error) {
	intervals := make([]Interval, 0, len(pairs))
	for _, p := range pairs {
		iv, err := NewInterval(p[0], p[1])
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return newSet(intervals), nil
}

// FromPoints builds a set from a flat list of alternating boundaries:
// start0, end0, start1, end1, ...
// The pairs need not be sorted or disjoint.
func FromPoints(points ...float64) (*Set, error) {
	if len(points)%2 != 0 {
		return nil, &OddPointsError{Count: len(points)}
	}
	intervals := make([]Interval, 0, len(points)/2)
	for i := 0; i < len(points); i += 2 {
		iv, err := NewInterval(points[i], points[i+1])
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return newSet(intervals), nil
}

// newSet normalizes already-validated intervals. It takes ownership of the slice.
func newSet(intervals []Interval) *Set {
	return &Set{intervals: normalizeIntervals(intervals)}
}

// Empty returns a set containing no points.
func Empty() *Set {
	return &Set{}
}

// Full returns the set [-∞, +∞).
func Full() *Set {
	return &Set{intervals: []Interval{{start: NegInf, end: PosInf}}}
}

// elems returns the canonical intervals, treating nil as empty.
func (s *Set) elems() []Interval {
	if s == nil {
		return nil
	}
	return s.intervals
}

// Len returns the number of canonical intervals, not the number of points.
func (s *Set) Len() int {
	return len(s.elems())
}

// At returns the i-th canonical interval in ascending order.
// It panics if i is out of range, like slice indexing.
func (s *Set) At(i int) Interval {
	return s.elems()[i]
}

// All returns an iterator over the intervals in ascending order.
// The set must not be mutated while an iteration is in progress.
//
//	for iv := range set.All() {
//	    fmt.Println(iv.Start(), iv.End())
//	}
func (s *Set) All() iter.Seq[Interval] {
	return slices.Values(s.elems())
}

// Backward returns an iterator over index/interval pairs in descending order.
func (s *Set) Backward() iter.Seq2[int, Interval] {
	return slices.Backward(s.elems())
}

// Intervals returns a copy of the canonical intervals.
func (s *Set) Intervals() []Interval {
	return slices.Clone(s.elems())
}

// Points returns the canonical form as a flat list of alternating
// boundaries: start0, end0, start1, end1, ...
func (s *Set) Points() []float64 {
	elems := s.elems()
	points := make([]float64, 0, 2*len(elems))
	for _, iv := range elems {
		points = append(points, iv.start, iv.end)
	}
	return points
}

// IsEmpty returns true if the set contains no points.
func (s *Set) IsEmpty() bool {
	return len(s.elems()) == 0
}

// IsFull returns true if the set is [-∞, +∞).
func (s *Set) IsFull() bool {
	elems := s.elems()
	return len(elems) == 1 && isNegInf(elems[0].start) && isPosInf(elems[0].end)
}

// Extent returns the smallest single interval covering the set.
// The boolean is false for the empty set.
func (s *Set) Extent() (Interval, bool) {
	elems := s.elems()
	if len(elems) == 0 {
		return Interval{}, false
	}
	return Interval{start: elems[0].start, end: elems[len(elems)-1].end}, true
}

// Equal reports whether both sets contain exactly the same points.
func (s *Set) Equal(other *Set) bool {
	return slices.Equal(s.elems(), other.elems())
}

// Contains tests if the point v is in the set. It runs in O(log n).
//
// -∞ is contained when the first interval starts at -∞, and +∞ when the last
// interval ends at +∞. NaN is never contained.
func (s *Set) Contains(v float64) bool {
	elems := s.elems()
	if len(elems) == 0 {
		return false
	}
	switch {
	case isNegInf(v):
		return isNegInf(elems[0].start)
	case isPosInf(v):
		return isPosInf(elems[len(elems)-1].end)
	}

	// First interval starting after v; the candidate is the one before it.
	i := sort.Search(len(elems), func(i int) bool { return elems[i].start > v })
	if i == 0 {
		return false
	}
	return v < elems[i-1].end
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{intervals: slices.Clone(s.elems())}
}

// Validate checks the canonical form: every interval is non-empty and each
// one ends strictly before the next starts.
func (s *Set) Validate() error {
	elems := s.elems()
	for i, iv := range elems {
		if err := iv.validate(); err != nil {
			return err
		}
		if i > 0 && !(elems[i-1].end < iv.start) {
			return &NonCanonicalError{Index: i - 1, Left: elems[i-1], Right: iv}
		}
	}
	return nil
}

// String returns a human-readable representation of the set.
// Empty sets display as "∅".
func (s *Set) String() string {
	elems := s.elems()
	if len(elems) == 0 {
		return "∅"
	}

	parts := make([]string, len(elems))
	for i, iv := range elems {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
