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

// Union returns the set of points in either this set or the other.
func (s *Set) Union(other *Set) *Set {
	a, b := s.elems(), other.elems()
	intervals := make([]Interval, 0, len(a)+len(b))
	intervals = append(intervals, a...)
	intervals = append(intervals, b...)
	return newSet(intervals)
}

// Intersect returns the set of points in both this set and the other.
func (s *Set) Intersect(other *Set) *Set {
	a, b := s.elems(), other.elems()
	if len(a) == 0 || len(b) == 0 {
		return &Set{}
	}

	result := make([]Interval, 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		se, oe := a[i], b[j]
		if lo, hi := max(se.start, oe.start), min(se.end, oe.end); lo < hi {
			result = append(result, Interval{start: lo, end: hi})
		}

		// On a tie both intervals are exhausted.
		if se.end <= oe.end {
			i++
		}
		if oe.end <= se.end {
			j++
		}
	}

	return &Set{intervals: result}
}

// Complement returns the set of points NOT in this set.
func (s *Set) Complement() *Set {
	elems := s.elems()
	if len(elems) == 0 {
		return Full()
	}

	gaps := make([]Interval, 0, len(elems)+1)
	if first := elems[0]; !isNegInf(first.start) {
		gaps = append(gaps, Interval{start: NegInf, end: first.start})
	}
	for i := 1; i < len(elems); i++ {
		gaps = append(gaps, Interval{start: elems[i-1].end, end: elems[i].start})
	}
	if last := elems[len(elems)-1]; !isPosInf(last.end) {
		gaps = append(gaps, Interval{start: last.end, end: PosInf})
	}

	return &Set{intervals: gaps}
}

// Difference returns the set of points in this set but not in the other.
// The result is identical to s.Intersect(other.Complement()), computed in a
// single pass without materializing the complement.
func (s *Set) Difference(other *Set) *Set {
	a, b := s.elems(), other.elems()
	if len(a) == 0 {
		return &Set{}
	}
	if len(b) == 0 {
		return s.Clone()
	}

	result := make([]Interval, 0, len(a))
	j := 0
	for _, iv := range a {
		cur := iv.start

		// Skip subtrahends that end before this interval begins. A
		// subtrahend that spans several intervals stays at j.
		for j < len(b) && b[j].end <= cur {
			j++
		}

		for k := j; k < len(b) && b[k].start < iv.end; k++ {
			if cur < b[k].start {
				result = append(result, Interval{start: cur, end: b[k].start})
			}
			cur = max(cur, b[k].end)
			if cur >= iv.end {
				break
			}
		}

		if cur < iv.end {
			result = append(result, Interval{start: cur, end: iv.end})
		}
	}

	return &Set{intervals: result}
}

// IsSubset returns true if every point in this set is also in the other set.
func (s *Set) IsSubset(other *Set) bool {
	a, b := s.elems(), other.elems()
	if len(a) == 0 {
		return true
	}

	// In canonical form each interval of a must sit inside a single
	// interval of b.
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) {
			return false
		}

		if b[j].Covers(a[i]) {
			i++
			continue
		}

		if b[j].end <= a[i].start {
			j++
			continue
		}

		return false
	}

	return true
}

// IsDisjoint returns true if this set and the other set have no points in common.
func (s *Set) IsDisjoint(other *Set) bool {
	a, b := s.elems(), other.elems()
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Overlaps(b[j]) {
			return false
		}

		if a[i].end <= b[j].end {
			i++
		} else {
			j++
		}
	}

	return true
}
