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
	"slices"
	"sort"
)

// Insert adds every point of iv to the set in place, keeping canonical form.
// The net effect is s = s.Union(New(iv)), located by binary search.
//
// Inserting an interval the set already covers leaves the set untouched.
// iv is never modified. Insert fails with an *InvalidIntervalError if iv is
// not a valid interval (for example the zero Interval).
//
// Insert must not be called on a nil *Set or concurrently with any other
// method on the same set.
func (s *Set) Insert(iv Interval) error {
	if err := iv.validate(); err != nil {
		return err
	}

	elems := s.intervals
	start, end := iv.start, iv.end

	// First interval whose start is >= start.
	i := sort.Search(len(elems), func(k int) bool { return elems[k].start >= start })
	if i < len(elems) && elems[i].start == start && end <= elems[i].end {
		return nil
	}

	// [lo, hi) is the run of existing intervals absorbed by the new one.
	lo := i
	if i > 0 && start <= elems[i-1].end {
		if end <= elems[i-1].end {
			return nil
		}
		start = elems[i-1].start
		lo = i - 1
	}

	hi := i
	for hi < len(elems) && elems[hi].end <= end {
		hi++
	}
	if hi < len(elems) && elems[hi].start <= end {
		end = elems[hi].end
		hi++
	}

	s.intervals = slices.Replace(elems, lo, hi, Interval{start: start, end: end})
	return nil
}

// InsertRange adds [start, end) to the set. See Insert.
func (s *Set) InsertRange(start, end float64) error {
	iv, err := NewInterval(start, end)
	if err != nil {
		return err
	}
	return s.Insert(iv)
}
