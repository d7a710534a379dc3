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
	"errors"
	"fmt"
)

// ErrInvalidInterval is matched by every InvalidIntervalError.
//
// Example:
//
//	_, err := intervalset.NewInterval(10, 10)
//	if errors.Is(err, intervalset.ErrInvalidInterval) {
//	    // start >= end
//	}
var ErrInvalidInterval = errors.New("invalid interval")

// InvalidIntervalError reports a (start, end) pair that does not satisfy
// start < end. NaN boundaries are rejected the same way.
type InvalidIntervalError struct {
	Start float64
	End   float64
}

// Error implements the error interface
func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval [%s, %s): start must be less than end",
		formatBound(e.Start), formatBound(e.End))
}

// Is reports whether target is ErrInvalidInterval.
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}

// NonCanonicalError is returned by Set.Validate when two neighbouring
// intervals are out of order, overlap, or touch.
type NonCanonicalError struct {
	Index int
	Left  Interval
	Right Interval
}

// Error implements the error interface
func (e *NonCanonicalError) Error() string {
	return fmt.Sprintf("set is not canonical at index %d: %s must end before %s starts",
		e.Index, e.Left, e.Right)
}

// OddPointsError is returned by FromPoints when the boundary list cannot be
// split into (start, end) pairs.
type OddPointsError struct {
	Count int
}

// Error implements the error interface.
func (e *OddPointsError) Error() string {
	return fmt.Sprintf("expected an even number of boundary points, got %d", e.Count)
}
