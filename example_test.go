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

package intervalset_test

import (
	"errors"
	"fmt"

	intervalset "github.com/contriboss/intervalset-go"
)

// ExampleSet demonstrates the set algebra on two sets of intervals
func ExampleSet() {
	a, _ := intervalset.FromPairs(
		[2]float64{0, 10},
		[2]float64{20, 30},
		[2]float64{40, 50},
	)
	b, _ := intervalset.FromPairs([2]float64{5, 25})

	fmt.Println("union:       ", a.Union(b))
	fmt.Println("intersection:", a.Intersect(b))
	fmt.Println("difference:  ", a.Difference(b))
	fmt.Println("complement:  ", a.Complement())

	// Output:
	// union:        {[0, 30), [40, 50)}
	// intersection: {[5, 10), [20, 25)}
	// difference:   {[0, 5), [25, 30), [40, 50)}
	// complement:   {[-∞, 0), [10, 20), [30, 40), [50, +∞)}
}

// ExampleSet_Insert shows touching intervals being merged in place
func ExampleSet_Insert() {
	var set intervalset.Set
	_ = set.InsertRange(10, 20)
	_ = set.InsertRange(0, 10)
	_ = set.Insert(intervalset.MustInterval(30, intervalset.PosInf))

	fmt.Println(set.String(), set.Len())

	// Output:
	// {[0, 20), [30, +∞)} 2
}

// ExampleSet_Contains shows membership at interval boundaries and infinities
func ExampleSet_Contains() {
	set, _ := intervalset.FromPoints(intervalset.NegInf, -10, 0, 10)

	for _, v := range []float64{intervalset.NegInf, -10, 0, 9.5, 10, intervalset.PosInf} {
		fmt.Printf("%v: %v\n", v, set.Contains(v))
	}

	// Output:
	// -Inf: true
	// -10: false
	// 0: true
	// 9.5: true
	// 10: false
	// +Inf: false
}

// ExampleSet_All iterates the canonical intervals in ascending order
func ExampleSet_All() {
	set := intervalset.MustNew(
		intervalset.MustInterval(40, 50),
		intervalset.MustInterval(0, 10),
		intervalset.MustInterval(5, 15),
	)

	for iv := range set.All() {
		fmt.Println(iv.Start(), iv.End())
	}

	// Output:
	// 0 15
	// 40 50
}

// ExampleNewInterval shows how invalid intervals are reported
func ExampleNewInterval() {
	_, err := intervalset.NewInterval(10, 10)
	fmt.Println(err)
	fmt.Println(errors.Is(err, intervalset.ErrInvalidInterval))

	// Output:
	// invalid interval [10, 10): start must be less than end
	// true
}

// ExampleBuilder collects intervals and coalesces them once
func ExampleBuilder() {
	b := intervalset.NewBuilder(intervalset.WithCapacity(3))
	_ = b.AddRange(20, 30)
	_ = b.AddRange(0, 10)
	_ = b.AddRange(10, 15)

	set, err := b.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(set)

	// Output:
	// {[0, 15), [20, 30)}
}
