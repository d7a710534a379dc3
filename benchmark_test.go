package intervalset

import (
	"math/rand/v2"
	"testing"
)

// Benchmark scenarios for set algebra and point insertion

// spacedSet returns n intervals of width 5 placed every 10 units, starting at offset.
func spacedSet(n int, offset float64) *Set {
	intervals := make([]Interval, n)
	for i := range intervals {
		start := offset + float64(i*10)
		intervals[i] = Interval{start: start, end: start + 5}
	}
	return &Set{intervals: intervals}
}

// BenchmarkConstruct measures sorting and coalescing shuffled, overlapping input
func BenchmarkConstruct(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 1))
	intervals := make([]Interval, 10000)
	for i := range intervals {
		start := float64(r.IntN(100000))
		intervals[i] = Interval{start: start, end: start + float64(1+r.IntN(20))}
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := New(intervals...); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

// BenchmarkInsert measures repeated in-place insertion into a growing set
func BenchmarkInsert(b *testing.B) {
	r := rand.New(rand.NewPCG(2, 2))
	points := make([]float64, 1000)
	for i := range points {
		points[i] = float64(r.IntN(100000))
	}

	b.ResetTimer()
	for b.Loop() {
		var set Set
		for _, p := range points {
			if err := set.InsertRange(p, p+3); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	}
}

// BenchmarkIntersect measures the two-pointer merge on interleaved sets
func BenchmarkIntersect(b *testing.B) {
	x := spacedSet(10000, 0)
	y := spacedSet(10000, 3)

	b.ResetTimer()
	for b.Loop() {
		x.Intersect(y)
	}
}

// BenchmarkDifference measures single-pass subtraction on interleaved sets
func BenchmarkDifference(b *testing.B) {
	x := spacedSet(10000, 0)
	y := spacedSet(10000, 3)

	b.ResetTimer()
	for b.Loop() {
		x.Difference(y)
	}
}

// BenchmarkContains measures binary-search membership
func BenchmarkContains(b *testing.B) {
	set := spacedSet(100000, 0)

	b.ResetTimer()
	for b.Loop() {
		set.Contains(523417.5)
	}
}
