// Package rng derives isolated, reproducible draw sequences from a global seed.
package rng

import (
	"golang.org/x/exp/rand"
)

// SubSeedStride separates the sub-seed ranges of consecutive records.
// Sub-indexes must stay below it.
const SubSeedStride = 1000

// RecordSeed returns the seed that drives every record-level draw for index.
func RecordSeed(seed int64, index int) int64 {
	return seed + int64(index)
}

// SubSeed returns the seed for one sub-concern (a review, for example) of a record.
func SubSeed(seed int64, index, sub int) int64 {
	return seed + int64(index)*SubSeedStride + int64(sub)
}

// Stream is a uniform [0,1) source fully determined by its seed.
// A Stream is not safe for concurrent use; build one per call.
type Stream struct {
	r *rand.Rand
}

// New returns a fresh stream seeded with seed.
func New(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(uint64(seed)))}
}

// ForRecord returns the stream for record index under the global seed.
func ForRecord(seed int64, index int) *Stream {
	return New(RecordSeed(seed, index))
}

// ForSub returns the stream for sub-concern sub of record index.
func ForSub(seed int64, index, sub int) *Stream {
	return New(SubSeed(seed, index, sub))
}

// Float returns the next draw in [0,1).
func (s *Stream) Float() float64 {
	return s.r.Float64()
}

// IntN returns floor(Float()*n), a value in [0,n). It returns 0 when n <= 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// IntRange returns a value in [lo,hi], both inclusive.
func (s *Stream) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.IntN(hi-lo+1)
}

// Pick returns one element of items chosen with a single draw.
func Pick[T any](s *Stream, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.IntN(len(items))]
}
