// Package movingmedian provides a fixed-capacity median filter for streaming measurements. The filter retains the last
// capacity values in a ring buffer and reports the median of the values currently held, smoothing out outliers in
// noisy inputs such as sensor readings or latency samples.
package movingmedian

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// MovingMedian is a median filter over a sliding window of the last capacity values. Once the window is full, each new
// value evicts the oldest one.
//
// This type is not concurrency safe.
type MovingMedian[T constraints.Float] struct {
	values []T
	sorted []T
	index  int
	size   int
}

// New creates a MovingMedian that retains the last capacity values. The window and the scratch space used by Median
// are allocated here; no operation allocates afterwards. Panics if capacity is < 1.
func New[T constraints.Float](capacity int) *MovingMedian[T] {
	if capacity < 1 {
		panic("movingmedian: capacity must be >= 1")
	}
	return &MovingMedian[T]{
		values: make([]T, capacity),
		sorted: make([]T, capacity),
	}
}

// Add records a value, evicting the oldest value if the window is full.
func (f *MovingMedian[T]) Add(value T) {
	f.values[f.index] = value
	f.index = (f.index + 1) % len(f.values)
	if f.size < len(f.values) {
		f.size++
	}
}

// Median returns the median of the values currently in the window, or 0 if no values have been added. For an even
// number of values, the median is the average of the two middle values. Median does not modify the window, so it can
// be called repeatedly and interleaved freely with Add.
func (f *MovingMedian[T]) Median() T {
	if f.size == 0 {
		return 0
	}

	// The first size entries of values are exactly the live window, since the ring overwrites in place.
	sorted := f.sorted[:f.size]
	copy(sorted, f.values[:f.size])
	slices.Sort(sorted)

	if f.size%2 == 0 {
		return (sorted[f.size/2-1] + sorted[f.size/2]) / 2
	}
	return sorted[f.size/2]
}

// Size returns the number of values currently in the window.
func (f *MovingMedian[T]) Size() int {
	return f.size
}

// Capacity returns the maximum number of values the window retains.
func (f *MovingMedian[T]) Capacity() int {
	return len(f.values)
}

// Reset empties the window. The backing buffer is retained and reused by subsequent Adds.
func (f *MovingMedian[T]) Reset() {
	f.index = 0
	f.size = 0
}
