// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heapsort provides a benchmark harness for pairing heaps. It
// repeatedly creates a heap, inserts n random values into it and then
// removes all n values, for sizes that are typically successive powers
// of two, and reports the time taken.
package heapsort

import (
	"math/rand"

	"cloudeng.io/heaps/container/pairing"
)

// Generate returns n values drawn from the specified distribution using
// rnd. Uniform values are drawn from [-rng, rng), Zipf values from
// [0, rng]. rng must be in (0, MaxRange].
func Generate(rnd *rand.Rand, dist Distribution, n, rng int) []int {
	values := make([]int, n)
	switch dist {
	case Uniform:
		for i := range values {
			values[i] = rnd.Intn(2*rng) - rng
		}
	case Zipf:
		gen := rand.NewZipf(rnd, 1.1, 1, uint64(rng))
		for i := range values {
			values[i] = int(gen.Uint64()) // #nosec G115
		}
	case Dup:
	}
	return values
}

// Heapsort inserts all of the supplied values into h and then removes
// the same number of values. If verify is true it returns the number
// of times that a removed value was smaller than its predecessor,
// which is always zero for a correct heap, otherwise the removed values
// are discarded unexamined.
func Heapsort(h *pairing.Heap[int], values []int, verify bool) int {
	for _, v := range values {
		h.Insert(v)
	}
	if !verify {
		for range values {
			h.DeleteMin()
		}
		return 0
	}
	violations := 0
	prev, _ := h.Min()
	for range values {
		v, ok := h.DeleteMin()
		if !ok || v < prev {
			violations++
		}
		prev = v
	}
	return violations
}
