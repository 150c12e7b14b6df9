// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing_test

import (
	"cmp"
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/heaps/container/pairing"
)

type orderedSlice[K cmp.Ordered] []K

func (h orderedSlice[K]) Less(i, j int) bool { return h[i] < h[j] }
func (h orderedSlice[K]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h orderedSlice[K]) Len() int           { return len(h) }

func (h *orderedSlice[K]) Push(v any) {
	*h = append(*h, v.(K))
}

func (h *orderedSlice[K]) Pop() (v any) {
	old := *h
	n := len(old)
	v = old[n-1]
	*h = old[:n-1]
	return
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func zipfRand(seed int64, n int) []uint64 {
	rnd := rand.New(rand.NewSource(seed))                // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 8*1024*1024*1024) // 8Gib
	r := make([]uint64, n)
	for i := range r {
		r[i] = gen.Uint64()
	}
	return r
}

const BenchmarkInputSize = 10000

func benchmarkStdHeap[K cmp.Ordered](b *testing.B, keys []K) {
	h := make(orderedSlice[K], 0, len(keys))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			stdheap.Push(&h, k)
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(&h).(K)
		}
	}
}

func benchmarkPairing[K cmp.Ordered](b *testing.B, keys []K, opts ...pairing.Option[K]) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pairing.New(opts...)
		for _, k := range keys {
			h.Insert(k)
		}
		for h.Len() > 0 {
			h.DeleteMin()
		}
	}
}

func BenchmarkStdHeapDup_10000(b *testing.B) {
	b.ReportAllocs()
	benchmarkStdHeap(b, make([]int, BenchmarkInputSize))
}

func BenchmarkStdHeapRand_10000(b *testing.B) {
	b.ReportAllocs()
	benchmarkStdHeap(b, uniformRand(0, BenchmarkInputSize))
}

func BenchmarkStdHeapZipf_10000(b *testing.B) {
	b.ReportAllocs()
	benchmarkStdHeap(b, zipfRand(0, BenchmarkInputSize))
}

func BenchmarkPairingDup_10000(b *testing.B) {
	b.ReportAllocs()
	benchmarkPairing(b, make([]int, BenchmarkInputSize))
}

func BenchmarkPairingRand_10000(b *testing.B) {
	b.ReportAllocs()
	benchmarkPairing(b, uniformRand(0, BenchmarkInputSize))
}

func BenchmarkPairingZipf_10000(b *testing.B) {
	b.ReportAllocs()
	benchmarkPairing(b, zipfRand(0, BenchmarkInputSize))
}

func BenchmarkPairingPoolRand_10000(b *testing.B) {
	b.ReportAllocs()
	benchmarkPairing(b, uniformRand(0, BenchmarkInputSize),
		pairing.WithAllocator[int](pairing.NewPool[int]()))
}

func BenchmarkPairingMeld_10000(b *testing.B) {
	b.ReportAllocs()
	keys := uniformRand(1, BenchmarkInputSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pairing.New[int]()
		for j := 0; j < len(keys); j += 100 {
			o := pairing.New[int]()
			for _, k := range keys[j : j+100] {
				o.Insert(k)
			}
			h.Meld(o)
		}
		for h.Len() > 0 {
			h.DeleteMin()
		}
	}
}
