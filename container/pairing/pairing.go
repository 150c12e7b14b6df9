// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pairing provides a generic, meldable min-heap implemented as a
// pairing heap. Insert and Meld take amortized constant time and
// DeleteMin takes amortized logarithmic time.
//
// A Heap is not safe for concurrent use. Meld transfers ownership of
// all of its argument's elements to the receiver and leaves the argument
// empty.
package pairing

import (
	"cmp"
	"iter"
)

// Heap represents a pairing heap. The zero value has no ordering and
// can hold at most one value, use New or NewFunc to create a Heap.
type Heap[T any] struct {
	root *Node[T]
	size int
	less func(a, b T) bool
	opts options[T]
}

// New returns an empty Heap whose values are ordered by <.
func New[T cmp.Ordered](opts ...Option[T]) *Heap[T] {
	return NewFunc(cmp.Less[T], opts...)
}

// NewFunc returns an empty Heap whose values are ordered by the supplied
// less function, which must implement a strict weak ordering.
func NewFunc[T any](less func(a, b T) bool, opts ...Option[T]) *Heap[T] {
	h := &Heap[T]{less: less}
	h.opts.stackCap = 16
	for _, fn := range opts {
		fn(&h.opts)
	}
	if h.opts.alloc == nil {
		h.opts.alloc = gcAllocator[T]{}
	}
	return h
}

// Len returns the number of values in the heap.
func (h *Heap[T]) Len() int {
	return h.size
}

// Insert adds v to the heap.
func (h *Heap[T]) Insert(v T) {
	n := h.allocator().New()
	n.value = v
	h.root = meld(h.less, h.root, n)
	h.size++
}

// Min returns the smallest value in the heap without removing it.
// It returns false if the heap is empty.
func (h *Heap[T]) Min() (T, bool) {
	if h.root == nil {
		var zero T
		return zero, false
	}
	return h.root.value, true
}

// DeleteMin removes and returns the smallest value in the heap. It
// returns false, and leaves the heap unchanged, if the heap is empty.
func (h *Heap[T]) DeleteMin() (T, bool) {
	if h.root == nil {
		var zero T
		return zero, false
	}
	old := h.root
	children := old.child
	old.child = nil
	h.root = mergeList(h.less, children)
	h.size--
	v := old.value
	h.free(old)
	return v, true
}

// Meld moves all of the values in other into h, leaving other empty.
// No values are copied. Melding a heap with itself, or with nil, is a
// no-op. The ordering used by h is assumed to be the same as that used
// by other and nodes melded into h are subsequently released via h's
// Allocator, hence both heaps should share the same Allocator.
func (h *Heap[T]) Meld(other *Heap[T]) {
	if other == nil || other == h {
		return
	}
	h.root = meld(h.less, h.root, other.root)
	h.size += other.size
	other.root, other.size = nil, 0
}

// Drain returns an iterator that removes values from the heap in
// ascending order until either the heap is empty or iteration is
// stopped.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.DeleteMin()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (h *Heap[T]) free(n *Node[T]) {
	*n = Node[T]{}
	h.allocator().Free(n)
}

func (h *Heap[T]) allocator() Allocator[T] {
	if h.opts.alloc == nil {
		return gcAllocator[T]{}
	}
	return h.opts.alloc
}

func (h *Heap[T]) stack() []*Node[T] {
	return make([]*Node[T], 0, h.opts.stackCap)
}
