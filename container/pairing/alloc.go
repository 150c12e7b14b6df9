// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing

import "sync"

// Allocator is used by a Heap to obtain a node for every value inserted
// into it and to return each node once it is no longer part of the heap.
// Every node obtained via New is passed to Free exactly once, provided
// that the heap's Release method is called when it is no longer needed;
// nodes are cleared before being passed to Free.
type Allocator[T any] interface {
	New() *Node[T]
	Free(*Node[T])
}

type gcAllocator[T any] struct{}

func (gcAllocator[T]) New() *Node[T] { return &Node[T]{} }

func (gcAllocator[T]) Free(*Node[T]) {}

// Pool is an Allocator that recycles nodes via a sync.Pool. A single
// Pool may be shared by multiple heaps.
type Pool[T any] struct {
	p sync.Pool
}

// NewPool returns a new Pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any { return &Node[T]{} },
		},
	}
}

// New implements Allocator.
func (p *Pool[T]) New() *Node[T] {
	return p.p.Get().(*Node[T])
}

// Free implements Allocator.
func (p *Pool[T]) Free(n *Node[T]) {
	p.p.Put(n)
}
