// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing

// Node is a single cell of the tree that backs a Heap. A node's children
// form a singly linked, non-circular list threaded through next; child
// points to the leftmost of them. A root never has a next sibling.
//
// Nodes are only ever linked by the heap that owns them; the type is
// exported so that an Allocator can create and recycle them.
type Node[T any] struct {
	value T
	next  *Node[T]
	child *Node[T]
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// merge melds two roots, a and b, both of which must have a nil next.
// The root with the larger value becomes the leftmost child of the other
// and its existing child list is retained with the displaced leftmost
// child linked after it. On ties b becomes the child. Both a and b are
// consumed, only the returned root may be used afterwards.
func merge[T any](less func(a, b T) bool, a, b *Node[T]) *Node[T] {
	if less(b.value, a.value) {
		a.next = b.child
		b.child = a
		return b
	}
	b.next = a.child
	a.child = b
	return a
}

// meld is merge extended to allow for either root to be nil.
func meld[T any](less func(a, b T) bool, a, b *Node[T]) *Node[T] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return merge(less, a, b)
}

// mergeList consolidates a list of sibling trees, linked via next, into
// a single tree using the two-pass scheme: the first pass melds pairs
// from left to right and pushes each result onto an accumulator, which
// reverses their order; an odd trailing tree is pushed as is. The second
// pass pops the accumulator and folds each tree into a running root.
// Both passes are needed to obtain the amortized O(log n) bound for
// repeated delete-min operations.
func mergeList[T any](less func(a, b T) bool, head *Node[T]) *Node[T] {
	var acc *Node[T]
	for head != nil {
		first := head
		head = first.next
		first.next = nil
		if second := head; second != nil {
			head = second.next
			second.next = nil
			first = merge(less, first, second)
		}
		first.next = acc
		acc = first
	}
	if acc == nil {
		return nil
	}
	root := acc
	pending := root.next
	root.next = nil
	for pending != nil {
		n := pending
		pending = n.next
		n.next = nil
		root = merge(less, root, n)
	}
	return root
}
