// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrRootHasSibling is reported when the root of the heap has a
	// next sibling.
	ErrRootHasSibling = errors.New("root has a sibling")
	// ErrHeapOrder is reported when a node's value is less than its
	// parent's.
	ErrHeapOrder = errors.New("heap order violated")
	// ErrSize is reported when the number of nodes in the tree differs
	// from the heap's recorded size, including when the tree contains
	// a cycle.
	ErrSize = errors.New("size mismatch")
)

// Validate checks the structural and ordering invariants of the heap
// and returns an error, which may contain multiple errors, for every
// violation found. Each error wraps one of ErrRootHasSibling,
// ErrHeapOrder or ErrSize. Validate is intended for tests and
// diagnostics, a heap manipulated only via its methods always
// validates.
func (h *Heap[T]) Validate() error {
	errs := &errors.M{}
	if h.root == nil {
		if h.size != 0 {
			errs.Append(fmt.Errorf("%w: empty tree, size %v", ErrSize, h.size))
		}
		return errs.Err()
	}
	if h.root.next != nil {
		errs.Append(fmt.Errorf("%w: root %v, sibling %v", ErrRootHasSibling, h.root.value, h.root.next.value))
	}
	// parent is the node whose child list n belongs to, siblings share
	// their parent.
	type item struct{ n, parent *Node[T] }
	stack := make([]item, 0, h.opts.stackCap)
	stack = append(stack, item{n: h.root})
	count := 0
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if count++; count > h.size {
			errs.Append(fmt.Errorf("%w: more than %v nodes reachable from the root", ErrSize, h.size))
			return errs.Err()
		}
		if p := it.parent; p != nil && h.less(it.n.value, p.value) {
			errs.Append(fmt.Errorf("%w: child %v < parent %v", ErrHeapOrder, it.n.value, p.value))
		}
		if it.n.next != nil && it.n != h.root {
			stack = append(stack, item{it.n.next, it.parent})
		}
		if it.n.child != nil {
			stack = append(stack, item{it.n.child, it.n})
		}
	}
	if count != h.size {
		errs.Append(fmt.Errorf("%w: %v nodes, size %v", ErrSize, count, h.size))
	}
	return errs.Err()
}
