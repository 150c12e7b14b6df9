// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing

import "testing"

func (h *Heap[T]) Verify(t *testing.T) {
	t.Helper()
	if err := h.Validate(); err != nil {
		t.Errorf("heap inconsistent: %v", err)
	}
}

// Depth returns the number of nodes on the longest root to leaf path.
func (h *Heap[T]) Depth() int {
	if h.root == nil {
		return 0
	}
	type item struct {
		n     *Node[T]
		depth int
	}
	deepest := 0
	stack := []item{{h.root, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > deepest {
			deepest = it.depth
		}
		if it.n.next != nil {
			stack = append(stack, item{it.n.next, it.depth})
		}
		if it.n.child != nil {
			stack = append(stack, item{it.n.child, it.depth + 1})
		}
	}
	return deepest
}

func (h *Heap[T]) SetRootSibling(v T) {
	h.root.next = &Node[T]{value: v}
}

func (h *Heap[T]) SetSize(n int) {
	h.size = n
}

func (h *Heap[T]) SwapRootAndChild() {
	h.root.value, h.root.child.value = h.root.child.value, h.root.value
}

func (h *Heap[T]) LinkLeafToRoot() {
	n := h.root
	for n.child != nil {
		n = n.child
	}
	n.child = h.root
}

func MergeList[T any](less func(a, b T) bool, values ...T) *Heap[T] {
	h := NewFunc(less)
	var head, tail *Node[T]
	for _, v := range values {
		n := &Node[T]{value: v}
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	h.root = mergeList(less, head)
	h.size = len(values)
	return h
}
