// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing

// Clone returns a deep copy of h with the same tree shape and values,
// sharing no nodes with h. The copy uses the same ordering, options and
// allocator as h. Values are copied using the function supplied via
// WithCloneFunc, or by assignment if none was supplied.
//
// The tree is copied iteratively since its depth may approach the
// number of values it contains.
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{
		size: h.size,
		less: h.less,
		opts: h.opts,
	}
	if h.root == nil {
		return c
	}
	type pair struct{ src, dst *Node[T] }
	stack := make([]pair, 0, h.opts.stackCap)
	c.root = h.copyNode(h.root)
	stack = append(stack, pair{h.root, c.root})
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		src, dst := p.src, p.dst
		for {
			if src.next != nil {
				dst.next = h.copyNode(src.next)
				stack = append(stack, pair{src.next, dst.next})
			}
			if src.child == nil {
				break
			}
			dst.child = h.copyNode(src.child)
			src, dst = src.child, dst.child
		}
	}
	return c
}

func (h *Heap[T]) copyNode(src *Node[T]) *Node[T] {
	n := h.allocator().New()
	if h.opts.clone != nil {
		n.value = h.opts.clone(src.value)
	} else {
		n.value = src.value
	}
	return n
}

// Release returns every node in the heap to its Allocator, exactly once,
// and leaves the heap empty and ready for reuse. Calling Release is only
// required when using an Allocator that needs to observe every node's
// release, such as a Pool; otherwise the garbage collector will reclaim
// an unreachable heap. The tree is traversed iteratively.
func (h *Heap[T]) Release() {
	root := h.root
	h.root, h.size = nil, 0
	if root == nil {
		return
	}
	stack := append(h.stack(), root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for n != nil {
			if n.next != nil {
				stack = append(stack, n.next)
			}
			child := n.child
			h.free(n)
			n = child
		}
	}
}
