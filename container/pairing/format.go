// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing

import (
	"fmt"
	"strings"
)

// String returns a rendering of the heap's tree intended for debugging,
// with one value per line indented by one tab per level of depth. Each
// node is followed by its children and then by its next sibling. The
// format is not stable.
func (h *Heap[T]) String() string {
	if h.root == nil {
		return ""
	}
	type item struct {
		n     *Node[T]
		depth int
	}
	var out strings.Builder
	stack := make([]item, 0, h.opts.stackCap)
	stack = append(stack, item{h.root, 0})
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.WriteString(strings.Repeat("\t", it.depth))
		fmt.Fprintf(&out, "%v\n", it.n.value)
		if it.n.next != nil {
			stack = append(stack, item{it.n.next, it.depth})
		}
		if it.n.child != nil {
			stack = append(stack, item{it.n.child, it.depth + 1})
		}
	}
	return out.String()
}
