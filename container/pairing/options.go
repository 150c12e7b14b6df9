// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairing

type options[T any] struct {
	alloc    Allocator[T]
	clone    func(T) T
	stackCap int
}

// Option represents the options that can be passed to New and NewFunc.
type Option[T any] func(*options[T])

// WithAllocator sets the Allocator used to create and release the
// nodes of the heap. Clones share the allocator of the heap they
// were cloned from.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) {
		o.alloc = a
	}
}

// WithCloneFunc sets the function used by Clone to copy values. The
// default is plain assignment, which is sufficient for values that
// contain no references.
func WithCloneFunc[T any](fn func(T) T) Option[T] {
	return func(o *options[T]) {
		o.clone = fn
	}
}

// WithStackCap sets the initial capacity of the explicit stacks used
// to traverse the heap's tree. Values less than 1 are ignored.
func WithStackCap[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n > 0 {
			o.stackCap = n
		}
	}
}
