// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - forward iterator over a slice that can hand back the unread tail.
package sliceiterator

// Iterator - iterator data
type Iterator[T any] struct {
	data []T
	idx  int
}

// New - builds an Iterator. The slice is not copied.
func New[T any](s []T) *Iterator[T] {
	return &Iterator[T]{data: s, idx: -1}
}

// Index - return current index.
func (a *Iterator[T]) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (a *Iterator[T]) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or the zero value once the data is exhausted.
func (a *Iterator[T]) Value() T {
	var zero T
	if a.idx < 0 || a.idx >= len(a.data) {
		return zero
	}
	return a.data[a.idx]
}

// Rest - returns the values after the current index and moves the iterator to the end.
func (a *Iterator[T]) Rest() []T {
	if a.idx+1 >= len(a.data) {
		a.idx = len(a.data)
		return []T{}
	}
	rest := a.data[a.idx+1:]
	a.idx = len(a.data)
	return rest
}
