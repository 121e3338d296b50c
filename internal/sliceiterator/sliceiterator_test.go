// This file is part of go-optionparser.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sliceiterator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIterator(t *testing.T) {
	data := []string{"a", "b", "c", "d"}
	i := New(data)
	if i.Index() != -1 {
		t.Errorf("wrong initial index: %d\n", i.Index())
	}
	if i.Value() != "" {
		t.Errorf("wrong value before Next: %s\n", i.Value())
	}
	got := []string{}
	for i.Next() {
		got = append(got, i.Value())
	}
	if diff := cmp.Diff(data, got); diff != "" {
		t.Errorf("iteration mismatch (-want +got):\n%s", diff)
	}
	if i.Next() != false {
		t.Errorf("wrong next return\n")
	}
	if i.Value() != "" {
		t.Errorf("wrong value: %s\n", i.Value())
	}
	if i.Index() != len(data) {
		t.Errorf("wrong final index: %d\n", i.Index())
	}
	if diff := cmp.Diff([]string{}, i.Rest()); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestIteratorRest(t *testing.T) {
	data := []string{"a", "--", "c", "d"}
	i := New(data)
	for i.Next() {
		if i.Value() == "--" {
			if diff := cmp.Diff([]string{"c", "d"}, i.Rest()); diff != "" {
				t.Errorf("rest mismatch (-want +got):\n%s", diff)
			}
		}
	}
	if i.Index() != len(data) {
		t.Errorf("wrong final index: %d\n", i.Index())
	}

	empty := New([]int{})
	if empty.Next() {
		t.Errorf("empty iterator has values")
	}
	if empty.Value() != 0 {
		t.Errorf("wrong zero value: %d", empty.Value())
	}
}
