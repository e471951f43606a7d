// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uilist implements the filtering and sorting model behind the
// browsable record lists in the property editor (geometry attributes,
// vertex groups, asset grids). The host list widget owns the records and
// the persisted filter state; this package only decides which records are
// visible and in what order they are drawn.
package uilist

import (
	"slices"
	"strings"
)

// Named is the capability interface for records that can appear in a
// list: they expose a user-visible name. Concrete record types satisfy
// it directly; no runtime attribute probing is involved.
type Named interface {

	// Label returns the user-visible name of the record.
	Label() string
}

// Internal is an optional capability for records that may be
// system-managed. Records reporting true are never shown,
// regardless of the filter state.
type Internal interface {

	// IsInternal reports whether the record is a system-managed
	// entry hidden from the user.
	IsInternal() bool
}

// Filter is the host widget's persisted filter state, passed in on each
// invocation and treated as read-only. The zero value means no name
// filtering, normal polarity, and source ordering.
type Filter struct {

	// Text is the name filter. Records whose name does not contain it
	// (case-insensitive) are excluded. Empty means no name filtering.
	Text string

	// Invert reverses the name-match polarity: records matching Text
	// are excluded instead of included.
	Invert bool

	// SortAlpha orders the display by name instead of source order.
	SortAlpha bool
}

// Compute returns the visibility flags and display ordering for the
// given records under the given filter state. flags is aligned by
// position with items; indices is a permutation of the item positions
// defining draw order. The two are independent views over the same
// collection: flags must be read at original positions, and indices
// used only for draw order.
//
// Records satisfying [Internal] and reporting true always have their
// flag cleared, even when no name filter is set. Sorting is stable:
// records with equal names keep their source order. Compute retains no
// state between calls.
func Compute[T Named](items []T, f Filter) (flags []bool, indices []int) {
	n := len(items)
	flags = make([]bool, n)
	indices = make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	text := strings.ToLower(f.Text)
	for i, it := range items {
		match := true
		if text != "" {
			match = strings.Contains(strings.ToLower(it.Label()), text)
			if f.Invert {
				match = !match
			}
		}
		flags[i] = match
	}

	// internal records are hidden unconditionally
	for i, it := range items {
		if in, ok := any(it).(Internal); ok && in.IsInternal() {
			flags[i] = false
		}
	}

	if f.SortAlpha {
		slices.SortStableFunc(indices, func(a, b int) int {
			return strings.Compare(strings.ToLower(items[a].Label()), strings.ToLower(items[b].Label()))
		})
	}
	return flags, indices
}

// Visible returns the positions of the visible records in display
// order, zipping the two results of [Compute] the way the host widget
// does when rendering rows.
func Visible[T Named](items []T, f Filter) []int {
	flags, indices := Compute(items, f)
	vis := make([]int, 0, len(indices))
	for _, i := range indices {
		if flags[i] {
			vis = append(vis, i)
		}
	}
	return vis
}
