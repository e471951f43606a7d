// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uilist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testItem struct {
	name     string
	internal bool
}

func (ti *testItem) Label() string { return ti.name }

func (ti *testItem) IsInternal() bool { return ti.internal }

// plainItem has a name but no internal capability.
type plainItem string

func (pi plainItem) Label() string { return string(pi) }

func items(names ...string) []*testItem {
	its := make([]*testItem, len(names))
	for i, nm := range names {
		its[i] = &testItem{name: nm, internal: strings.HasPrefix(nm, ".")}
	}
	return its
}

func TestComputeEmpty(t *testing.T) {
	flags, indices := Compute([]*testItem{}, Filter{})
	assert.Empty(t, flags)
	assert.Empty(t, indices)

	flags, indices = Compute([]*testItem{}, Filter{Text: "abc", Invert: true, SortAlpha: true})
	assert.Empty(t, flags)
	assert.Empty(t, indices)
}

func TestComputeNoFilter(t *testing.T) {
	its := items("radius", "color", ".selection")
	flags, indices := Compute(its, Filter{})
	assert.Equal(t, []bool{true, true, false}, flags)
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestComputeNameFilter(t *testing.T) {
	its := items("abcdef", "xyz")
	flags, _ := Compute(its, Filter{Text: "abc"})
	assert.Equal(t, []bool{true, false}, flags)

	// case-insensitive substring containment
	flags, _ = Compute(items("Radius", "COLOR"), Filter{Text: "rad"})
	assert.Equal(t, []bool{true, false}, flags)
	flags, _ = Compute(items("Radius", "COLOR"), Filter{Text: "OLO"})
	assert.Equal(t, []bool{false, true}, flags)
}

func TestComputeInvert(t *testing.T) {
	its := items("abcdef", "xyz", ".internal")
	normal, _ := Compute(its, Filter{Text: "abc"})
	inverted, _ := Compute(its, Filter{Text: "abc", Invert: true})
	// polarity reversed for non-internal records, internal stays hidden
	assert.Equal(t, []bool{true, false, false}, normal)
	assert.Equal(t, []bool{false, true, false}, inverted)
}

func TestComputeNoMatches(t *testing.T) {
	its := items("radius", "color", ".selection")
	flags, indices := Compute(its, Filter{Text: "nothing-matches-this"})
	assert.Equal(t, []bool{false, false, false}, flags)
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestComputeInternalAlwaysHidden(t *testing.T) {
	its := items(".selection", ".sculpt_mask")
	for _, f := range []Filter{
		{},
		{Text: "sel"},
		{Text: "sel", Invert: true},
		{Text: ""},
		{SortAlpha: true},
	} {
		flags, _ := Compute(its, f)
		assert.Equal(t, []bool{false, false}, flags, "filter %+v", f)
	}
}

func TestComputeNoInternalCapability(t *testing.T) {
	// records without the Internal capability are never force-hidden
	its := []plainItem{".hidden-looking", "normal"}
	flags, _ := Compute(its, Filter{})
	assert.Equal(t, []bool{true, true}, flags)
}

func TestComputeSortAlpha(t *testing.T) {
	its := items("b", "a", "c")
	flags, indices := Compute(its, Filter{SortAlpha: true})
	assert.Equal(t, []int{1, 0, 2}, indices)
	// flags stay aligned with the source positions
	assert.Equal(t, []bool{true, true, true}, flags)

	_, indices = Compute(its, Filter{})
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestComputeSortCaseAndStability(t *testing.T) {
	its := items("Banana", "apple", "banana", "Apple")
	_, indices := Compute(its, Filter{SortAlpha: true})
	// lowercase comparison, ties keep source order
	assert.Equal(t, []int{1, 3, 0, 2}, indices)
}

func TestComputeInvariants(t *testing.T) {
	sets := [][]*testItem{
		nil,
		items("a"),
		items("b", "a", ".x", "c", "a"),
		items(".a", ".b"),
	}
	filters := []Filter{
		{},
		{Text: "a"},
		{Text: "a", Invert: true},
		{SortAlpha: true},
		{Text: "A", SortAlpha: true, Invert: true},
	}
	for _, its := range sets {
		for _, f := range filters {
			flags, indices := Compute(its, f)
			assert.Equal(t, len(its), len(flags))
			assert.Equal(t, len(its), len(indices))
			seen := make(map[int]bool)
			for _, i := range indices {
				assert.GreaterOrEqual(t, i, 0)
				assert.Less(t, i, len(its))
				assert.False(t, seen[i], "index %d repeated", i)
				seen[i] = true
			}
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	its := items("b", "a", ".x", "c")
	f := Filter{Text: "a", Invert: true, SortAlpha: true}
	flags1, indices1 := Compute(its, f)
	flags2, indices2 := Compute(its, f)
	assert.Equal(t, flags1, flags2)
	assert.Equal(t, indices1, indices2)
}

func TestVisible(t *testing.T) {
	its := items("b", "a", ".x", "c")
	assert.Equal(t, []int{0, 1, 3}, Visible(its, Filter{}))
	assert.Equal(t, []int{1, 0, 3}, Visible(its, Filter{SortAlpha: true}))
	assert.Equal(t, []int{1}, Visible(its, Filter{Text: "a"}))
	assert.Equal(t, []int{}, Visible(its, Filter{Text: "zzz"}))
}
