// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"fmt"
	"slices"
	"strings"
)

// VertexGroup is a named deformation group over the control points of a
// curves object. Weights are sparse: points without an entry have no
// weight in the group.
type VertexGroup struct {

	// LockWeight protects the group's weights from editing and from
	// bulk removal of unlocked groups.
	LockWeight bool

	name string

	// weights by control point index
	weights map[int]float32
}

// Label returns the user-visible group name.
func (vg *VertexGroup) Label() string { return vg.name }

// Weight returns the weight of the given control point in this group,
// and whether the point is assigned to the group at all.
func (vg *VertexGroup) Weight(point int) (float32, bool) {
	w, ok := vg.weights[point]
	return w, ok
}

// VertexGroups is the ordered collection of vertex groups on a curves
// object, with the active group the list widget operates on.
type VertexGroups struct {

	// ActiveIndex is the index of the active group, -1 when empty.
	ActiveIndex int

	groups []*VertexGroup
}

// NewVertexGroups returns an empty collection with no active group.
func NewVertexGroups() *VertexGroups {
	return &VertexGroups{ActiveIndex: -1}
}

// Len returns the number of groups.
func (vgs *VertexGroups) Len() int { return len(vgs.groups) }

// Groups returns the groups in source order. The slice is owned by the
// collection and must not be modified.
func (vgs *VertexGroups) Groups() []*VertexGroup { return vgs.groups }

// At returns the group at the given index, or nil if out of range.
func (vgs *VertexGroups) At(i int) *VertexGroup {
	if i < 0 || i >= len(vgs.groups) {
		return nil
	}
	return vgs.groups[i]
}

// Active returns the active group, or nil if there is none.
func (vgs *VertexGroups) Active() *VertexGroup { return vgs.At(vgs.ActiveIndex) }

// Add appends a new group with the given name, which is made unique
// with a numeric suffix if needed. An empty name defaults to "Group".
// The new group becomes active.
func (vgs *VertexGroups) Add(name string) *VertexGroup {
	if name == "" {
		name = "Group"
	}
	vg := &VertexGroup{name: vgs.uniqueName(name), weights: map[int]float32{}}
	vgs.groups = append(vgs.groups, vg)
	vgs.ActiveIndex = len(vgs.groups) - 1
	return vg
}

// uniqueName returns name, or name with the first free ".001" style
// suffix when a group with that name already exists.
func (vgs *VertexGroups) uniqueName(name string) string {
	if vgs.IndexOf(name) < 0 {
		return name
	}
	base := name
	if i := strings.LastIndex(name, "."); i >= 0 && len(name)-i == 4 {
		digits := true
		for _, r := range name[i+1:] {
			if r < '0' || r > '9' {
				digits = false
				break
			}
		}
		if digits {
			base = name[:i]
		}
	}
	for n := 1; ; n++ {
		cand := fmt.Sprintf("%s.%03d", base, n)
		if vgs.IndexOf(cand) < 0 {
			return cand
		}
	}
}

// IndexOf returns the index of the group with the given name, or -1.
func (vgs *VertexGroups) IndexOf(name string) int {
	return slices.IndexFunc(vgs.groups, func(vg *VertexGroup) bool { return vg.name == name })
}

// Rename sets the name of the group at the given index, uniquifying it
// against the other groups.
func (vgs *VertexGroups) Rename(i int, name string) {
	vg := vgs.At(i)
	if vg == nil || vg.name == name || name == "" {
		return
	}
	vg.name = "" // exclude from the uniqueness check
	vg.name = vgs.uniqueName(name)
}

// Remove deletes the group at the given index. The active index is
// clamped to the remaining groups.
func (vgs *VertexGroups) Remove(i int) {
	if vgs.At(i) == nil {
		return
	}
	vgs.groups = slices.Delete(vgs.groups, i, i+1)
	vgs.clampActive()
}

// RemoveActive deletes the active group.
func (vgs *VertexGroups) RemoveActive() { vgs.Remove(vgs.ActiveIndex) }

// RemoveAll deletes every group.
func (vgs *VertexGroups) RemoveAll() {
	vgs.groups = nil
	vgs.ActiveIndex = -1
}

// RemoveAllUnlocked deletes every group whose weights are not locked.
func (vgs *VertexGroups) RemoveAllUnlocked() {
	vgs.groups = slices.DeleteFunc(vgs.groups, func(vg *VertexGroup) bool {
		return !vg.LockWeight
	})
	vgs.clampActive()
}

func (vgs *VertexGroups) clampActive() {
	if len(vgs.groups) == 0 {
		vgs.ActiveIndex = -1
	} else if vgs.ActiveIndex >= len(vgs.groups) {
		vgs.ActiveIndex = len(vgs.groups) - 1
	}
}

// MoveActive moves the active group by the given delta (-1 up, +1
// down), keeping it active. Out-of-range moves are ignored.
func (vgs *VertexGroups) MoveActive(delta int) {
	from := vgs.ActiveIndex
	to := from + delta
	if vgs.At(from) == nil || to < 0 || to >= len(vgs.groups) {
		return
	}
	vg := vgs.groups[from]
	vgs.groups = slices.Delete(vgs.groups, from, from+1)
	vgs.groups = slices.Insert(vgs.groups, to, vg)
	vgs.ActiveIndex = to
}

// SortByName stably sorts the groups by name, keeping the same group
// active.
func (vgs *VertexGroups) SortByName() {
	active := vgs.Active()
	slices.SortStableFunc(vgs.groups, func(a, b *VertexGroup) int {
		return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	})
	if active != nil {
		vgs.ActiveIndex = slices.Index(vgs.groups, active)
	}
}

// CopyActive duplicates the active group, weights included, appending
// it under a uniquified name and making the copy active. It returns the
// copy, or nil if there is no active group.
func (vgs *VertexGroups) CopyActive() *VertexGroup {
	src := vgs.Active()
	if src == nil {
		return nil
	}
	cp := &VertexGroup{
		LockWeight: src.LockWeight,
		name:       vgs.uniqueName(src.name + "_copy"),
		weights:    make(map[int]float32, len(src.weights)),
	}
	for pt, w := range src.weights {
		cp.weights[pt] = w
	}
	vgs.groups = append(vgs.groups, cp)
	vgs.ActiveIndex = len(vgs.groups) - 1
	return cp
}

// SetLockAll sets the weight lock on every group.
func (vgs *VertexGroups) SetLockAll(lock bool) {
	for _, vg := range vgs.groups {
		vg.LockWeight = lock
	}
}
