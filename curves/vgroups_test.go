// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier3d/sceneui/uilist"
)

func groupNames(vgs *VertexGroups) []string {
	names := make([]string, 0, vgs.Len())
	for _, vg := range vgs.Groups() {
		names = append(names, vg.Label())
	}
	return names
}

func TestVertexGroupsAdd(t *testing.T) {
	vgs := NewVertexGroups()
	assert.Equal(t, -1, vgs.ActiveIndex)
	assert.Nil(t, vgs.Active())

	vgs.Add("")
	vgs.Add("")
	vgs.Add("Arm")
	vgs.Add("Arm")
	assert.Equal(t, []string{"Group", "Group.001", "Arm", "Arm.001"}, groupNames(vgs))
	assert.Equal(t, 3, vgs.ActiveIndex)

	// suffixed names collapse to the same base
	vgs.Add("Arm.001")
	assert.Equal(t, "Arm.002", vgs.Active().Label())
}

func TestVertexGroupsRename(t *testing.T) {
	vgs := NewVertexGroups()
	vgs.Add("Arm")
	vgs.Add("Leg")
	vgs.Rename(1, "Arm")
	assert.Equal(t, []string{"Arm", "Arm.001"}, groupNames(vgs))

	// renaming to the current name is a no-op
	vgs.Rename(0, "Arm")
	assert.Equal(t, "Arm", vgs.At(0).Label())
}

func TestVertexGroupsRemove(t *testing.T) {
	vgs := NewVertexGroups()
	vgs.Add("a")
	vgs.Add("b")
	vgs.Add("c")
	vgs.ActiveIndex = 2

	vgs.RemoveActive()
	assert.Equal(t, []string{"a", "b"}, groupNames(vgs))
	assert.Equal(t, 1, vgs.ActiveIndex)

	vgs.At(0).LockWeight = true
	vgs.RemoveAllUnlocked()
	assert.Equal(t, []string{"a"}, groupNames(vgs))

	vgs.RemoveAll()
	assert.Equal(t, 0, vgs.Len())
	assert.Equal(t, -1, vgs.ActiveIndex)
}

func TestVertexGroupsMove(t *testing.T) {
	vgs := NewVertexGroups()
	vgs.Add("a")
	vgs.Add("b")
	vgs.Add("c")
	vgs.ActiveIndex = 1

	vgs.MoveActive(-1)
	assert.Equal(t, []string{"b", "a", "c"}, groupNames(vgs))
	assert.Equal(t, 0, vgs.ActiveIndex)

	// moving past the ends is ignored
	vgs.MoveActive(-1)
	assert.Equal(t, 0, vgs.ActiveIndex)

	vgs.MoveActive(1)
	vgs.MoveActive(1)
	assert.Equal(t, []string{"a", "c", "b"}, groupNames(vgs))
	assert.Equal(t, 2, vgs.ActiveIndex)
}

func TestVertexGroupsSortByName(t *testing.T) {
	vgs := NewVertexGroups()
	vgs.Add("leg")
	vgs.Add("Arm")
	vgs.Add("head")
	vgs.ActiveIndex = 0

	vgs.SortByName()
	assert.Equal(t, []string{"Arm", "head", "leg"}, groupNames(vgs))
	assert.Equal(t, "leg", vgs.Active().Label())
}

func TestVertexGroupsCopyActive(t *testing.T) {
	vgs := NewVertexGroups()
	assert.Nil(t, vgs.CopyActive())

	vg := vgs.Add("Arm")
	vg.LockWeight = true
	vg.weights[3] = 0.5

	cp := vgs.CopyActive()
	assert.Equal(t, "Arm_copy", cp.Label())
	assert.True(t, cp.LockWeight)
	w, ok := cp.Weight(3)
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), w)

	// the copy's weights are independent
	cp.weights[3] = 1
	w, _ = vg.Weight(3)
	assert.Equal(t, float32(0.5), w)
}

func TestVertexGroupsLockAll(t *testing.T) {
	vgs := NewVertexGroups()
	vgs.Add("a")
	vgs.Add("b")
	vgs.SetLockAll(true)
	for _, vg := range vgs.Groups() {
		assert.True(t, vg.LockWeight)
	}
	vgs.SetLockAll(false)
	for _, vg := range vgs.Groups() {
		assert.False(t, vg.LockWeight)
	}
}

func TestVertexGroupsListFiltering(t *testing.T) {
	vgs := NewVertexGroups()
	vgs.Add("Arm.L")
	vgs.Add("Arm.R")
	vgs.Add("Leg.L")

	flags, indices := uilist.Compute(vgs.Groups(), uilist.Filter{Text: "arm"})
	assert.Equal(t, []bool{true, true, false}, flags)
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestAssignWeight(t *testing.T) {
	cv := NewCurves("Fur")
	ts := &ToolSettings{VertexGroupWeight: 2} // clamped to 1

	// no active group: no-op
	cv.AssignWeight([]int{0}, ts)

	// nil tool settings: no-op
	cv.VertexGroups.Add("tmp")
	cv.AssignWeight([]int{0}, nil)
	_, ok := cv.VertexGroups.Active().Weight(0)
	assert.False(t, ok)
	cv.VertexGroups.RemoveActive()

	cv.VertexGroups.Add("a")
	cv.AssignWeight([]int{0, 1}, ts)
	w, ok := cv.VertexGroups.Active().Weight(0)
	assert.True(t, ok)
	assert.Equal(t, float32(1), w)

	cv.RemoveFromGroup([]int{0})
	_, ok = cv.VertexGroups.Active().Weight(0)
	assert.False(t, ok)

	// locked groups are not editable
	cv.VertexGroups.Active().LockWeight = true
	cv.RemoveFromGroup([]int{1})
	_, ok = cv.VertexGroups.Active().Weight(1)
	assert.True(t, ok)
}

func TestAssignWeightAutoNormalize(t *testing.T) {
	cv := NewCurves("Fur")
	a := cv.VertexGroups.Add("a")
	a.weights[0] = 1
	cv.VertexGroups.Add("b")

	ts := &ToolSettings{VertexGroupWeight: 1, AutoNormalize: true}
	cv.AssignWeight([]int{0}, ts)

	wa, _ := a.Weight(0)
	wb, _ := cv.VertexGroups.At(1).Weight(0)
	assert.InDelta(t, 0.5, wa, 1e-6)
	assert.InDelta(t, 0.5, wb, 1e-6)
}
