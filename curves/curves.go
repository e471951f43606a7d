// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curves implements the object data browsed and edited by the
// curves property-editor panels: vertex groups and geometry attributes,
// plus the surface binding and the weight-paint tool settings that the
// panels expose.
package curves

import (
	"github.com/chewxy/math32"
)

// Mode is the interaction mode of an object.
type Mode int32

const (
	ObjectMode Mode = iota

	// WeightCurves is the weight-paint mode for curves objects, in
	// which the vertex groups panel shows assign and weight controls.
	WeightCurves
)

// SurfaceObject is the mesh object a curves object can be attached to.
// Only the pieces the surface panel needs are modeled here.
type SurfaceObject struct {

	// Name is the object name.
	Name string

	// UVLayers are the names of the UV layers of the surface mesh,
	// searched by the surface panel's UV map selector.
	UVLayers []string
}

// ToolSettings are the weight-paint tool settings shown below the
// vertex groups list in weight mode.
type ToolSettings struct {

	// VertexGroupWeight is the weight applied by assign operations.
	VertexGroupWeight float32

	// AutoNormalize keeps the unlocked group weights of each point
	// summing to one after every assign.
	AutoNormalize bool
}

// Curves is the object data for a hair/curves object.
type Curves struct {

	// Name is the data-block name.
	Name string

	// Surface is the mesh object the curves are attached to, or nil.
	Surface *SurfaceObject

	// SurfaceUVMap is the name of the UV layer used for attachment.
	SurfaceUVMap string

	// VertexGroups are the deformation groups of the object.
	VertexGroups *VertexGroups

	// Attributes are the geometry attribute layers of the object.
	Attributes *Attributes
}

// NewCurves returns curves data with empty collections and the standard
// internal selection attribute present.
func NewCurves(name string) *Curves {
	cv := &Curves{
		Name:         name,
		VertexGroups: NewVertexGroups(),
		Attributes:   NewAttributes(),
	}
	cv.Attributes.addInternal(".selection", Bool, Point)
	return cv
}

// Object is a scene object holding curves data. It is the minimal
// stand-in for the host object the panels poll against.
type Object struct {

	// Name is the object name.
	Name string

	// Data is the curves data-block.
	Data *Curves

	// Mode is the current interaction mode.
	Mode Mode
}

// AssignWeight assigns the given weight to the selected control points
// in the active vertex group, skipping locked groups. Nil tool settings
// are a no-op. When ts.AutoNormalize is set, the weights of each
// touched point are normalized across the unlocked groups afterwards.
func (cv *Curves) AssignWeight(selection []int, ts *ToolSettings) {
	vg := cv.VertexGroups.Active()
	if ts == nil || vg == nil || vg.LockWeight {
		return
	}
	w := math32.Max(0, math32.Min(1, ts.VertexGroupWeight))
	for _, pt := range selection {
		vg.weights[pt] = w
	}
	if ts.AutoNormalize {
		cv.normalizeWeights(selection)
	}
}

// RemoveFromGroup removes the selected control points from the active
// vertex group, skipping locked groups.
func (cv *Curves) RemoveFromGroup(selection []int) {
	vg := cv.VertexGroups.Active()
	if vg == nil || vg.LockWeight {
		return
	}
	for _, pt := range selection {
		delete(vg.weights, pt)
	}
}

// normalizeWeights scales the weights of each given point so that the
// unlocked groups sum to one, leaving locked groups untouched.
func (cv *Curves) normalizeWeights(points []int) {
	for _, pt := range points {
		var sum float32
		for _, vg := range cv.VertexGroups.Groups() {
			if vg.LockWeight {
				continue
			}
			if w, ok := vg.weights[pt]; ok {
				sum += w
			}
		}
		if sum <= 0 {
			continue
		}
		for _, vg := range cv.VertexGroups.Groups() {
			if vg.LockWeight {
				continue
			}
			if w, ok := vg.weights[pt]; ok {
				vg.weights[pt] = w / sum
			}
		}
	}
}
