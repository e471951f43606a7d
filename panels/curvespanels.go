// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panels

import (
	"github.com/atelier3d/sceneui/curves"
	"github.com/atelier3d/sceneui/uilist"
)

// CompatEngines are the render engines the curves data panels are
// compatible with.
var CompatEngines = []string{"render", "eevee", "workbench"}

// NewCurvesPanels constructs the curves object-data panels in their
// property-editor order. The caller owns the panels and adds them to a
// [Shell].
func NewCurvesPanels() []*Panel {
	return []*Panel{
		newContextPanel(),
		newVertexGroupsPanel(),
		newAttributesPanel(),
		newSurfacePanel(),
	}
}

// hasCurves is the shared availability predicate of the curves data
// panels.
func hasCurves(ctx *Context) bool {
	return ctx.Curves() != nil
}

// newContextPanel shows the curves data-block selector, with no
// header.
func newContextPanel() *Panel {
	return &Panel{
		Name:      "context_curves",
		Engines:   CompatEngines,
		Available: hasCurves,
		Draw: func(ctx *Context, p *Plan) {
			if ctx.Object != nil {
				p.AddField(ctx.Object, "data", "")
			} else {
				p.AddField(ctx.Pinned, "pin_id", "")
			}
		},
	}
}

// newSurfacePanel shows the surface object binding and its UV map. The
// UV map selector is disabled while no surface is set.
func newSurfacePanel() *Panel {
	return &Panel{
		Name:      "curves_surface",
		Label:     "Surface",
		Engines:   CompatEngines,
		Available: hasCurves,
		Draw: func(ctx *Context, p *Plan) {
			cv := ctx.Curves()
			p.AddField(cv, "surface", "Surface")
			uv := p.AddField(cv, "surface_uv_map", "UV Map")
			uv.Disabled = cv.Surface == nil
		},
	}
}

// newVertexGroupsPanel shows the vertex group list with its side
// buttons, and the weight controls in weight-paint mode.
func newVertexGroupsPanel() *Panel {
	return &Panel{
		Name:    "curves_vertex_groups",
		Label:   "Vertex Groups",
		Engines: CompatEngines,
		Available: func(ctx *Context) bool {
			return ctx.Object != nil && ctx.Object.Data != nil
		},
		Draw: func(ctx *Context, p *Plan) {
			ob := ctx.Object
			vgs := ob.Data.VertexGroups
			group := vgs.Active()

			row := p.AddRow()
			makeVertexGroupList(row, vgs, ctx.ListFilter("vertex_groups"))

			col := row.AddColumn()
			// weight-paint mode uses the curves operator so new groups
			// get initialized weights
			if ob.Mode == curves.WeightCurves {
				col.AddButton("curves.vertex_group_add", "")
			} else {
				col.AddButton("object.vertex_group_add", "")
			}
			col.AddButton("object.vertex_group_remove", "").
				SetProp("all", false).SetProp("all_unlocked", false)
			col.AddSeparator()
			col.AddMenu("CURVES_MT_vertex_group_context_menu")
			if group != nil {
				col.AddSeparator()
				col.AddButton("object.vertex_group_move", "").SetProp("direction", "UP").Name = "vertex_group_move_up"
				col.AddButton("object.vertex_group_move", "").SetProp("direction", "DOWN").Name = "vertex_group_move_down"
			}

			if vgs.Len() > 0 && ob.Mode == curves.WeightCurves {
				sub := p.AddRow()
				sub.AddButton("curves.vertex_group_assign", "Assign")
				sub.AddButton("curves.vertex_group_remove_from", "Remove")

				wcol := p.AddColumn()
				wcol.AddField(ctx.ToolSettings, "vertex_group_weight", "Weight")
				wcol.AddField(ctx.ToolSettings, "use_auto_normalize", "Auto Normalize")
			}
		},
	}
}

// makeVertexGroupList builds the vertex group list node: visible rows
// in display order, each with a name editor and a lock toggle.
func makeVertexGroupList(p *Plan, vgs *curves.VertexGroups, f *uilist.Filter) {
	list := p.AddAt(List, "vertex_groups")
	groups := vgs.Groups()
	flags, indices := uilist.Compute(groups, *f)
	for _, i := range indices {
		if !flags[i] {
			continue
		}
		vg := groups[i]
		lr := list.AddAt(ListRow, vg.Label())
		lr.Emphasized = i == vgs.ActiveIndex
		lr.AddField(vg, "name", "")
		lr.AddField(vg, "lock_weight", "")
	}
}

// newAttributesPanel shows the attribute list with the add-attribute
// menu and the attribute context menu.
func newAttributesPanel() *Panel {
	return &Panel{
		Name:      "curves_attributes",
		Label:     "Attributes",
		Engines:   CompatEngines,
		Available: hasCurves,
		Draw: func(ctx *Context, p *Plan) {
			cv := ctx.Curves()
			row := p.AddRow()
			makeAttributeList(row, cv.Attributes, ctx.ListFilter("attributes"))

			col := row.AddColumn()
			col.AddMenu("CURVES_MT_add_attribute")
			col.AddButton("geometry.attribute_remove", "")
			col.AddSeparator()
			col.AddMenu("CURVES_MT_attribute_context_menu")
		},
	}
}

// makeAttributeList builds the attribute list node: visible rows in
// display order, each with a name editor and domain and type labels.
func makeAttributeList(p *Plan, ats *curves.Attributes, f *uilist.Filter) {
	list := p.AddAt(List, "attributes")
	attrs := ats.All()
	flags, indices := uilist.Compute(attrs, *f)
	for _, i := range indices {
		if !flags[i] {
			continue
		}
		at := attrs[i]
		lr := list.AddAt(ListRow, at.Label())
		lr.Emphasized = i == ats.ActiveIndex
		lr.AddField(at, "name", "")
		lr.AddLabel(at.Domain.String())
		lr.AddLabel(at.DataType.String())
	}
}

// VertexGroupContextMenu builds the vertex group specials menu.
func VertexGroupContextMenu() *Plan {
	m := &Plan{Name: "CURVES_MT_vertex_group_context_menu", Kind: Menu, Text: "Vertex Group Specials"}
	m.AddButton("object.vertex_group_sort", "Sort by Name").SetProp("sort_type", "NAME")
	m.AddSeparator()
	m.AddButton("object.vertex_group_copy", "Duplicate Vertex Group")
	m.AddSeparator()
	m.AddButton("object.vertex_group_remove", "Remove All").
		SetProp("all", true).SetProp("all_unlocked", false).Name = "vertex_group_remove_all"
	m.AddButton("object.vertex_group_remove", "Remove All Unlocked").
		SetProp("all", false).SetProp("all_unlocked", true).Name = "vertex_group_remove_unlocked"
	m.AddSeparator()
	m.AddButton("object.vertex_group_lock_all", "Lock All").
		SetProp("action", "LOCK").Name = "vertex_group_lock_all"
	m.AddButton("object.vertex_group_lock_all", "Unlock All").
		SetProp("action", "UNLOCK").Name = "vertex_group_unlock_all"
	return m
}

// AddAttributeMenu builds the add-attribute menu for the given curves
// data: the standard attributes, each disabled once present, and the
// custom attribute entry.
func AddAttributeMenu(cv *curves.Curves) *Plan {
	m := &Plan{Name: "CURVES_MT_add_attribute", Kind: Menu, Text: "Add Attribute"}
	for _, sa := range curves.StandardAttributes {
		b := m.AddButton("geometry.attribute_add", sa.Name).
			SetProp("name", sa.Name).
			SetProp("data_type", sa.DataType).
			SetProp("domain", sa.Domain)
		b.Name = "attribute_add_" + sa.Name
		b.Disabled = cv.Attributes.Get(sa.Name) != nil
	}
	m.AddSeparator()
	m.AddButton("geometry.attribute_add", "Custom...").Name = "attribute_add_custom"
	return m
}

// AttributeContextMenu builds the attribute specials menu.
func AttributeContextMenu() *Plan {
	m := &Plan{Name: "CURVES_MT_attribute_context_menu", Kind: Menu, Text: "Attribute Specials"}
	m.AddButton("geometry.attribute_convert", "Convert Attribute")
	return m
}
