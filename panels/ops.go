// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panels

import (
	"fmt"

	"github.com/atelier3d/sceneui/curves"
	"github.com/atelier3d/sceneui/palette"
)

// Execute runs the operator identified by the given button node
// against the context's curves data. It implements the operators the
// curves panels and menus declare; unknown operators are an error.
func Execute(ctx *Context, b *Plan) error {
	if b == nil || b.Kind != Button {
		return fmt.Errorf("panels.Execute: not an operator button")
	}
	if b.Op == "palette.color_select" {
		return selectPaletteColor(ctx, b)
	}
	cv := ctx.Curves()
	if cv == nil {
		return fmt.Errorf("panels.Execute: no curves data in context")
	}
	vgs := cv.VertexGroups

	switch b.Op {
	case "object.vertex_group_add", "curves.vertex_group_add":
		vgs.Add("")
	case "object.vertex_group_remove":
		switch {
		case boolProp(b, "all"):
			vgs.RemoveAll()
		case boolProp(b, "all_unlocked"):
			vgs.RemoveAllUnlocked()
		default:
			vgs.RemoveActive()
		}
	case "object.vertex_group_move":
		switch stringProp(b, "direction") {
		case "UP":
			vgs.MoveActive(-1)
		case "DOWN":
			vgs.MoveActive(1)
		default:
			return fmt.Errorf("vertex_group_move: bad direction %v", b.Props["direction"])
		}
	case "object.vertex_group_sort":
		vgs.SortByName()
	case "object.vertex_group_copy":
		if vgs.CopyActive() == nil {
			return fmt.Errorf("vertex_group_copy: no active group")
		}
	case "object.vertex_group_lock_all":
		switch stringProp(b, "action") {
		case "LOCK":
			vgs.SetLockAll(true)
		case "UNLOCK":
			vgs.SetLockAll(false)
		default:
			return fmt.Errorf("vertex_group_lock_all: bad action %v", b.Props["action"])
		}
	case "curves.vertex_group_assign":
		cv.AssignWeight(intsProp(b, "points"), ctx.ToolSettings)
	case "curves.vertex_group_remove_from":
		cv.RemoveFromGroup(intsProp(b, "points"))
	case "geometry.attribute_add":
		name := stringProp(b, "name")
		dt, _ := b.Props["data_type"].(curves.DataType)
		dom, _ := b.Props["domain"].(curves.Domain)
		if _, err := cv.Attributes.Add(name, dt, dom); err != nil {
			return err
		}
	case "geometry.attribute_remove":
		return cv.Attributes.RemoveActive()
	case "geometry.attribute_convert":
		dt, _ := b.Props["data_type"].(curves.DataType)
		dom, _ := b.Props["domain"].(curves.Domain)
		return cv.Attributes.Convert(cv.Attributes.ActiveIndex, dt, dom)
	default:
		return fmt.Errorf("panels.Execute: unknown operator %q", b.Op)
	}
	return nil
}

// selectPaletteColor sets the brush color of the current paint mode to
// the palette color the button identifies.
func selectPaletteColor(ctx *Context, b *Plan) error {
	pal := palette.ActivePalette(ctx.Paint)
	c, ok := pal.Color(intProp(b, "index"))
	if !ok {
		return fmt.Errorf("palette.color_select: bad index %v", b.Props["index"])
	}
	if !palette.SetBrushColor(ctx.Paint, c) {
		return fmt.Errorf("palette.color_select: no active brush")
	}
	return nil
}

func boolProp(b *Plan, name string) bool {
	v, _ := b.Props[name].(bool)
	return v
}

func stringProp(b *Plan, name string) string {
	v, _ := b.Props[name].(string)
	return v
}

func intProp(b *Plan, name string) int {
	v, _ := b.Props[name].(int)
	return v
}

func intsProp(b *Plan, name string) []int {
	v, _ := b.Props[name].([]int)
	return v
}
