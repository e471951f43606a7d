// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panels

import (
	"strconv"

	"github.com/atelier3d/sceneui/palette"
)

// NewPalettePanel constructs the color palette panel shown in the paint
// modes: the brush color field and the palette colors in a compact
// grid. It is only available while the current paint mode has an active
// palette.
func NewPalettePanel() *Panel {
	return &Panel{
		Name:  "color_palette",
		Label: "Color Palette",
		Available: func(ctx *Context) bool {
			return palette.ActivePalette(ctx.Paint) != nil
		},
		Draw: drawPalettePanel,
	}
}

// paletteCols is the number of palette colors per grid row.
const paletteCols = 8

func drawPalettePanel(ctx *Context, p *Plan) {
	pal := palette.ActivePalette(ctx.Paint)
	if _, ok := palette.BrushColor(ctx.Paint); ok {
		row := p.AddRow()
		row.AddField(ctx.Paint, "brush_color", "Color")
	}
	grid := p.AddAt(Column, "palette_grid")
	for _, idxs := range palette.GridRows(pal, paletteCols) {
		row := grid.AddRow()
		for _, i := range idxs {
			row.AddButton("palette.color_select", "").
				SetProp("index", i).Name = "color-" + strconv.Itoa(i)
		}
	}
}
