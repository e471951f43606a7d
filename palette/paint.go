// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// PaintMode is an interaction mode with its own paint settings.
type PaintMode int32

const (
	// NoPaint is any mode without paint settings.
	NoPaint PaintMode = iota
	TexturePaint
	Sculpt
	VertexPaint
	WeightPaint
)

// Brush is the active brush of a paint mode. Only the color is modeled
// here.
type Brush struct {

	// Name is the brush name.
	Name string

	// Color is the primary brush color.
	Color Color
}

// PaintSettings are the per-mode paint settings holding the active
// palette and brush.
type PaintSettings struct {

	// Palette is the active palette, or nil.
	Palette *Palette

	// Brush is the active brush, or nil.
	Brush *Brush
}

// Context is the paint state the convenience helpers read: the current
// mode and the settings of each paint mode.
type Context struct {

	// Mode is the current interaction mode.
	Mode PaintMode

	// Settings maps each paint mode to its settings.
	Settings map[PaintMode]*PaintSettings
}

// NewContext returns a context in the given mode with empty settings
// for every paint mode.
func NewContext(mode PaintMode) *Context {
	ctx := &Context{Mode: mode, Settings: map[PaintMode]*PaintSettings{}}
	for _, m := range []PaintMode{TexturePaint, Sculpt, VertexPaint, WeightPaint} {
		ctx.Settings[m] = &PaintSettings{}
	}
	return ctx
}

// paintSettings returns the settings for the current mode, or nil when
// the mode has none.
func (ctx *Context) paintSettings() *PaintSettings {
	if ctx == nil {
		return nil
	}
	return ctx.Settings[ctx.Mode]
}

// ActivePalette returns the active palette of the current paint mode,
// or nil when not in a paint mode or no palette is active.
func ActivePalette(ctx *Context) *Palette {
	if ps := ctx.paintSettings(); ps != nil {
		return ps.Palette
	}
	return nil
}

// BrushColor returns the color of the active brush of the current paint
// mode, and whether there is one.
func BrushColor(ctx *Context) (Color, bool) {
	ps := ctx.paintSettings()
	if ps == nil || ps.Brush == nil {
		return Color{}, false
	}
	return ps.Brush.Color, true
}

// SetBrushColor sets the color of the active brush of the current paint
// mode, clamping components. It reports whether there was a brush to
// set.
func SetBrushColor(ctx *Context, c Color) bool {
	ps := ctx.paintSettings()
	if ps == nil || ps.Brush == nil {
		return false
	}
	ps.Brush.Color = c.Clamp()
	return true
}
