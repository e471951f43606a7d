// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette implements the color palette convenience layer used
// by the paint modes: a library of named palettes, per-mode paint
// settings with an active palette and brush, and helpers for reading
// and writing palette and brush colors without panicking on missing or
// out-of-range input.
package palette

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"

	"github.com/atelier3d/sceneui/base/errors"
)

// Color is an RGB color with float32 components nominally in 0..1.
type Color struct {
	R float32 `toml:"r" yaml:"r"`
	G float32 `toml:"g" yaml:"g"`
	B float32 `toml:"b" yaml:"b"`
}

// Clamp returns the color with each component clamped to 0..1.
func (c Color) Clamp() Color {
	return Color{
		R: math32.Max(0, math32.Min(1, c.R)),
		G: math32.Max(0, math32.Min(1, c.G)),
		B: math32.Max(0, math32.Min(1, c.B)),
	}
}

// Lerp returns the linear interpolation between c and o at t,
// with t clamped to 0..1.
func (c Color) Lerp(o Color, t float32) Color {
	t = math32.Max(0, math32.Min(1, t))
	return Color{
		R: c.R + t*(o.R-c.R),
		G: c.G + t*(o.G-c.G),
		B: c.B + t*(o.B-c.B),
	}
}

// RGBA returns the color as a standard 8-bit [color.RGBA],
// clamping components first.
func (c Color) RGBA() color.RGBA {
	cl := c.Clamp()
	return color.RGBA{
		R: uint8(cl.R*255 + 0.5),
		G: uint8(cl.G*255 + 0.5),
		B: uint8(cl.B*255 + 0.5),
		A: 255,
	}
}

// distance is the squared RGB distance between two colors.
func (c Color) distance(o Color) float32 {
	dr, dg, db := c.R-o.R, c.G-o.G, c.B-o.B
	return dr*dr + dg*dg + db*db
}

// Palette is a named ordered collection of colors.
type Palette struct {

	// Name is the palette name, unique within a [Library].
	Name string `toml:"name" yaml:"name"`

	// Colors are the palette entries in display order.
	Colors []Color `toml:"colors" yaml:"colors"`
}

// NewPalette returns an empty palette with the given name.
func NewPalette(name string) *Palette {
	return &Palette{Name: name}
}

// Color returns the color at the given index and whether the index was
// in range.
func (pl *Palette) Color(i int) (Color, bool) {
	if pl == nil || i < 0 || i >= len(pl.Colors) {
		return Color{}, false
	}
	return pl.Colors[i], true
}

// SetColor sets the color at the given index, clamped to valid
// component range. It reports whether the index was in range.
func (pl *Palette) SetColor(i int, c Color) bool {
	if pl == nil || i < 0 || i >= len(pl.Colors) {
		return false
	}
	pl.Colors[i] = c.Clamp()
	return true
}

// AddColor appends the given color and returns its index,
// or -1 for a nil palette.
func (pl *Palette) AddColor(c Color) int {
	if pl == nil {
		return -1
	}
	pl.Colors = append(pl.Colors, c.Clamp())
	return len(pl.Colors) - 1
}

// Nearest returns the index of the palette color closest to the given
// color in RGB distance, or -1 for an empty palette.
func (pl *Palette) Nearest(c Color) int {
	if pl == nil || len(pl.Colors) == 0 {
		return -1
	}
	best := 0
	bd := c.distance(pl.Colors[0])
	for i, pc := range pl.Colors[1:] {
		if d := c.distance(pc); d < bd {
			best = i + 1
			bd = d
		}
	}
	return best
}

// Clone returns a deep copy of the palette under the given name.
func (pl *Palette) Clone(name string) *Palette {
	cp := &Palette{}
	if err := copier.CopyWithOption(cp, pl, copier.Option{DeepCopy: true}); err != nil {
		errors.Log(err)
	}
	cp.Name = name
	return cp
}

// Label returns the palette name, so palettes can be browsed with the
// standard list filtering.
func (pl *Palette) Label() string { return pl.Name }
