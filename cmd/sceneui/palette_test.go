// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier3d/sceneui/palette"
)

func TestExt(t *testing.T) {
	assert.Equal(t, "toml", ext("palettes.TOML"))
	assert.Equal(t, "yml", ext("a/b.c/palettes.yml"))
	assert.Equal(t, "", ext("noext"))
}

func TestPaletteConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "palettes.toml")
	lb := &palette.Library{}
	pl := palette.NewPalette("Skin")
	pl.AddColor(palette.Color{R: 1})
	require.NoError(t, lb.Add(pl))
	require.NoError(t, lb.SaveTOML(in))

	out := filepath.Join(dir, "palettes.yaml")
	rootCmd.SetArgs([]string{"palette", "convert", in, out})
	require.NoError(t, rootCmd.Execute())

	got, err := readLibrary(out)
	require.NoError(t, err)
	require.NotNil(t, got.Get("Skin"))
	assert.Equal(t, pl.Colors, got.Get("Skin").Colors)

	rootCmd.SetArgs([]string{"palette", "convert", in, filepath.Join(dir, "palettes.json")})
	assert.Error(t, rootCmd.Execute())
}
