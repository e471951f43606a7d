// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Library is the set of palettes of a project file.
type Library struct {

	// Palettes are the palettes in creation order.
	Palettes []*Palette `toml:"palettes" yaml:"palettes"`
}

// Get returns the palette with the given name, or nil.
func (lb *Library) Get(name string) *Palette {
	i := slices.IndexFunc(lb.Palettes, func(pl *Palette) bool { return pl.Name == name })
	if i < 0 {
		return nil
	}
	return lb.Palettes[i]
}

// Add adds the given palette to the library. It returns an error if a
// palette with the same name already exists.
func (lb *Library) Add(pl *Palette) error {
	if lb.Get(pl.Name) != nil {
		return fmt.Errorf("palette %q already exists", pl.Name)
	}
	lb.Palettes = append(lb.Palettes, pl)
	return nil
}

// Remove removes the palette with the given name,
// reporting whether it was present.
func (lb *Library) Remove(name string) bool {
	n := len(lb.Palettes)
	lb.Palettes = slices.DeleteFunc(lb.Palettes, func(pl *Palette) bool { return pl.Name == name })
	return len(lb.Palettes) != n
}

// Duplicate clones the named palette under a new name and adds the
// clone to the library.
func (lb *Library) Duplicate(name, newName string) (*Palette, error) {
	src := lb.Get(name)
	if src == nil {
		return nil, fmt.Errorf("palette %q not found", name)
	}
	cp := src.Clone(newName)
	if err := lb.Add(cp); err != nil {
		return nil, err
	}
	return cp, nil
}

// SaveTOML writes the library in the TOML settings format.
func (lb *Library) SaveTOML(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(lb)
}

// OpenTOML reads a library from the TOML settings format.
func OpenTOML(filename string) (*Library, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lb := &Library{}
	if err := toml.NewDecoder(f).Decode(lb); err != nil {
		return nil, err
	}
	return lb, nil
}

// WriteYAML writes the library in the YAML interchange format.
func (lb *Library) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(lb)
}

// ReadYAML reads a library from the YAML interchange format.
func ReadYAML(r io.Reader) (*Library, error) {
	lb := &Library{}
	if err := yaml.NewDecoder(r).Decode(lb); err != nil {
		return nil, err
	}
	return lb, nil
}

// GridRows splits the color indices of the given palette into rows of
// at most cols columns, for compact grid-only display. A cols of 0 or
// less uses the default of 8.
func GridRows(pl *Palette, cols int) [][]int {
	if pl == nil || len(pl.Colors) == 0 {
		return nil
	}
	if cols <= 0 {
		cols = 8
	}
	rows := make([][]int, 0, (len(pl.Colors)+cols-1)/cols)
	for start := 0; start < len(pl.Colors); start += cols {
		end := min(start+cols, len(pl.Colors))
		row := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, i)
		}
		rows = append(rows, row)
	}
	return rows
}
