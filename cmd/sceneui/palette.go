// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atelier3d/sceneui/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Palette library utilities",
}

var paletteConvertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a palette library between TOML and YAML",
	Long: `Convert reads a palette library and writes it in the format implied
by the output filename extension: .toml for the settings format,
.yaml or .yml for the interchange format.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		lb, err := readLibrary(in)
		if err != nil {
			return err
		}
		switch ext(out) {
		case "toml":
			return lb.SaveTOML(out)
		case "yaml", "yml":
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			return lb.WriteYAML(f)
		}
		return fmt.Errorf("unsupported output format %q", ext(out))
	},
}

func readLibrary(filename string) (*palette.Library, error) {
	switch ext(filename) {
	case "toml":
		return palette.OpenTOML(filename)
	case "yaml", "yml":
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return palette.ReadYAML(f)
	}
	return nil, fmt.Errorf("unsupported input format %q", ext(filename))
}

func ext(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func init() {
	paletteCmd.AddCommand(paletteConvertCmd)
}
