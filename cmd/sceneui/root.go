// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sceneui",
	Short:         "Developer tooling for the scene UI extensions",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(buildcheckCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(paletteCmd)
}
