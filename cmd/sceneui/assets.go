// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier3d/sceneui/assets"
)

var assetsAutoConvertFlag bool

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Asset catalog utilities",
}

var assetsScanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a directory for image assets and print the catalogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found, cats, err := assets.Scan(args[0], assets.ScanOptions{AutoConvert: assetsAutoConvertFlag})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d images, %d catalogs\n", len(found), cats.Len())
		for _, ct := range cats.All() {
			fmt.Fprintf(out, "catalog %s\n", ct.Path)
		}
		for _, as := range found {
			mark := " "
			if as.Marked {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %-10s %s\n", mark, as.Format, as.File)
		}
		return nil
	},
}

func init() {
	assetsScanCmd.Flags().BoolVar(&assetsAutoConvertFlag, "auto-convert", false, "mark every found image as an asset")
	assetsCmd.AddCommand(assetsScanCmd)
}
