// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atelier3d/sceneui/buildcheck"
)

var (
	buildcheckLogFlag     string
	buildcheckRunFlag     string
	buildcheckScriptFlag  string
	buildcheckPassFlag    string
	buildcheckFailFlag    string
	buildcheckTimeoutFlag time.Duration
)

var buildcheckCmd = &cobra.Command{
	Use:   "buildcheck",
	Short: "Scan a build log for errors and optionally smoke-test the binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildcheckLogFlag == "" && buildcheckRunFlag == "" {
			return fmt.Errorf("nothing to check: pass --log and/or --run")
		}
		if buildcheckLogFlag != "" {
			rp, err := buildcheck.ScanFile(buildcheckLogFlag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", buildcheckLogFlag, rp)
			for _, f := range rp.Findings {
				fmt.Fprintf(cmd.OutOrStdout(), "  line %d: %s\n", f.Line, f.Text)
			}
			if !rp.OK() {
				return fmt.Errorf("build log has errors")
			}
		}
		if buildcheckRunFlag != "" {
			res, err := buildcheck.Smoke(cmd.Context(), &buildcheck.SmokeConfig{
				Command:    buildcheckRunFlag,
				Script:     buildcheckScriptFlag,
				PassMarker: buildcheckPassFlag,
				FailMarker: buildcheckFailFlag,
				Timeout:    buildcheckTimeoutFlag,
			})
			if err != nil {
				return err
			}
			if !res.Passed {
				return fmt.Errorf("smoke test failed:\n%s", res.Output)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "smoke test passed")
		}
		return nil
	},
}

func init() {
	buildcheckCmd.Flags().StringVar(&buildcheckLogFlag, "log", "", "build log to scan for error markers")
	buildcheckCmd.Flags().StringVar(&buildcheckRunFlag, "run", "", "command line launching the application binary")
	buildcheckCmd.Flags().StringVar(&buildcheckScriptFlag, "script", "", "test script to run in the application")
	buildcheckCmd.Flags().StringVar(&buildcheckPassFlag, "pass-marker", "ALL TESTS PASSED", "output substring marking success")
	buildcheckCmd.Flags().StringVar(&buildcheckFailFlag, "fail-marker", "TESTS FAILED", "output substring marking failure")
	buildcheckCmd.Flags().DurationVar(&buildcheckTimeoutFlag, "timeout", 2*time.Minute, "smoke test timeout")
}
