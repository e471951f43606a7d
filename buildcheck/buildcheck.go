// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buildcheck verifies a build of the application: it scans the
// build log for compiler error markers and optionally launches the
// built binary headless with a test script, checking its output for
// the script's pass and fail markers.
package buildcheck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"

	"github.com/atelier3d/sceneui/base/errors"
	"github.com/atelier3d/sceneui/base/exec"
)

// ErrorMarkers are the literal substrings that mark a failed build in
// the build log, matched case-insensitively.
var ErrorMarkers = []string{
	"error C",
	"fatal error",
	"Build FAILED",
	"compilation terminated",
	": error:",
}

// Finding is one error marker hit in a scanned log.
type Finding struct {

	// Line is the 1-based line number of the hit.
	Line int

	// Text is the trimmed line content.
	Text string

	// Marker is the marker that matched.
	Marker string
}

// MaxFindings bounds the findings kept per scan; earlier hits fall out
// of the window as later ones arrive.
const MaxFindings = 10

// Report is the result of scanning one log.
type Report struct {

	// Findings are the last [MaxFindings] marker hits.
	Findings []Finding

	// Total is the total number of marker hits, which can exceed
	// len(Findings).
	Total int

	// Lines is the number of lines scanned.
	Lines int
}

// OK reports whether the scan found no error markers.
func (rp *Report) OK() bool { return rp.Total == 0 }

// String returns a one-line summary of the report.
func (rp *Report) String() string {
	if rp.OK() {
		return fmt.Sprintf("no errors in %d lines", rp.Lines)
	}
	return fmt.Sprintf("%d errors in %d lines", rp.Total, rp.Lines)
}

// Scan reads the given log and returns a report of the error marker
// hits in it.
func Scan(r io.Reader) (*Report, error) {
	rp := &Report{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rp.Lines++
		line := sc.Text()
		lower := strings.ToLower(line)
		for _, marker := range ErrorMarkers {
			if strings.Contains(lower, strings.ToLower(marker)) {
				rp.Total++
				if len(rp.Findings) == MaxFindings {
					rp.Findings = rp.Findings[1:]
				}
				rp.Findings = append(rp.Findings, Finding{
					Line:   rp.Lines,
					Text:   strings.TrimSpace(line),
					Marker: marker,
				})
				break
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rp, nil
}

// ScanFile scans the build log at the given path.
func ScanFile(filename string) (*Report, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f)
}

// SmokeConfig describes a headless run of the built application with a
// test script.
type SmokeConfig struct {

	// Command is the full command line launching the application,
	// parsed with shell quoting rules. The script path and the
	// headless flags are appended.
	Command string

	// Script is the test script to run inside the application.
	Script string

	// PassMarker and FailMarker are the output substrings the script
	// prints on success and failure.
	PassMarker string
	FailMarker string

	// Timeout bounds the run; 0 uses a 2 minute default.
	Timeout time.Duration
}

// SmokeResult is the outcome of a smoke run.
type SmokeResult struct {

	// Passed is whether the run printed the pass marker and not the
	// fail marker.
	Passed bool

	// Output is the captured application output.
	Output string
}

// Smoke launches the application headless with the configured test
// script and checks its output for the pass and fail markers. A run
// that exits nonzero fails regardless of markers.
func Smoke(ctx context.Context, cfg *SmokeConfig) (*SmokeResult, error) {
	args, err := shellwords.Parse(cfg.Command)
	if err != nil {
		return nil, fmt.Errorf("buildcheck.Smoke: bad command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("buildcheck.Smoke: empty command")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	args = append(args, "--background")
	if cfg.Script != "" {
		args = append(args, "--python", cfg.Script)
	}

	xc := &exec.Config{Timeout: timeout}
	out, err := xc.Output(ctx, args[0], args[1:]...)
	res := &SmokeResult{Output: out}
	if err != nil {
		exitErr := &osexec.ExitError{}
		if errors.As(err, &exitErr) {
			return res, nil
		}
		return res, err
	}
	res.Passed = (cfg.PassMarker == "" || strings.Contains(out, cfg.PassMarker)) &&
		(cfg.FailMarker == "" || !strings.Contains(out, cfg.FailMarker))
	return res, nil
}
