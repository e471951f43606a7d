// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec provides a configurable wrapper around running external
// commands, used by the verification tooling to launch the application
// binary.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Config holds the settings for running commands.
type Config struct {

	// Dir is the directory to run commands in; empty uses the
	// current directory.
	Dir string

	// Env are additional environment variables, in key=value form,
	// appended to the current environment.
	Env []string

	// Timeout bounds each command; 0 means no bound.
	Timeout time.Duration

	// Stdout and Stderr receive the command's output when non-nil.
	Stdout io.Writer
	Stderr io.Writer

	// Commands, when non-nil, receives each command line before it
	// runs, for verbose output.
	Commands io.Writer
}

// Verbose returns a config echoing commands and output to the standard
// streams.
func Verbose() *Config {
	return &Config{Stdout: os.Stdout, Stderr: os.Stderr, Commands: os.Stderr}
}

// Run runs the given command with the given arguments, waiting for it
// to complete.
func (c *Config) Run(ctx context.Context, cmd string, args ...string) error {
	_, err := c.exec(ctx, c.Stdout, cmd, args...)
	return err
}

// Output runs the command and returns the text from stdout, with the
// trailing newline trimmed. Output is also echoed to [Config.Stdout]
// when set.
func (c *Config) Output(ctx context.Context, cmd string, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	_, err := c.exec(ctx, buf, cmd, args...)
	if c.Stdout != nil {
		c.Stdout.Write(buf.Bytes())
	}
	return strings.TrimSuffix(buf.String(), "\n"), err
}

// exec starts the command and waits for it, applying the config's
// directory, environment, and timeout. It returns the exit code.
func (c *Config) exec(ctx context.Context, stdout io.Writer, cmd string, args ...string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	if c.Commands != nil {
		fmt.Fprintln(c.Commands, cmd+" "+strings.Join(args, " "))
	}
	cm := exec.CommandContext(ctx, cmd, args...)
	cm.Dir = c.Dir
	if len(c.Env) > 0 {
		cm.Env = append(os.Environ(), c.Env...)
	}
	cm.Stdout = stdout
	cm.Stderr = c.Stderr
	err := cm.Run()
	code := 0
	if cm.ProcessState != nil {
		code = cm.ProcessState.ExitCode()
	}
	if err != nil {
		return code, fmt.Errorf("%s: %w", cmd, err)
	}
	return code, nil
}
