// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutput(t *testing.T) {
	c := &Config{}
	out, err := c.Output(context.Background(), "echo", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRunError(t *testing.T) {
	c := &Config{}
	err := c.Run(context.Background(), "this-command-does-not-exist")
	assert.Error(t, err)
}

func TestCommandsEcho(t *testing.T) {
	buf := &bytes.Buffer{}
	c := &Config{Commands: buf}
	assert.NoError(t, c.Run(context.Background(), "true"))
	assert.Equal(t, "true\n", buf.String())
}
