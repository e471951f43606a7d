// Copyright (c) 2026, Atelier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New returns an error that formats as the given text.
// It is equivalent to [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is equivalent to [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is equivalent to [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
// It is equivalent to [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log takes the given error and logs it if it is non-nil,
// adding the source location of the caller. It returns the
// error so that it can be used in-line in return statements.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error if it
// is non-nil, returning just the value. It is useful for in-line
// handling of must-succeed calls whose error is worth recording.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Must panics if the given error is non-nil. It should only be
// used for errors that genuinely cannot happen.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// callerInfo returns the file and line of the caller of the
// exported helper that calls it.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown source"
	}
	return file + ":" + strconv.Itoa(line)
}
