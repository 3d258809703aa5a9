// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a small set of logging and handling
// functions for errors, in addition to re-exporting the standard
// library errors functions so that it can be used as a drop-in
// replacement for the errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error that formats as the given text.
// It is the same as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
// It is the same as [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error that wraps the given errors.
// It is the same as [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log takes the given error and logs it to [slog.Error] if it is
// non-nil, adding the source file and line of the caller. It returns
// the error unchanged so that it can be used inline in a return:
//
//	return errors.Log(err)
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "from", callerInfo())
	}
	return err
}

// Log1 is a version of [Log] for functions that return a value
// in addition to an error, returning the value unchanged:
//
//	v := errors.Log1(f())
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "from", callerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// callerInfo returns the file and line of the caller two
// levels up the stack (the caller of the errors function).
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
