// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"runtime/debug"
)

// HandleRecover takes the given value of recover, and, if it is not
// nil, logs the panic and stack trace and then re-panics, so that
// panics in driver callbacks are reported with their full stack
// before crashing the process.
func HandleRecover(r any) {
	if r == nil {
		return
	}
	slog.Error("panic", "value", r, "stack", string(debug.Stack()))
	panic(r)
}
