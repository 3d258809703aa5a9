// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(js || offscreen)

// Package driver provides the default driver for the current
// platform; import it for side effects:
//
//	import _ "github.com/gpuwin/shell/system/driver"
package driver

import (
	"os"
	"slices"
	"testing"

	"github.com/gpuwin/shell/system/driver/desktop"
	"github.com/gpuwin/shell/system/driver/offscreen"
)

func init() {
	if testing.Testing() || slices.Contains(os.Args, "-nogui") {
		offscreen.Init()
		return
	}
	desktop.Init()
}
