// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen

package driver

import (
	"github.com/gpuwin/shell/system/driver/offscreen"
)

func init() {
	offscreen.Init()
}
