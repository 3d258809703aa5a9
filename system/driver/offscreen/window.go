// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"github.com/gpuwin/shell/system/driver/base"
)

// Window is the [system.Window] implementation for the offscreen
// platform.
type Window struct {
	base.WindowSingle[*App]
}

// RequestPaint delivers the paint event directly onto the deque;
// there is no frame scheduler offscreen.
func (w *Window) RequestPaint() {
	if !w.WindowSingle.RequestPaint() {
		return
	}
	w.SendPaintEvent()
}
