// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gpuwin/shell/system/driver/base"
)

// Window is the [system.Window] implementation for the desktop
// platform.
type Window struct {
	base.WindowSingle[*App]

	// Glw is the glfw window associated with this window.
	Glw *glfw.Window
}

func (w *Window) SetTitle(title string) {
	w.WindowSingle.SetTitle(title)
	w.App.RunOnMain(func() {
		if w.Glw == nil {
			return
		}
		w.Glw.SetTitle(title)
	})
}

// RequestPaint delivers the paint event onto the deque. The deque is
// independent of the glfw loop, so no platform scheduling is needed;
// coalescing is handled by the pending flag.
func (w *Window) RequestPaint() {
	if !w.WindowSingle.RequestPaint() {
		return
	}
	w.SendPaintEvent()
}

func (w *Window) Close() {
	if w.IsClosed() {
		return
	}
	w.WindowSingle.Close()
	w.App.RunOnMain(func() {
		w.App.Draw.Release()
		if w.Glw != nil {
			w.Glw.Destroy()
			w.Glw = nil
		}
	})
}
