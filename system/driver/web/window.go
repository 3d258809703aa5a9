// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"syscall/js"

	"github.com/gpuwin/shell/system/driver/base"
)

// Window is the [system.Window] implementation for the web platform.
type Window struct {
	base.WindowSingle[*App]
}

func (w *Window) SetTitle(title string) {
	w.WindowSingle.SetTitle(title)
	js.Global().Get("document").Set("title", title)
}

// RequestPaint schedules one requestAnimationFrame callback, which
// delivers the paint event on the next display refresh. Requests
// made while one is outstanding coalesce into it.
func (w *Window) RequestPaint() {
	if !w.WindowSingle.RequestPaint() {
		return
	}
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		w.SendPaintEvent()
		f.Release()
		return nil
	})
	js.Global().Call("requestAnimationFrame", f)
}
