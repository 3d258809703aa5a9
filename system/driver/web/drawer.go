// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import "syscall/js"

// Drawer is the [system.Drawer] implementation for the web platform.
// The drawable surface is the bound canvas element itself; a real
// renderer would configure a WebGPU context from it.
type Drawer struct {

	// Canvas is the host canvas element the window is bound to.
	Canvas js.Value
}

func (dw *Drawer) Surface() any {
	if dw.Canvas.IsNull() || dw.Canvas.IsUndefined() {
		return nil
	}
	return dw.Canvas
}

func (dw *Drawer) Release() {
	dw.Canvas = js.Value{}
}
