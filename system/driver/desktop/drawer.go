// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gpuwin/shell/base/errors"
	"github.com/gpuwin/shell/gpu"
	"github.com/gpuwin/shell/system"
)

// Drawer is the [system.Drawer] implementation for the desktop
// platform, holding the WebGPU surface for the window.
type Drawer struct {

	// Glw is the glfw window the surface is acquired for.
	Glw *glfw.Window

	// Surf is the WebGPU surface, acquired on first use.
	Surf *wgpu.Surface
}

// Surface returns the WebGPU surface for the window, acquiring it
// from the GPU driver on first use. Acquisition happens on the main
// thread and blocks the caller until the driver handshake completes.
// It returns nil if no window exists or acquisition fails.
func (dw *Drawer) Surface() any {
	if dw.Surf == nil {
		if dw.Glw == nil {
			return nil
		}
		system.TheApp.RunOnMain(func() {
			dw.Surf = errors.Log1(gpu.NewGLFWSurface(dw.Glw))
		})
	}
	if dw.Surf == nil {
		return nil
	}
	return dw.Surf
}

func (dw *Drawer) Release() {
	if dw.Surf != nil {
		dw.Surf.Release()
		dw.Surf = nil
	}
}
