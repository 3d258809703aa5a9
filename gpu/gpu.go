// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package gpu manages the WebGPU instance and acquires drawable
// surfaces for platform windows. It does no rendering itself; it
// exists so that the render state has a real GPU-capable surface to
// hold, and so that surface acquisition failures are real errors.
package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gpuwin/shell/base/errors"
)

// theInstance is the single shared WebGPU instance, created on
// first use.
var theInstance *wgpu.Instance

// Init initializes the platform windowing system (glfw).
// It must be called before any other gpu or window calls,
// on the main initial thread.
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the WebGPU instance and the windowing
// system. Call as the last thing before quitting, on the main
// initial thread.
func Terminate() {
	if theInstance != nil {
		theInstance.Release()
		theInstance = nil
	}
	glfw.Terminate()
}

// Instance returns the shared WebGPU instance, creating it if
// needed.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// NewGLFWSurface acquires a WebGPU surface for the given glfw
// window. Must be called on the main thread.
func NewGLFWSurface(w *glfw.Window) (*wgpu.Surface, error) {
	sf := Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(w))
	if sf == nil {
		return nil, errors.New("gpu: failed to create surface for window")
	}
	return sf, nil
}
