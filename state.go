// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"image"

	"github.com/gpuwin/shell/base/errors"
	"github.com/gpuwin/shell/system"
)

// ErrInitialization is returned when render [State] construction
// fails because the platform cannot provide a drawable surface.
var ErrInitialization = errors.New("shell: no drawable surface available")

// State is the "ready to draw" state of the application. It shares
// ownership of the window with the [App]: the window remains valid
// until both have dropped it. No rendering pipeline is built here;
// State is the lifecycle anchor that a real renderer would extend.
type State struct {
	win     system.Window
	surface any
	size    image.Point
}

// NewState returns a new [State] holding the given window, acquiring
// the drawable surface from it. Acquisition can wait on the host
// (GPU driver handshake, browser readiness), which is why it takes a
// context and why platforms with a single cooperative thread must
// call it off the event-dispatch path.
func NewState(ctx context.Context, win system.Window) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sf := win.Drawer().Surface()
	if sf == nil {
		return nil, ErrInitialization
	}
	return &State{win: win, surface: sf, size: win.Size()}, nil
}

// Resize records the new rendering dimensions. Surface and swapchain
// reconfiguration for a real renderer belongs here.
func (st *State) Resize(size image.Point) {
	st.size = size
}

// Size returns the current rendering dimensions.
func (st *State) Size() image.Point {
	return st.size
}

// Render requests a redraw of the window. The platform delivers at
// most one paint event per outstanding request. Render never blocks.
func (st *State) Render() {
	st.win.RequestPaint()
}

// Window returns the window the state holds.
func (st *State) Window() system.Window {
	return st.win
}
