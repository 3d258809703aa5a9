// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/gpuwin/shell/base/errors"
	"github.com/gpuwin/shell/events"
)

// ErrSurfaceLookup is returned when the drawable surface that the
// platform is expected to provide (e.g., the canvas element on web)
// cannot be found. It is a startup failure, not silently ignored.
var ErrSurfaceLookup = errors.New("system: drawable surface not found")

// Window is the single window of the app. It is shared between the
// app (which owns its lifecycle) and whatever render state holds it
// for drawing; it remains valid until both have released it.
type Window interface {

	// Name returns the name of the window.
	Name() string

	// SetTitle sets the current title of the window.
	SetTitle(title string)

	// Title returns the current title of the window.
	Title() string

	// Size returns the current size of the window in pixels.
	Size() image.Point

	// Events returns the [events.Source] for this window, through
	// which all window, key, paint, and custom events are delivered.
	Events() *events.Source

	// Drawer returns the [Drawer] holding the drawable surface
	// for this window.
	Drawer() Drawer

	// RequestPaint schedules exactly one future [events.WindowPaint]
	// event from the platform. Requests made while one is already
	// outstanding are coalesced. It never blocks.
	RequestPaint()

	// Close requests that the window be closed.
	Close()

	// IsClosed returns whether the window has been closed.
	IsClosed() bool
}

// Drawer holds the drawable surface of a window: the target that a
// renderer would draw onto. No rendering is done here; the Drawer
// only owns acquisition and release of the surface.
type Drawer interface {

	// Surface returns the drawable surface, acquiring it from
	// the platform on first use: a *wgpu.Surface on desktop, the
	// canvas js.Value on web, an *image.RGBA offscreen. It returns
	// nil if the platform cannot provide one.
	Surface() any

	// Release releases the surface and any platform resources
	// associated with it.
	Release()
}

// NewWindowOptions are the options for a new window.
type NewWindowOptions struct {

	// Size of the window, in pixels.
	Size image.Point

	// Title of the window.
	Title string

	// Canvas is the id of the host canvas element to bind to,
	// on platforms with an embedded drawable surface (web).
	Canvas string
}

// Fixup ensures that the options are sensible, applying defaults
// for any zero values.
func (o *NewWindowOptions) Fixup() {
	if o.Size.X <= 0 {
		o.Size.X = 1024
	}
	if o.Size.Y <= 0 {
		o.Size.Y = 768
	}
	if o.Title == "" {
		o.Title = "App"
	}
	if o.Canvas == "" {
		o.Canvas = "canvas"
	}
}
