// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/system"
)

// WindowSingle contains the data and logic common to the
// [system.Window] implementations of single-window drivers,
// which associate the window with the [AppSingler] app.
type WindowSingle[A AppSingler] struct {

	// App is the [AppSingler] associated with the window.
	App A

	// Mu protects Titl and Sz, which platform callbacks update
	// while the event goroutine reads them.
	Mu sync.Mutex

	// Titl is the current title of the window.
	Titl string

	// Sz is the current size of the window in pixels.
	Sz image.Point

	// PaintPending is whether a requested paint event has not yet
	// been delivered. It makes paint requests coalesce: each
	// request schedules at most one future paint.
	PaintPending atomic.Bool

	// Closed is whether the window has been closed.
	Closed atomic.Bool
}

// NewWindowSingle makes a new [WindowSingle] for the given app
// with the given options.
func NewWindowSingle[A AppSingler](app A, opts *system.NewWindowOptions) WindowSingle[A] {
	return WindowSingle[A]{
		App:  app,
		Titl: opts.Title,
		Sz:   opts.Size,
	}
}

func (w *WindowSingle[A]) Name() string {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Titl
}

func (w *WindowSingle[A]) SetTitle(title string) {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	w.Titl = title
}

func (w *WindowSingle[A]) Title() string {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Titl
}

func (w *WindowSingle[A]) Size() image.Point {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Sz
}

func (w *WindowSingle[A]) SetSize(sz image.Point) {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	w.Sz = sz
}

func (w *WindowSingle[A]) Events() *events.Source {
	return w.App.Events()
}

func (w *WindowSingle[A]) Drawer() system.Drawer {
	return w.App.Drawer()
}

// SendPaintEvent sends the pending [events.WindowPaint] event if one
// has been requested, clearing the pending flag. Drivers call this
// from their paint scheduling mechanism.
func (w *WindowSingle[A]) SendPaintEvent() {
	if !w.PaintPending.CompareAndSwap(true, false) {
		return
	}
	w.Events().WindowPaint()
}

// RequestPaint marks a paint as pending. Drivers embed this and
// additionally wake their scheduling mechanism; a request made while
// one is outstanding is a no-op.
func (w *WindowSingle[A]) RequestPaint() bool {
	return w.PaintPending.CompareAndSwap(false, true)
}

func (w *WindowSingle[A]) Close() {
	w.Closed.Store(true)
}

func (w *WindowSingle[A]) IsClosed() bool {
	return w.Closed.Load()
}
