// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package web implements the system interfaces on the web through
// WASM, binding the window to a host-provided canvas element.
package web

import (
	"fmt"
	"image"
	"syscall/js"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/system"
	"github.com/gpuwin/shell/system/driver/base"
)

// TheApp is the single [system.App] for the web platform.
var TheApp = &App{AppSingle: base.NewAppSingle[*Drawer, *Window]()}

// Init initializes the web platform. The system window (the bound
// canvas) is created asynchronously relative to app startup, so
// [system.OnSystemWindowCreated] is armed here and closed once the
// canvas is bound in [App.NewWindow].
func Init() {
	system.OnSystemWindowCreated = make(chan struct{})
	TheApp.Draw = &Drawer{}
	base.Init(TheApp, &TheApp.App)
}

// App is the [system.App] implementation for the web platform.
type App struct {
	base.AppSingle[*Drawer, *Window]
}

// NewWindow binds the single window to the host canvas element named
// by opts.Canvas. A missing canvas is a startup failure
// ([system.ErrSurfaceLookup]), not silently ignored. NewWindow never
// blocks on GPU or surface work: anything that needs the drawable
// surface must wait on [system.OnSystemWindowCreated] off the
// browser thread.
func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	defer func() { system.HandleRecover(recover()) }()
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()

	canvas := js.Global().Get("document").Call("getElementById", opts.Canvas)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("%w: no element with id %q", system.ErrSurfaceLookup, opts.Canvas)
	}

	a.Mu.Lock()
	a.Win = &Window{base.NewWindowSingle[*App](a, opts)}
	a.Mu.Unlock()
	a.Draw.Canvas = canvas

	a.SetSystemWindow()
	return a.Win, nil
}

// SetSystemWindow finishes binding the canvas: event listeners,
// initial sizing, and the WinShow lifecycle event. It closes
// [system.OnSystemWindowCreated] so that deferred surface work can
// proceed.
func (a *App) SetSystemWindow() {
	a.AddEventListeners()
	a.Resize()
	close(system.OnSystemWindowCreated)
	a.Event.Window(events.WinShow)
}

// Resize updates the canvas size from the browser window size and
// sends a WindowResize event.
func (a *App) Resize() {
	w := js.Global().Get("innerWidth").Int()
	h := js.Global().Get("innerHeight").Int()
	sz := image.Pt(w, h)

	a.Draw.Canvas.Set("width", sz.X)
	a.Draw.Canvas.Set("height", sz.Y)

	a.Win.SetSize(sz)
	a.Event.WindowResize(sz)
}

// MainLoop parks the main goroutine, running functions sent via
// [base.App.RunOnMain]; all platform events arrive through DOM
// callbacks.
func (a *App) MainLoop() {
	for {
		select {
		case <-a.MainDone:
			return
		case f := <-a.MainQueue:
			f.F()
			if f.Done != nil {
				f.Done <- struct{}{}
			}
		}
	}
}

func (a *App) Platform() system.Platforms {
	return system.Web
}
