// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the system interfaces on desktop
// platforms (macOS, Linux, Windows) through glfw, with the drawable
// surface acquired through WebGPU.
package desktop

import (
	"image"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/gpu"
	"github.com/gpuwin/shell/system"
	"github.com/gpuwin/shell/system/driver/base"
)

func init() {
	runtime.LockOSThread()
}

// TheApp is the single [system.App] for the desktop platform.
var TheApp = &App{AppSingle: base.NewAppSingle[*Drawer, *Window]()}

// Init initializes the desktop platform.
// It must be called on the main thread.
func Init() {
	err := gpu.Init()
	if err != nil {
		slog.Error("failed to initialize windowing system", "err", err)
	}
	TheApp.Draw = &Drawer{}
	base.Init(TheApp, &TheApp.App)
}

// App is the [system.App] implementation for the desktop platform.
type App struct {
	base.AppSingle[*Drawer, *Window]
}

// NewWindow creates the single window. It is called on the main
// thread, before the main loop starts, so the glfw window is made
// directly; the drawable surface handle exists once it returns.
func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	defer func() { system.HandleRecover(recover()) }()
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()

	if err := a.NewGlfwWindow(opts); err != nil {
		return nil, err
	}

	a.Event.Window(events.WinShow)
	a.Event.WindowResize(a.Win.Size())
	return a.Win, nil
}

// NewGlfwWindow makes the underlying glfw window and registers the
// event callbacks on it. It must be called on the main thread.
func (a *App) NewGlfwWindow(opts *system.NewWindowOptions) error {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return err
	}

	w := &Window{WindowSingle: base.NewWindowSingle[*App](a, opts), Glw: glw}
	fbx, fby := glw.GetFramebufferSize()
	w.SetSize(image.Pt(fbx, fby))

	a.Mu.Lock()
	a.Win = w
	a.Mu.Unlock()
	a.Draw.Glw = glw

	glw.SetKeyCallback(w.KeyEvent)
	glw.SetFramebufferSizeCallback(w.SizeEvent)
	glw.SetCloseCallback(w.CloseReqEvent)
	glw.SetRefreshCallback(w.RefreshEvent)
	return nil
}

// MainLoop runs the platform event loop on the main thread,
// interleaving functions sent via [base.App.RunOnMain]. The platform
// wait has a timeout so that a function sent between the queue check
// and the wait is picked up on the next pass, not stalled until the
// next OS event.
func (a *App) MainLoop() {
	for {
		select {
		case <-a.MainDone:
			gpu.Terminate()
			return
		case f := <-a.MainQueue:
			f.F()
			if f.Done != nil {
				f.Done <- struct{}{}
			}
		default:
			glfw.WaitEventsTimeout(1.0 / 60)
		}
	}
}

// SendEmptyEvent wakes the main loop out of [glfw.WaitEvents].
func (a *App) SendEmptyEvent() {
	glfw.PostEmptyEvent()
}

func (a *App) Platform() system.Platforms {
	return PlatformOS
}
