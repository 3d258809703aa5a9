// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides placeholder implementations of
// system interfaces to allow for headless testing of code
// that depends on the system interfaces.
package offscreen

import (
	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/system"
	"github.com/gpuwin/shell/system/driver/base"
)

// TheApp is the single [system.App] for the offscreen platform.
var TheApp = &App{AppSingle: base.NewAppSingle[*Drawer, *Window]()}

// Init initializes the offscreen platform. It resets the app to a
// fresh state, so tests can run repeated full app lifecycles.
func Init() {
	TheApp.AppSingle = base.NewAppSingle[*Drawer, *Window]()
	TheApp.Draw = &Drawer{}
	base.Init(TheApp, &TheApp.App)
}

// App is the [system.App] implementation for the offscreen platform.
type App struct {
	base.AppSingle[*Drawer, *Window]
}

// NewWindow creates the single window. The system window exists
// immediately, so the WinShow lifecycle event is sent synchronously
// before NewWindow returns.
func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	defer func() { system.HandleRecover(recover()) }()
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()

	a.Mu.Lock()
	a.Win = &Window{base.NewWindowSingle(a, opts)}
	a.Mu.Unlock()
	a.Draw.Resize(opts.Size)

	a.Event.Window(events.WinShow)
	a.Event.WindowResize(opts.Size)
	return a.Win, nil
}

// MainLoop parks until [base.App.StopMain]; the offscreen platform
// has no platform events of its own.
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
	return system.Offscreen
}
