// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides the shared infrastructure that the platform
// drivers build on.
package base

import (
	"sync"

	"github.com/gpuwin/shell/system"
)

// App contains the data and logic common to all implementations
// of [system.App].
type App struct {

	// This is the App as a [system.App] interface, which
	// preserves the actual underlying type when calling
	// interface methods from the base class.
	This system.App

	// Nm is the name of the app.
	Nm string

	// Mu is the main mutex protecting access to app state,
	// including window state.
	Mu sync.Mutex

	// MainQueue is the queue of functions to call on the main loop.
	// It exists from construction, so functions sent before the
	// main loop starts wait for it rather than running on the
	// sender's thread.
	MainQueue chan FuncRun

	// MainDone is closed when it is time for the main loop to exit.
	MainDone chan struct{}

	// Quitting is whether the app is quitting and thus closing
	// the window.
	Quitting bool

	// QuitReqFunc is a function to call when a quit is requested.
	QuitReqFunc func()

	// QuitCleanFuncs are functions to call when the app is about
	// to quit.
	QuitCleanFuncs []func()
}

// NewApp makes a new [App].
func NewApp() App {
	return App{
		MainQueue: make(chan FuncRun),
		MainDone:  make(chan struct{}),
	}
}

// Init initializes the given pointer to the given [system.App],
// setting [system.TheApp] in the process. Drivers call this during
// their Init after all platform setup is done.
func Init(a system.App, base *App) {
	base.This = a
	system.TheApp = a
}

func (a *App) Name() string {
	return a.Nm
}

func (a *App) SetName(name string) {
	a.Nm = name
}

// RunOnMain runs the given function on the main thread, waiting for
// it to complete. Functions sent before the main loop starts are
// queued and run once it does. The wakeup precedes the send, so a
// loop parked in a platform wait is never waiting on a ping that
// cannot be issued. RunOnMain must not be called from the main loop
// thread itself.
func (a *App) RunOnMain(f func()) {
	done := make(chan struct{})
	a.This.SendEmptyEvent()
	a.MainQueue <- FuncRun{F: f, Done: done}
	<-done
}

// SendEmptyEvent is a no-op by default; drivers whose main loop
// blocks in a platform wait override it to wake the loop.
func (a *App) SendEmptyEvent() {}

func (a *App) SetQuitReqFunc(fun func()) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.QuitReqFunc = fun
}

func (a *App) AddQuitCleanFunc(fun func()) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.QuitCleanFuncs = append(a.QuitCleanFuncs, fun)
}

func (a *App) QuitReq() {
	if a.Quitting {
		return
	}
	a.Mu.Lock()
	qf := a.QuitReqFunc
	a.Mu.Unlock()
	if qf != nil {
		qf()
		return
	}
	a.This.Quit()
}

func (a *App) IsQuitting() bool {
	return a.Quitting
}

// Quit runs QuitClean and stops the main loop.
func (a *App) Quit() {
	if a.Quitting {
		return
	}
	if !a.This.QuitClean() {
		return
	}
	a.StopMain()
}

// StopMain signals the main loop to exit. It is safe to call
// multiple times.
func (a *App) StopMain() {
	select {
	case <-a.MainDone:
	default:
		close(a.MainDone)
	}
}
