// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell is a minimal cross-platform application shell: it
// creates the platform window once the host environment signals
// readiness, constructs the render [State] (synchronously or
// deferred, depending on the platform), and routes window and input
// events to it. The platform drivers live under system/driver; a
// main package imports one for side effects:
//
//	import _ "github.com/gpuwin/shell/system/driver"
package shell

import (
	"context"
	"fmt"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/events/key"
	"github.com/gpuwin/shell/system"
)

// Stages are the lifecycle stages of the [App]. Making the stage
// explicit (rather than a nullable state field) means events that
// arrive before the render [State] exists are dropped by the state
// machine, not guarded against at every use site.
type Stages int32

const (
	// StageUninitialized is the initial stage, before the platform
	// has signaled that the window exists.
	StageUninitialized Stages = iota

	// StageAwaitingInit means deferred [State] construction has been
	// launched and its result has not yet arrived. Only
	// deferred-init platforms (web) enter this stage.
	StageAwaitingInit

	// StageReady means the render [State] exists and window and
	// input events are routed to it.
	StageReady

	// StageShuttingDown is terminal: the event loop is exiting.
	StageShuttingDown

	// StagesN is the number of defined stages.
	StagesN
)

var stageNames = [StagesN]string{"Uninitialized", "AwaitingInit", "Ready", "ShuttingDown"}

func (s Stages) String() string {
	if s < 0 || s >= StagesN {
		return "Stages(invalid)"
	}
	return stageNames[s]
}

// App is the application controller. It owns the optional render
// [State] and drives the lifecycle state machine over the window's
// sequential event stream; because all events, including the
// deferred-init Custom event, arrive on that one stream, App needs
// no locking.
type App struct {
	opts    *Options
	init    Initializer
	stage   Stages
	win     system.Window
	state   *State
	pending *pendingInit
	runErr  error
	ctx     context.Context
}

// NewApp returns a new [App] with the given options (nil means
// defaults). The initialization strategy is chosen here, from the
// platform: deferred on platforms that must not block the event
// thread, blocking elsewhere.
func NewApp(opts *Options) *App {
	if opts == nil {
		opts = DefaultOptions()
	}
	a := &App{opts: opts, stage: StageUninitialized}
	if system.TheApp.Platform().IsAsync() {
		a.init = AsyncInitializer{}
		a.pending = &pendingInit{}
	} else {
		a.init = SyncInitializer{}
	}
	return a
}

// Stage returns the current lifecycle stage.
func (a *App) Stage() Stages {
	return a.stage
}

// State returns the render state, or nil before [StageReady].
func (a *App) State() *State {
	return a.state
}

// Run creates the window and drives the event loop until shutdown,
// returning the error that ended the run, if any. It must be called
// from the main thread, which it blocks for the life of the app.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	system.TheApp.SetName(a.opts.Title)

	win, err := system.TheApp.NewWindow(&system.NewWindowOptions{
		Size:   a.opts.WindowSize(),
		Title:  a.opts.Title,
		Canvas: a.opts.Canvas,
	})
	if err != nil {
		return fmt.Errorf("shell: failed to open window: %w", err)
	}
	a.win = win

	// quit requests from the platform (OS close, beforeunload) go
	// through the state machine as a close event; when the app does
	// quit, closing the deque unblocks the dispatch goroutine.
	system.TheApp.SetQuitReqFunc(func() {
		win.Events().Window(events.WinClose)
	})
	system.TheApp.AddQuitCleanFunc(func() {
		win.Events().Deque.Close()
	})

	go a.eventLoop()
	system.TheApp.MainLoop()
	return a.runErr
}

// eventLoop drains the deque sequentially, dispatching each event
// through the state machine, until shutdown.
func (a *App) eventLoop() {
	for a.stage != StageShuttingDown {
		ev := a.win.Events().Deque.NextEvent()
		if ev == nil {
			break
		}
		a.handleEvent(ev)
	}
	system.TheApp.Quit()
}

// handleEvent is the state machine dispatch. Events with no defined
// transition for the current stage are dropped deliberately; in
// particular, anything that would need the render [State] before it
// exists.
func (a *App) handleEvent(e events.Event) {
	switch ev := e.(type) {
	case *events.WindowEvent:
		switch ev.Type() {
		case events.Window:
			a.windowEvent(ev)
		case events.WindowResize:
			if a.stage == StageReady {
				a.state.Resize(ev.Size)
			}
		case events.WindowPaint:
			if a.stage == StageReady {
				a.state.Render()
			}
		}
	case *events.Key:
		// only the physical key matters, and only Escape going down
		if a.stage == StageReady && ev.Type() == events.KeyDown && ev.Code == key.CodeEscape {
			a.shutDown(nil)
		}
	case *events.CustomEvent:
		res, ok := ev.Data.(initResult)
		if !ok || a.stage != StageAwaitingInit {
			return
		}
		a.finishInit(res.state, res.err)
	}
}

func (a *App) windowEvent(ev *events.WindowEvent) {
	switch ev.Action {
	case events.WinShow:
		a.resume()
	case events.WinClose:
		if a.stage == StageReady {
			a.shutDown(nil)
		}
	}
}

// resume handles the platform's "window exists" lifecycle signal by
// launching render [State] construction. It is idempotent: a second
// signal in any later stage is a no-op, and the one-shot pending
// token is consumed only on the first.
func (a *App) resume() {
	if a.stage != StageUninitialized {
		return
	}
	if a.init.Deferred() {
		a.pending.consume()
		a.pending = nil
		if _, err := a.init.Start(a.ctx, a.win); err != nil {
			a.shutDown(err)
			return
		}
		a.stage = StageAwaitingInit
		return
	}
	st, err := a.init.Start(a.ctx, a.win)
	if err != nil {
		a.shutDown(err)
		return
	}
	a.state = st
	a.stage = StageReady
}

// finishInit completes deferred initialization: the state is brought
// up to the window's current size and one redraw is requested before
// events start flowing to it.
func (a *App) finishInit(st *State, err error) {
	if err != nil {
		// surfaced as an orderly shutdown with a non-nil run error,
		// rather than aborting the process mid-loop
		a.shutDown(err)
		return
	}
	st.Resize(a.win.Size())
	st.Render()
	a.state = st
	a.stage = StageReady
}

// shutDown moves to the terminal stage and records the error that
// caused it, if any; the event loop exits on seeing the stage.
func (a *App) shutDown(err error) {
	if a.stage == StageShuttingDown {
		return
	}
	a.stage = StageShuttingDown
	a.runErr = err
}
