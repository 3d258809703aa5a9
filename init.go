// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"

	"github.com/gpuwin/shell/system"
)

// initResult carries the result of deferred [State] construction
// back to the dispatch stream inside a Custom event.
type initResult struct {
	state *State
	err   error
}

// pendingInit is the one-shot token guarding deferred
// initialization. It is created once, when the [App] is constructed
// on a deferred-init platform, and consumed exactly once, when
// construction is launched; consuming it twice is a programming
// error, not a runtime state.
type pendingInit struct {
	used bool
}

func (p *pendingInit) consume() {
	if p.used {
		panic("shell: pending initialization token consumed twice")
	}
	p.used = true
}

// Initializer is the strategy for constructing the render [State]
// once the window exists. The two implementations reconcile the two
// concurrency models for the same logical operation: construction
// that blocks the caller, and construction that must not.
type Initializer interface {

	// Deferred returns whether Start returns before the State
	// exists, delivering the result later as a Custom event on the
	// window's dispatch stream.
	Deferred() bool

	// Start begins State construction for the given window. If
	// Deferred returns false, the returned State is complete when
	// Start returns. Otherwise Start returns (nil, nil) immediately
	// and an initResult arrives as a Custom event.
	Start(ctx context.Context, win system.Window) (*State, error)
}

// SyncInitializer constructs the [State] inline, blocking the
// calling goroutine until the drawable surface exists. It is used
// where blocking the event-dispatch thread is acceptable because
// other OS threads keep the platform responsive (desktop,
// offscreen).
type SyncInitializer struct{}

func (SyncInitializer) Deferred() bool { return false }

func (SyncInitializer) Start(ctx context.Context, win system.Window) (*State, error) {
	return NewState(ctx, win)
}

// AsyncInitializer constructs the [State] in a background goroutine
// and delivers the result as a Custom event, so that the single
// cooperative browser thread is never blocked on surface
// acquisition. If the system window itself is created
// asynchronously, construction first waits on
// [system.OnSystemWindowCreated].
type AsyncInitializer struct{}

func (AsyncInitializer) Deferred() bool { return true }

func (AsyncInitializer) Start(ctx context.Context, win system.Window) (*State, error) {
	go func() {
		if c := system.OnSystemWindowCreated; c != nil {
			select {
			case <-c:
			case <-ctx.Done():
				win.Events().Custom(initResult{err: ctx.Err()})
				return
			}
		}
		st, err := NewState(ctx, win)
		win.Events().Custom(initResult{state: st, err: err})
	}()
	return nil, nil
}
