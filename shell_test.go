// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/events/key"
	"github.com/gpuwin/shell/system"
	_ "github.com/gpuwin/shell/system/driver"
	"github.com/gpuwin/shell/system/driver/offscreen"
)

// newTestApp makes an App with its window already open, with the
// window-creation events drained so tests drive the state machine
// event by event.
func newTestApp(t *testing.T) (*App, system.Window) {
	t.Helper()
	a := NewApp(nil)
	win, err := system.TheApp.NewWindow(&system.NewWindowOptions{
		Size:  a.opts.WindowSize(),
		Title: a.opts.Title,
	})
	require.NoError(t, err)
	a.win = win
	a.ctx = context.Background()
	for win.Events().Deque.PollEvent() != nil {
	}
	return a, win
}

func TestEventsBeforeResumeDropped(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleEvent(events.NewWindowResize(image.Pt(800, 600)))
	a.handleEvent(events.NewWindowPaint())
	a.handleEvent(events.NewKey(events.KeyDown, 0, key.CodeEscape, 0))
	a.handleEvent(events.NewWindow(events.WinClose))

	assert.Equal(t, StageUninitialized, a.Stage())
	assert.Nil(t, a.State())
}

func TestResumeSync(t *testing.T) {
	a, win := newTestApp(t)

	a.handleEvent(events.NewWindow(events.WinShow))
	assert.Equal(t, StageReady, a.Stage())
	require.NotNil(t, a.State())
	assert.Equal(t, win.Size(), a.State().Size())
}

func TestResumeIdempotent(t *testing.T) {
	a, _ := newTestApp(t)

	a.handleEvent(events.NewWindow(events.WinShow))
	st := a.State()
	require.NotNil(t, st)

	a.handleEvent(events.NewWindow(events.WinShow))
	assert.Equal(t, StageReady, a.Stage())
	assert.Same(t, st, a.State())
}

func TestPendingInitOneShot(t *testing.T) {
	p := &pendingInit{}
	p.consume()
	assert.Panics(t, func() { p.consume() })
}

func TestResizeRoundTrip(t *testing.T) {
	a, _ := newTestApp(t)
	a.handleEvent(events.NewWindow(events.WinShow))
	require.Equal(t, StageReady, a.Stage())

	a.handleEvent(events.NewWindowResize(image.Pt(800, 600)))
	assert.Equal(t, image.Pt(800, 600), a.State().Size())
}

func TestEscapeExits(t *testing.T) {
	a, win := newTestApp(t)
	a.handleEvent(events.NewWindow(events.WinShow))
	require.Equal(t, StageReady, a.Stage())

	// released Escape and other keys are no-ops
	a.handleEvent(events.NewKey(events.KeyUp, 0, key.CodeEscape, 0))
	a.handleEvent(events.NewKey(events.KeyDown, 0, key.CodeReturnEnter, 0))
	assert.Equal(t, StageReady, a.Stage())

	a.handleEvent(events.NewKey(events.KeyDown, 0, key.CodeEscape, 0))
	assert.Equal(t, StageShuttingDown, a.Stage())
	assert.NoError(t, a.runErr)

	// no resize or render happened along the way
	assert.Nil(t, win.Events().Deque.PollEvent())
	assert.Equal(t, win.Size(), a.State().Size())
}

func TestCloseExits(t *testing.T) {
	a, _ := newTestApp(t)
	a.handleEvent(events.NewWindow(events.WinShow))
	a.handleEvent(events.NewWindow(events.WinClose))
	assert.Equal(t, StageShuttingDown, a.Stage())
	assert.NoError(t, a.runErr)
}

func TestResumeAsyncReady(t *testing.T) {
	a, win := newTestApp(t)
	a.init = AsyncInitializer{}
	a.pending = &pendingInit{}

	a.handleEvent(events.NewWindow(events.WinShow))
	assert.Equal(t, StageAwaitingInit, a.Stage())
	assert.Nil(t, a.pending)

	// a second resume while awaiting is a no-op
	a.handleEvent(events.NewWindow(events.WinShow))
	assert.Equal(t, StageAwaitingInit, a.Stage())

	// deferred construction posts its result as a Custom event on
	// the same dispatch stream
	ev := win.Events().Deque.NextEvent()
	require.Equal(t, events.Custom, ev.Type())
	a.handleEvent(ev)
	assert.Equal(t, StageReady, a.Stage())
	require.NotNil(t, a.State())

	// exactly one redraw request was issued on becoming ready
	pev := win.Events().Deque.PollEvent()
	require.NotNil(t, pev)
	assert.Equal(t, events.WindowPaint, pev.Type())
	assert.Nil(t, win.Events().Deque.PollEvent())

	// rendering a frame requests the next one
	a.handleEvent(pev)
	nev := win.Events().Deque.PollEvent()
	require.NotNil(t, nev)
	assert.Equal(t, events.WindowPaint, nev.Type())
}

func TestAsyncInitFailure(t *testing.T) {
	a, _ := newTestApp(t)
	a.init = AsyncInitializer{}
	a.pending = &pendingInit{}
	a.stage = StageAwaitingInit
	a.pending = nil

	a.handleEvent(events.NewCustom(initResult{err: ErrInitialization}))
	assert.Equal(t, StageShuttingDown, a.Stage())
	assert.ErrorIs(t, a.runErr, ErrInitialization)
}

func TestStrayCustomEventDropped(t *testing.T) {
	a, _ := newTestApp(t)
	a.handleEvent(events.NewCustom("not an init result"))
	assert.Equal(t, StageUninitialized, a.Stage())

	a.handleEvent(events.NewWindow(events.WinShow))
	st := a.State()
	a.handleEvent(events.NewCustom(initResult{state: &State{}}))
	assert.Same(t, st, a.State())
}

func TestRunEscape(t *testing.T) {
	offscreen.Init()
	a := NewApp(nil)
	done := make(chan error, 1)
	go func() {
		done <- a.Run(context.Background())
	}()

	// the WinShow from window creation is processed by the loop;
	// keep offering Escape until the run ends, since key events
	// before the resume signal are dropped by design
	timeout := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			assert.NoError(t, err)
			assert.Equal(t, StageShuttingDown, a.Stage())
			return
		case <-timeout:
			t.Fatal("app did not exit on Escape")
		case <-time.After(time.Millisecond):
			offscreen.TheApp.Events().Key(events.KeyDown, 0, key.CodeEscape, 0)
		}
	}
}

func TestRunQuitReq(t *testing.T) {
	offscreen.Init()
	a := NewApp(nil)
	done := make(chan error, 1)
	go func() {
		done <- a.Run(context.Background())
	}()

	// once the main loop is receptive, the quit-request func is
	// registered; the close event it sends is queued behind the
	// resume signal, so it lands in the Ready stage
	system.TheApp.RunOnMain(func() {})
	system.TheApp.QuitReq()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Equal(t, StageShuttingDown, a.Stage())
	case <-time.After(5 * time.Second):
		t.Fatal("app did not exit on quit request")
	}
}
