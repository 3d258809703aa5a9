// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/system"
)

// nilSurfaceWindow is a window whose platform cannot provide a
// drawable surface.
type nilSurfaceWindow struct {
	ev events.Source
}

type nilDrawer struct{}

func (nilDrawer) Surface() any { return nil }
func (nilDrawer) Release() {}

func (w *nilSurfaceWindow) Name() string { return "nil-surface" }
func (w *nilSurfaceWindow) SetTitle(title string) {}
func (w *nilSurfaceWindow) Title() string { return "nil-surface" }
func (w *nilSurfaceWindow) Size() image.Point { return image.Pt(1024, 768) }
func (w *nilSurfaceWindow) Events() *events.Source { return &w.ev }
func (w *nilSurfaceWindow) Drawer() system.Drawer { return nilDrawer{} }
func (w *nilSurfaceWindow) RequestPaint() {}
func (w *nilSurfaceWindow) Close() {}
func (w *nilSurfaceWindow) IsClosed() bool { return false }

func TestNewState(t *testing.T) {
	_, win := newTestApp(t)

	st, err := NewState(context.Background(), win)
	require.NoError(t, err)
	assert.Equal(t, win.Size(), st.Size())
	assert.Same(t, win, st.Window())

	st.Resize(image.Pt(800, 600))
	assert.Equal(t, image.Pt(800, 600), st.Size())
}

func TestNewStateNoSurface(t *testing.T) {
	st, err := NewState(context.Background(), &nilSurfaceWindow{})
	assert.Nil(t, st)
	assert.ErrorIs(t, err, ErrInitialization)
}

func TestNewStateCanceled(t *testing.T) {
	_, win := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := NewState(ctx, win)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSyncInitFailure(t *testing.T) {
	a, _ := newTestApp(t)
	a.win = &nilSurfaceWindow{}

	a.handleEvent(events.NewWindow(events.WinShow))
	assert.Equal(t, StageShuttingDown, a.Stage())
	assert.ErrorIs(t, a.runErr, ErrInitialization)
}

func TestRenderRequestsOnePaint(t *testing.T) {
	a, win := newTestApp(t)
	a.handleEvent(events.NewWindow(events.WinShow))
	require.Equal(t, StageReady, a.Stage())

	a.State().Render()
	ev := win.Events().Deque.PollEvent()
	require.NotNil(t, ev)
	assert.Equal(t, events.WindowPaint, ev.Type())
	assert.Nil(t, win.Events().Deque.PollEvent())
}
