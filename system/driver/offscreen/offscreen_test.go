// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/system"
)

func TestNewWindow(t *testing.T) {
	Init()
	win, err := system.TheApp.NewWindow(&system.NewWindowOptions{Size: image.Pt(300, 200), Title: "test"})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(300, 200), win.Size())
	assert.Equal(t, "test", win.Title())

	// the system window exists immediately: WinShow arrives
	// synchronously, followed by the initial size
	ev := win.Events().Deque.PollEvent()
	require.NotNil(t, ev)
	require.Equal(t, events.Window, ev.Type())
	assert.Equal(t, events.WinShow, ev.(*events.WindowEvent).Action)

	ev = win.Events().Deque.PollEvent()
	require.NotNil(t, ev)
	assert.Equal(t, events.WindowResize, ev.Type())

	sf := win.Drawer().Surface()
	require.NotNil(t, sf)
	assert.Equal(t, image.Pt(300, 200), sf.(*image.RGBA).Rect.Max)
}

func TestRequestPaint(t *testing.T) {
	Init()
	win, err := system.TheApp.NewWindow(nil)
	require.NoError(t, err)
	for win.Events().Deque.PollEvent() != nil {
	}

	win.RequestPaint()
	ev := win.Events().Deque.PollEvent()
	require.NotNil(t, ev)
	assert.Equal(t, events.WindowPaint, ev.Type())
	assert.Nil(t, win.Events().Deque.PollEvent())
}

func TestQuitCleanFuncs(t *testing.T) {
	Init()
	called := false
	system.TheApp.AddQuitCleanFunc(func() { called = true })
	win, err := system.TheApp.NewWindow(nil)
	require.NoError(t, err)

	system.TheApp.Quit()
	assert.True(t, called)
	assert.True(t, win.IsClosed())
	assert.True(t, system.TheApp.IsQuitting())
}

func TestRunOnMainBeforeLoop(t *testing.T) {
	Init()
	ran := make(chan struct{})
	go func() {
		system.TheApp.RunOnMain(func() { close(ran) })
	}()

	// queued, not run inline on the calling goroutine
	select {
	case <-ran:
		t.Fatal("function ran before the main loop started")
	case <-time.After(10 * time.Millisecond):
	}

	go system.TheApp.MainLoop()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("function did not run once the main loop started")
	}
	TheApp.StopMain()
}

func TestWindowSizeConcurrent(t *testing.T) {
	Init()
	_, err := system.TheApp.NewWindow(nil)
	require.NoError(t, err)
	win := TheApp.Win

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			win.SetSize(image.Pt(i, i))
		}
	}()
	for i := 0; i < 1000; i++ {
		_ = win.Size()
	}
	wg.Wait()
	assert.Equal(t, image.Pt(999, 999), win.Size())
}
