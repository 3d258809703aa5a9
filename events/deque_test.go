// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpuwin/shell/events/key"
)

func TestDequeFIFO(t *testing.T) {
	d := &Deque{}
	d.Send(NewWindow(WinShow))
	d.Send(NewWindowResize(image.Pt(800, 600)))
	d.Send(NewWindowPaint())

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, Window, d.NextEvent().Type())
	assert.Equal(t, WindowResize, d.NextEvent().Type())
	assert.Equal(t, WindowPaint, d.NextEvent().Type())
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.PollEvent())
}

func TestDequeSendFirst(t *testing.T) {
	d := &Deque{}
	d.Send(NewWindowPaint())
	d.SendFirst(NewWindow(WinClose))

	assert.Equal(t, Window, d.NextEvent().Type())
	assert.Equal(t, WindowPaint, d.NextEvent().Type())
}

func TestDequeBlocking(t *testing.T) {
	d := &Deque{}
	got := make(chan Event)
	go func() {
		got <- d.NextEvent()
	}()

	select {
	case <-got:
		t.Fatal("NextEvent returned with no event sent")
	case <-time.After(10 * time.Millisecond):
	}

	d.Send(NewKey(KeyDown, 0, key.CodeEscape, 0))
	select {
	case ev := <-got:
		require.Equal(t, KeyDown, ev.Type())
		assert.Equal(t, key.CodeEscape, ev.(*Key).Code)
	case <-time.After(time.Second):
		t.Fatal("NextEvent did not return the sent event")
	}
}

func TestDequeClose(t *testing.T) {
	d := &Deque{}
	d.Send(NewWindowPaint())
	d.Close()

	assert.NotNil(t, d.NextEvent())
	assert.Nil(t, d.NextEvent())
}

func TestSourceLastSize(t *testing.T) {
	es := &Source{}
	es.WindowResize(image.Pt(640, 480))
	assert.Equal(t, image.Pt(640, 480), es.LastSize)

	ev := es.Deque.NextEvent()
	require.IsType(t, &WindowEvent{}, ev)
	assert.Equal(t, image.Pt(640, 480), ev.(*WindowEvent).Size)
}
