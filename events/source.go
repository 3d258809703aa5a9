// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"

	"github.com/gpuwin/shell/events/key"
)

// Source is the source of window events, maintaining the event
// [Deque] that drivers send events to and the application drains.
// Each window has a single Source.
type Source struct {
	// Deque is the event queue.
	Deque Deque

	// LastSize is the size from the most recent WindowResize event.
	LastSize image.Point
}

// Key sends a new [Key] event of the given type.
func (es *Source) Key(typ Types, rn rune, code key.Codes, mods key.Modifiers) {
	es.Deque.Send(NewKey(typ, rn, code, mods))
}

// Window sends a new [Window] event with the given action.
func (es *Source) Window(act WinActions) {
	es.Deque.Send(NewWindow(act))
}

// WindowResize sends a new [WindowResize] event with the given size.
func (es *Source) WindowResize(sz image.Point) {
	es.LastSize = sz
	es.Deque.Send(NewWindowResize(sz))
}

// WindowPaint sends a new [WindowPaint] event.
func (es *Source) WindowPaint() {
	es.Deque.Send(NewWindowPaint())
}

// Custom sends a new [Custom] event with the given data.
// Custom events share the deque with window events, so they are
// delivered on the same sequential dispatch stream.
func (es *Source) Custom(data any) {
	es.Deque.Send(NewCustom(data))
}
