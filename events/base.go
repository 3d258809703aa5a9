// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
	"time"

	"github.com/gpuwin/shell/events/key"
)

// Event is the interface satisfied by all events.
type Event interface {
	// Type returns the type of the event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	fmt.Stringer
}

// Base is the base type for all events, providing the type and
// timestamp. Specific event types embed it and add their own fields.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// GenTime is when the event was generated.
	GenTime time.Time
}

func (ev *Base) init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.GenTime.Format("04:05"))
}

// Key is a [KeyDown] or [KeyUp] event.
type Key struct {
	Base

	// Rune is the character produced, if any; 0 for non-printing keys.
	Rune rune

	// Code is the layout-independent physical key code.
	Code key.Codes

	// Mods are the modifier keys held down during the event.
	Mods key.Modifiers
}

// NewKey makes a new key event of the given type.
func NewKey(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.init(typ)
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Mods: %v, Time: %v}", ev.Typ, ev.Code, ev.Mods.ModifiersString(), ev.GenTime.Format("04:05"))
}

// WindowEvent is a [Window], [WindowResize], or [WindowPaint] event.
type WindowEvent struct {
	Base

	// Action is the window action, for [Window] events.
	Action WinActions

	// Size is the new window size in pixels, for [WindowResize] events.
	Size image.Point
}

// NewWindow makes a new [Window] event with the given action.
func NewWindow(act WinActions) *WindowEvent {
	ev := &WindowEvent{}
	ev.init(Window)
	ev.Action = act
	return ev
}

// NewWindowResize makes a new [WindowResize] event with the given size.
func NewWindowResize(sz image.Point) *WindowEvent {
	ev := &WindowEvent{}
	ev.init(WindowResize)
	ev.Size = sz
	return ev
}

// NewWindowPaint makes a new [WindowPaint] event.
func NewWindowPaint() *WindowEvent {
	ev := &WindowEvent{}
	ev.init(WindowPaint)
	return ev
}

func (ev *WindowEvent) String() string {
	if ev.Typ == Window {
		return fmt.Sprintf("%v{Action: %v, Time: %v}", ev.Typ, ev.Action, ev.GenTime.Format("04:05"))
	}
	return ev.Base.String()
}

// CustomEvent is a user-specified event that can be sent and received
// as needed, with a Data field for arbitrary data.
type CustomEvent struct {
	Base

	// Data is the arbitrary data carried by the event.
	Data any
}

// NewCustom makes a new [Custom] event with the given data.
func NewCustom(data any) *CustomEvent {
	ev := &CustomEvent{}
	ev.init(Custom)
	ev.Data = data
	return ev
}

func (ev *CustomEvent) String() string {
	return fmt.Sprintf("%v{Data: %v, Time: %v}", ev.Typ, ev.Data, ev.GenTime.Format("04:05"))
}
