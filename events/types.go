// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the event types delivered by the platform
// drivers and the queue that carries them to the application on a
// single sequential dispatch stream.
package events

// Types determines the type of event, which combines the source of
// the event and its action (e.g., KeyDown and KeyUp are separate
// types). Custom events carry arbitrary user data and are used to
// inject results from background tasks into the dispatch stream.
type Types int64

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// Window reports window lifecycle changes: show, close,
	// focus changes. See [WinActions] for the specific action.
	Window

	// WindowResize happens when the window has been resized,
	// which can happen continuously during a user resizing episode.
	WindowResize

	// WindowPaint is sent when a redraw of the window has been
	// requested, at most once per outstanding request.
	WindowPaint

	// Custom is a user-defined event with arbitrary Data,
	// delivered on the same stream as window events.
	Custom

	// TypesN is the number of defined event types.
	TypesN
)

var typeNames = [TypesN]string{"UnknownType", "KeyDown", "KeyUp",
	"Window", "WindowResize", "WindowPaint", "Custom"}

func (t Types) String() string {
	if t < 0 || t >= TypesN {
		return "Types(invalid)"
	}
	return typeNames[t]
}

// WinActions is the action taken on the window by a [Window] event.
type WinActions int32

const (
	// NoWinAction is the zero value, no action.
	NoWinAction WinActions = iota

	// WinShow is sent exactly once, when the underlying system
	// window or surface first exists and events can be processed.
	// It is the "resume" lifecycle signal.
	WinShow

	// WinClose means the window is being closed; the close
	// request came from the system or the user.
	WinClose

	// WinFocus means the window has received keyboard focus.
	WinFocus

	// WinFocusLost means the window has lost keyboard focus.
	WinFocusLost

	// WinActionsN is the number of defined window actions.
	WinActionsN
)

var winActionNames = [WinActionsN]string{"NoWinAction", "WinShow",
	"WinClose", "WinFocus", "WinFocusLost"}

func (a WinActions) String() string {
	if a < 0 || a >= WinActionsN {
		return "WinActions(invalid)"
	}
	return winActionNames[a]
}
