// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/events/key"
)

// GlfwMods converts glfw modifier flags to [key.Modifiers].
func GlfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mod&glfw.ModShift != 0 {
		m.SetFlag(true, key.Shift)
	}
	if mod&glfw.ModControl != 0 {
		m.SetFlag(true, key.Control)
	}
	if mod&glfw.ModAlt != 0 {
		m.SetFlag(true, key.Alt)
	}
	if mod&glfw.ModSuper != 0 {
		m.SetFlag(true, key.Meta)
	}
	return m
}

// KeyEvent is the glfw key callback, reporting the physical key.
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	w.Events().Key(typ, 0, GlfwKeyCode(ky), GlfwMods(mod))
}

// SizeEvent is the glfw framebuffer size callback.
func (w *Window) SizeEvent(gw *glfw.Window, width, height int) {
	sz := image.Pt(width, height)
	w.SetSize(sz)
	w.Events().WindowResize(sz)
}

// CloseReqEvent is the glfw close callback. The close request goes
// through the app's quit-request path: the registered quit-request
// function decides whether and when the window actually closes.
func (w *Window) CloseReqEvent(gw *glfw.Window) {
	w.App.QuitReq()
}

// RefreshEvent is the glfw refresh callback, sent when the system
// needs the window contents redrawn.
func (w *Window) RefreshEvent(gw *glfw.Window) {
	w.Events().WindowPaint()
}

// GlfwKeyCode converts a glfw key to the physical [key.Codes] value,
// for the codes the shell distinguishes; everything else maps to
// [key.CodeUnknown].
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch kcode {
	case glfw.KeyEnter:
		return key.CodeReturnEnter
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyBackspace:
		return key.CodeDeleteBackspace
	case glfw.KeyTab:
		return key.CodeTab
	case glfw.KeySpace:
		return key.CodeSpacebar
	case glfw.KeyHome:
		return key.CodeHome
	case glfw.KeyPageUp:
		return key.CodePageUp
	case glfw.KeyDelete:
		return key.CodeDelete
	case glfw.KeyEnd:
		return key.CodeEnd
	case glfw.KeyPageDown:
		return key.CodePageDown
	case glfw.KeyRight:
		return key.CodeRightArrow
	case glfw.KeyLeft:
		return key.CodeLeftArrow
	case glfw.KeyDown:
		return key.CodeDownArrow
	case glfw.KeyUp:
		return key.CodeUpArrow
	case glfw.KeyLeftControl:
		return key.CodeLeftControl
	case glfw.KeyLeftShift:
		return key.CodeLeftShift
	case glfw.KeyLeftAlt:
		return key.CodeLeftAlt
	case glfw.KeyLeftSuper:
		return key.CodeLeftMeta
	case glfw.KeyRightControl:
		return key.CodeRightControl
	case glfw.KeyRightShift:
		return key.CodeRightShift
	case glfw.KeyRightAlt:
		return key.CodeRightAlt
	case glfw.KeyRightSuper:
		return key.CodeRightMeta
	default:
		return key.CodeUnknown
	}
}
