// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package web

import (
	"syscall/js"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/events/key"
)

// AddEventListeners adds the DOM event listeners that feed the
// event deque.
func (a *App) AddEventListeners() {
	g := js.Global()
	g.Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, args []js.Value) any {
		a.KeyEvent(events.KeyDown, args[0])
		return nil
	}))
	g.Call("addEventListener", "keyup", js.FuncOf(func(this js.Value, args []js.Value) any {
		a.KeyEvent(events.KeyUp, args[0])
		return nil
	}))
	g.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		a.Resize()
		return nil
	}))
	g.Call("addEventListener", "beforeunload", js.FuncOf(func(this js.Value, args []js.Value) any {
		a.QuitReq()
		return nil
	}))
	g.Call("addEventListener", "focus", js.FuncOf(func(this js.Value, args []js.Value) any {
		a.Event.Window(events.WinFocus)
		return nil
	}))
	g.Call("addEventListener", "blur", js.FuncOf(func(this js.Value, args []js.Value) any {
		a.Event.Window(events.WinFocusLost)
		return nil
	}))
}

// KeyEvent handles a DOM keyboard event, reporting the physical key
// from KeyboardEvent.code.
func (a *App) KeyEvent(typ events.Types, e js.Value) {
	var mods key.Modifiers
	mods.SetFlag(e.Get("shiftKey").Bool(), key.Shift)
	mods.SetFlag(e.Get("ctrlKey").Bool(), key.Control)
	mods.SetFlag(e.Get("altKey").Bool(), key.Alt)
	mods.SetFlag(e.Get("metaKey").Bool(), key.Meta)
	a.Event.Key(typ, 0, DOMKeyCode(e.Get("code").String()), mods)
}

var domKeyCodes = map[string]key.Codes{
	"Enter":        key.CodeReturnEnter,
	"Escape":       key.CodeEscape,
	"Backspace":    key.CodeDeleteBackspace,
	"Tab":          key.CodeTab,
	"Space":        key.CodeSpacebar,
	"Home":         key.CodeHome,
	"PageUp":       key.CodePageUp,
	"Delete":       key.CodeDelete,
	"End":          key.CodeEnd,
	"PageDown":     key.CodePageDown,
	"ArrowRight":   key.CodeRightArrow,
	"ArrowLeft":    key.CodeLeftArrow,
	"ArrowDown":    key.CodeDownArrow,
	"ArrowUp":      key.CodeUpArrow,
	"ControlLeft":  key.CodeLeftControl,
	"ShiftLeft":    key.CodeLeftShift,
	"AltLeft":      key.CodeLeftAlt,
	"MetaLeft":     key.CodeLeftMeta,
	"ControlRight": key.CodeRightControl,
	"ShiftRight":   key.CodeRightShift,
	"AltRight":     key.CodeRightAlt,
	"MetaRight":    key.CodeRightMeta,
}

// DOMKeyCode converts a KeyboardEvent.code string to the physical
// [key.Codes] value.
func DOMKeyCode(code string) key.Codes {
	if c, ok := domKeyCodes[code]; ok {
		return c
	}
	return key.CodeUnknown
}
