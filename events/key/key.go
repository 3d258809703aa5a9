// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes and modifier flags used
// in keyboard events. Codes identify physical keys on the keyboard,
// independent of the layout-dependent character a key press produces.
package key

import "fmt"

// Codes is the identity of a physical key relative to a notional
// "standard" keyboard, following USB HID usage values. A Code is
// layout-independent: the key to the right of Tab is Codeq even when
// an AZERTY layout would type an 'a'.
type Codes uint32

const (
	// CodeUnknown is the zero value, for keys with no known code.
	CodeUnknown Codes = 0

	CodeReturnEnter     Codes = 40
	CodeEscape          Codes = 41
	CodeDeleteBackspace Codes = 42
	CodeTab             Codes = 43
	CodeSpacebar        Codes = 44

	CodeHome     Codes = 74
	CodePageUp   Codes = 75
	CodeDelete   Codes = 76
	CodeEnd      Codes = 77
	CodePageDown Codes = 78

	CodeRightArrow Codes = 79
	CodeLeftArrow  Codes = 80
	CodeDownArrow  Codes = 81
	CodeUpArrow    Codes = 82

	CodeLeftControl  Codes = 224
	CodeLeftShift    Codes = 225
	CodeLeftAlt      Codes = 226
	CodeLeftMeta     Codes = 227
	CodeRightControl Codes = 228
	CodeRightShift   Codes = 229
	CodeRightAlt     Codes = 230
	CodeRightMeta    Codes = 231
)

var codeNames = map[Codes]string{
	CodeUnknown:         "Unknown",
	CodeReturnEnter:     "ReturnEnter",
	CodeEscape:          "Escape",
	CodeDeleteBackspace: "Backspace",
	CodeTab:             "Tab",
	CodeSpacebar:        "Spacebar",
	CodeHome:            "Home",
	CodePageUp:          "PageUp",
	CodeDelete:          "Delete",
	CodeEnd:             "End",
	CodePageDown:        "PageDown",
	CodeRightArrow:      "RightArrow",
	CodeLeftArrow:       "LeftArrow",
	CodeDownArrow:       "DownArrow",
	CodeUpArrow:         "UpArrow",
	CodeLeftControl:     "LeftControl",
	CodeLeftShift:       "LeftShift",
	CodeLeftAlt:         "LeftAlt",
	CodeLeftMeta:        "LeftMeta",
	CodeRightControl:    "RightControl",
	CodeRightShift:      "RightShift",
	CodeRightAlt:        "RightAlt",
	CodeRightMeta:       "RightMeta",
}

func (c Codes) String() string {
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("Code(%d)", uint32(c))
}

// IsModifier returns whether the code is for a modifier key.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftControl && c <= CodeRightMeta
}
