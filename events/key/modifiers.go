// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers are the modifier keys held down during an event,
// as a bitflag value.
type Modifiers int64

const (
	Shift Modifiers = iota
	Control
	Alt

	// Meta is the system-dependent meta key: Command on macOS,
	// the Windows key elsewhere.
	Meta
)

// ModifiersN is the number of defined modifiers.
const ModifiersN = Meta + 1

var modifierNames = [ModifiersN]string{"Shift", "Control", "Alt", "Meta"}

// HasFlag returns whether the given modifier flag is set.
func (mo Modifiers) HasFlag(m Modifiers) bool {
	return mo&(1<<uint(m)) != 0
}

// SetFlag sets the given modifier flags to the given state.
func (mo *Modifiers) SetFlag(on bool, m ...Modifiers) {
	for _, f := range m {
		if on {
			*mo |= 1 << uint(f)
		} else {
			*mo &^= 1 << uint(f)
		}
	}
}

// ModifiersString returns the current modifiers as a
// "+"-separated string, e.g., "Control+Alt".
func (mo Modifiers) ModifiersString() string {
	var sb strings.Builder
	for m := Shift; m < ModifiersN; m++ {
		if mo.HasFlag(m) {
			if sb.Len() > 0 {
				sb.WriteString("+")
			}
			sb.WriteString(modifierNames[m])
		}
	}
	return sb.String()
}
