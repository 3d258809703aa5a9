// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import "image"

// Drawer is the [system.Drawer] implementation for the offscreen
// platform, backed by an in-memory image.
type Drawer struct {

	// Image is the image that is a placeholder for the drawable
	// surface of a real platform.
	Image *image.RGBA
}

// Resize makes a new image of the given size.
func (dw *Drawer) Resize(sz image.Point) {
	dw.Image = image.NewRGBA(image.Rectangle{Max: sz})
}

func (dw *Drawer) Surface() any {
	return dw.Image
}

func (dw *Drawer) Release() {
	dw.Image = nil
}
