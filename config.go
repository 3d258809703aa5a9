// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"image"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gpuwin/shell/base/errors"
)

// Options are the startup options for the app shell.
type Options struct {

	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial window size in pixels.
	// On web the size always tracks the browser window instead.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Canvas is the id of the host canvas element to bind the
	// window to, on platforms with an embedded drawable surface
	// (web).
	Canvas string `toml:"canvas"`
}

// DefaultOptions returns the default [Options].
func DefaultOptions() *Options {
	return &Options{
		Title:  "App",
		Width:  1024,
		Height: 768,
		Canvas: "canvas",
	}
}

// WindowSize returns the configured window size as a point.
func (o *Options) WindowSize() image.Point {
	return image.Pt(o.Width, o.Height)
}

// OpenOptions reads [Options] from the given TOML file, on top of
// the defaults. A missing file is not an error: the defaults are
// returned.
func OpenOptions(filename string) (*Options, error) {
	opts := DefaultOptions()
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return opts, errors.Log(err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(opts); err != nil {
		return opts, errors.Log(err)
	}
	return opts, nil
}
