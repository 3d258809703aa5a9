// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenOptions(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shell.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
title = "Demo"
width = 640
height = 480
`), 0666))

	opts, err := OpenOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, "Demo", opts.Title)
	assert.Equal(t, image.Pt(640, 480), opts.WindowSize())
	// unset fields keep their defaults
	assert.Equal(t, "canvas", opts.Canvas)
}

func TestOpenOptionsMissingFile(t *testing.T) {
	opts, err := OpenOptions(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestOpenOptionsBadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shell.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`title = `), 0666))

	_, err := OpenOptions(fn)
	assert.Error(t, err)
}
