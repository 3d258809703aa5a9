// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shell opens the application shell window for the current
// platform and runs it until the window is closed or Escape is
// pressed.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/gpuwin/shell"
	_ "github.com/gpuwin/shell/system/driver"
)

func main() {
	var (
		config = flag.String("config", "shell.toml", "path to the TOML configuration file")
		title  = flag.String("title", "", "window title, overriding the configuration file")
	)
	// consumed by driver selection directly from os.Args, before
	// main runs; declared here so it shows up in -help
	flag.Bool("nogui", false, "run headless with the offscreen driver")
	flag.Parse()

	opts, err := shell.OpenOptions(*config)
	if err != nil {
		slog.Error("invalid configuration", "file", *config, "err", err)
		os.Exit(1)
	}
	if *title != "" {
		opts.Title = *title
	}

	if err := shell.NewApp(opts).Run(context.Background()); err != nil {
		slog.Error("app stopped with error", "err", err)
		os.Exit(1)
	}
}
