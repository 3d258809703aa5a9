// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"slices"

	"github.com/gpuwin/shell/events"
	"github.com/gpuwin/shell/system"
)

// AppSingle contains the data and logic common to all implementations
// of [system.App] for this single-window shell. An AppSingle is
// associated with a corresponding type of [system.Drawer] and
// [system.Window]. The [system.Window] type should embed
// [WindowSingle].
type AppSingle[D system.Drawer, W system.Window] struct {
	App

	// Event is the event source for the app's single window.
	Event events.Source

	// Draw is the single [system.Drawer] used for the app.
	Draw D

	// Win is the single [system.Window] associated with the app.
	Win W
}

// AppSingler describes the common functionality implemented by
// [AppSingle] apps that [WindowSingle] windows need to access.
type AppSingler interface {
	system.App

	// Events returns the single [events.Source] associated with
	// this app.
	Events() *events.Source

	// Drawer returns the single [system.Drawer] associated with
	// this app.
	Drawer() system.Drawer
}

// NewAppSingle makes a new [AppSingle].
func NewAppSingle[D system.Drawer, W system.Window]() AppSingle[D, W] {
	return AppSingle[D, W]{
		App: NewApp(),
	}
}

func (a *AppSingle[D, W]) Events() *events.Source {
	return &a.Event
}

func (a *AppSingle[D, W]) Drawer() system.Drawer {
	return a.Draw
}

func (a *AppSingle[D, W]) QuitClean() bool {
	a.Quitting = true
	a.Mu.Lock()
	qcf := slices.Clone(a.QuitCleanFuncs)
	a.Mu.Unlock()
	// run outside the lock: a quit-clean func may touch app state
	for _, qf := range qcf {
		qf()
	}
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if system.Window(a.Win) != nil {
		a.Win.Close()
		return a.Win.IsClosed()
	}
	return true
}
