// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the platform interface for windows and
// the event loop, with drivers for desktop (glfw), web (wasm), and
// offscreen (testing, headless) platforms.
package system

// TheApp is the current [App]; only one is ever in effect.
// It is set by the platform driver's Init function.
var TheApp App

// App represents the overall platform and creates the window
// appropriate for it. Exactly one window is supported.
type App interface {

	// Platform returns the platform type, which can be used
	// for conditionalizing behavior.
	Platform() Platforms

	// Name is the overall name of the application.
	Name() string

	// SetName sets the application name.
	SetName(name string)

	// NewWindow returns the [Window] for this app. A nil opts is
	// valid and means to use the default option values. On platforms
	// with an asynchronously created system window, the returned
	// window exists but its surface may not; see
	// [OnSystemWindowCreated].
	NewWindow(opts *NewWindowOptions) (Window, error)

	// MainLoop runs the main loop of the app. It must be called
	// on the main thread, and it blocks until [App.Quit].
	MainLoop()

	// RunOnMain runs the given function on the main thread
	// (where [App.MainLoop] is running), waiting for it to
	// complete. Platform window and GPU calls must happen there.
	RunOnMain(f func())

	// SendEmptyEvent sends an empty, blank event to the main loop,
	// which has the effect of pushing the system along during cases
	// when the loop needs to be "pinged" to get things moving.
	SendEmptyEvent()

	// SetQuitReqFunc sets the function that is called whenever
	// there is a request to quit the app.
	SetQuitReqFunc(fun func())

	// AddQuitCleanFunc adds the given function to a list that is
	// called when the app is about to quit, for any necessary
	// last-minute cleanup.
	AddQuitCleanFunc(fun func())

	// QuitReq is a quit request, triggered either by the OS or by
	// a user call. It calls the function registered with
	// SetQuitReqFunc if there is one, which is then responsible for
	// actually calling Quit; otherwise it calls Quit directly.
	QuitReq()

	// IsQuitting returns true when the app is actually quitting.
	IsQuitting() bool

	// QuitClean closes the window and calls the quit-clean
	// functions. It returns false if the app should not quit.
	QuitClean() bool

	// Quit cleans up and exits the main loop.
	Quit()
}

// OnSystemWindowCreated is a channel used to communicate that the
// underlying system window has been created on platforms where that
// happens asynchronously (web). If it is nil, the system window
// either exists already or is created synchronously. If it is
// non-nil, no actions with the window surface should be taken until
// the channel is closed.
var OnSystemWindowCreated chan struct{}

// Platforms are all the supported platforms.
type Platforms int32

const (
	// MacOS is a Mac OS machine (aka Darwin).
	MacOS Platforms = iota

	// Linux is a Linux OS machine.
	Linux

	// Windows is a Microsoft Windows machine.
	Windows

	// Web is a web browser running the app through WASM.
	Web

	// Offscreen is an offscreen driver used for testing
	// and headless (-nogui) operation.
	Offscreen

	// PlatformsN is the number of defined platforms.
	PlatformsN
)

var platformNames = [PlatformsN]string{"MacOS", "Linux", "Windows", "Web", "Offscreen"}

func (p Platforms) String() string {
	if p < 0 || p >= PlatformsN {
		return "Platforms(invalid)"
	}
	return platformNames[p]
}

// IsAsync returns whether the platform creates its system window
// asynchronously, requiring deferred (non-blocking) initialization
// of anything that needs the window surface.
func (p Platforms) IsAsync() bool {
	return p == Web
}
