// Package gui provides the SDL based host adapters: window rendering of the
// framebuffer, keyboard to keypad mapping and tone playback. SDL requires its
// calls to happen on the OS main thread, so all SDL interaction is routed
// through the mainthread package.
package gui

import (
	"fmt"

	"github.com/faiface/mainthread"
	"github.com/veandco/go-sdl2/sdl"
)

// Setup initializes the SDL subsystems used by the adapters.
func Setup() error {
	var err error
	mainthread.Call(func() {
		err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	})
	if err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	return nil
}

// Quit shuts down all SDL subsystems.
func Quit() {
	mainthread.Call(sdl.Quit)
}
