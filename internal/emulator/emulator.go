// Package emulator drives a CHIP-8 machine at a fixed real-time cadence.
// The machine itself has no notion of time; all pacing of instructions,
// timers and frames happens here.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// refreshRate is the display and timer cadence in frames per second.
// The architecture convention fixes the timer rate at 60 Hz.
const refreshRate = 60

// Display renders the machine framebuffer to the host.
type Display interface {
	Render(framebuffer *chip8.Framebuffer) error
	Close()
}

// Audio plays the machine tone while the sound timer is running.
type Audio interface {
	SetPlaying(playing bool)
	Close()
}

// Input pumps host events once per frame.
type Input interface {
	// Poll processes pending host events and reports whether the user
	// requested to quit.
	Poll() bool
}

// Emulator connects a machine to its host adapters and runs the main loop.
type Emulator struct {
	machine *chip8.Machine
	display Display
	audio   Audio
	input   Input
	logger  *log.Logger

	instructionsPerFrame int
}

// New creates an emulator for the given machine and host adapters.
func New(machine *chip8.Machine, display Display, audio Audio, input Input,
	logger *log.Logger, opts options.Emulator) *Emulator {

	instructionsPerFrame := opts.CPUSpeed / refreshRate
	if instructionsPerFrame < 1 {
		instructionsPerFrame = 1
	}

	return &Emulator{
		machine:              machine,
		display:              display,
		audio:                audio,
		input:                input,
		logger:               logger,
		instructionsPerFrame: instructionsPerFrame,
	}
}

// Run executes the main emulation loop until the context is cancelled, the
// user quits or the machine faults. Each frame executes the instruction
// budget, decrements both timers once, updates the tone playback state and
// renders the framebuffer.
func (e *Emulator) Run(ctx context.Context) error {
	e.logger.Info("Starting emulation",
		log.Int("instructions_per_frame", e.instructionsPerFrame))

	ticker := time.NewTicker(time.Second / refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if quit := e.input.Poll(); quit {
			e.logger.Info("Quit requested")
			return nil
		}

		if err := e.runFrame(); err != nil {
			return err
		}
	}
}

// runFrame advances the machine by one display frame.
func (e *Emulator) runFrame() error {
	for range e.instructionsPerFrame {
		if err := e.machine.Step(); err != nil {
			return fmt.Errorf("stepping machine: %w", err)
		}
	}

	e.machine.DecreaseDelayTimer()
	e.machine.DecreaseSoundTimer()
	e.audio.SetPlaying(e.machine.SoundActive())

	if err := e.display.Render(e.machine.Framebuffer()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}
