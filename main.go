// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/emulator"
	"github.com/retroenv/chip8emu/internal/gui"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	// SDL requires the OS main thread, run the program logic on a
	// separate goroutine.
	mainthread.Run(run)
}

func run() {
	ctx := app.Context()

	opts, emuOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	printBanner(opts)

	if err := runEmulator(ctx, logger, opts, emuOpts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(opts options.Program) {
	if opts.Quiet {
		return
	}
	fmt.Println("[---------------------------------]")
	fmt.Println("[ chip8emu - CHIP-8 emulator      ]")
	fmt.Printf("[---------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

// runEmulator loads the ROM, wires the machine to the SDL adapters and runs
// the emulation loop until it stops.
func runEmulator(ctx context.Context, logger *log.Logger,
	opts options.Program, emuOpts options.Emulator) error {

	program, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	logger.Debug("ROM loaded",
		log.String("file", opts.Input),
		log.Int("size", len(program)))

	if err := gui.Setup(); err != nil {
		return err
	}
	defer gui.Quit()

	keypad := gui.NewKeypad()
	machine := chip8.New(config.MachineOptions(logger, keypad, emuOpts))
	if err := machine.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	display, err := gui.NewDisplay(opts.Scale)
	if err != nil {
		return fmt.Errorf("creating display: %w", err)
	}
	defer display.Close()

	audio, err := gui.NewAudio(machine.Waveform())
	if err != nil {
		return fmt.Errorf("creating audio output: %w", err)
	}
	defer audio.Close()

	emu := emulator.New(machine, display, audio, keypad, logger, emuOpts)
	return emu.Run(ctx)
}
