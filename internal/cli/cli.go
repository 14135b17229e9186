// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, options.Emulator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Emulator{}, err
	}
	if err := validateOptions(opts); err != nil {
		return opts, options.Emulator{}, err
	}

	opts.Input = args[0]

	return opts, options.NewEmulator(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions validates option value ranges
func validateOptions(opts options.Program) error {
	if opts.Speed < 0 {
		return fmt.Errorf("invalid CPU speed %d, must be positive", opts.Speed)
	}
	if opts.Scale < 0 {
		return fmt.Errorf("invalid window scale %d, must be positive", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Speed, "speed", options.DefaultCPUSpeed, "CPU speed in instructions per second")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor for the 64x32 display")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction in disassembled form")
	flags.BoolVar(&opts.ShiftSourceX, "shift-x", false, "shift VX instead of VY for the SHR/SHL instructions, required by some ROMs")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
