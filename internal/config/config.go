// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Execution tracing
// is logged at debug level, so enabling it raises the log level as well.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug || opts.Trace {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineOptions builds the machine configuration from the emulator options
// and the injected host capabilities.
func MachineOptions(logger *log.Logger, keypad chip8.Keypad, opts options.Emulator) chip8.Options {
	return chip8.Options{
		Keypad:         keypad,
		Logger:         logger,
		TraceExecution: opts.TraceExecution,
		ShiftSourceX:   opts.ShiftSourceX,
	}
}
