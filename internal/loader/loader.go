// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// ErrEmptyROM is returned for ROM files without any content.
var ErrEmptyROM = errors.New("ROM file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw CHIP-8 ROM file. ROMs have no header or metadata, the
// byte stream is loaded verbatim into program memory. Files exceeding the
// machine's program space are rejected here instead of being truncated.
func (l *Loader) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyROM, path)
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, %d available",
			chip8.ErrProgramTooLarge, len(data), chip8.MaxProgramSize)
	}

	return data, nil
}
