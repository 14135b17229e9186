// Package chip8 implements the CHIP-8 virtual machine.
// CHIP-8 is an interpreted programming language from the 1970s designed for simple games.
// This package emulates the machine state and the fetch-decode-execute cycle;
// display output, keyboard input and audio playback are provided by the caller.
package chip8

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer (64×32 pixels) and stack are maintained
// separately from the 4KB main memory address space.
const (
	// MemorySize is the total amount of addressable memory (4KB).
	MemorySize = 0x1000

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// MaxProgramSize is the number of bytes available for user programs.
	MaxProgramSize = MemorySize - ProgramStart

	// StackDepth is the number of nested subroutine calls the machine supports.
	StackDepth = 16

	registerCount = 16
	addressMask   = 0x0FFF
)

// Machine errors.
var (
	ErrProgramTooLarge   = errors.New("program exceeds available program space")
	ErrStackOverflow     = errors.New("call stack overflow")
	ErrStackUnderflow    = errors.New("call stack underflow")
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
)

// Keypad provides access to the host keyboard state, mapped to the 16-key
// CHIP-8 keypad. Implementations are polled synchronously from Step and
// must return promptly.
type Keypad interface {
	// IsKeyDown reports whether the given hex key (0x0-0xF) is currently held.
	IsKeyDown(key uint8) bool

	// KeyPressed returns a currently pressed key, if any.
	KeyPressed() (uint8, bool)
}

// RandomFunc returns a random number in the inclusive range [min, max].
type RandomFunc func(min, max int) int

// executionState describes what the next Step call will do.
type executionState uint8

const (
	stateRunning executionState = iota
	stateWaitingForKey
)

// Options configures a new machine.
type Options struct {
	// Keypad provides keyboard input for the skip-on-key and wait-for-key
	// instructions. If nil, no key is ever reported as pressed.
	Keypad Keypad

	// Random provides the random byte source for the RND instruction.
	// If nil, math/rand is used.
	Random RandomFunc

	// Logger enables execution tracing when TraceExecution is set.
	Logger *log.Logger

	// TraceExecution logs every executed instruction in disassembled form.
	TraceExecution bool

	// ShiftSourceX switches the SHR/SHL instructions (8xy6/8xyE) to operate
	// on VX instead of VY. Historical interpreters disagree on the shift
	// source register; the default is the original VY behavior, but some
	// ROMs require the VX variant.
	ShiftSourceX bool
}

// Machine is the CHIP-8 virtual machine state. It is exclusively owned by
// the caller driving the emulation and must not be shared between goroutines.
type Machine struct {
	memory [MemorySize]byte
	v      [registerCount]uint8
	i      uint16
	pc     uint16
	sp     uint8
	stack  [StackDepth]uint16

	delayTimer uint8
	soundTimer uint8

	framebuffer Framebuffer
	waveform    []int16

	state    executionState
	waitDest uint8 // destination register of a pending wait-for-key

	keypad       Keypad
	random       RandomFunc
	logger       *log.Logger
	trace        bool
	shiftSourceX bool
}

// nullKeypad reports no keys, used when no keypad is injected.
type nullKeypad struct{}

func (nullKeypad) IsKeyDown(uint8) bool      { return false }
func (nullKeypad) KeyPressed() (uint8, bool) { return 0, false }

// New returns a machine in its power-on state: all registers, timers and the
// stack zeroed, the font table loaded at address 0x000, the program counter
// at the program start address and the tone waveform precomputed.
func New(opts Options) *Machine {
	m := &Machine{
		pc:           ProgramStart,
		waveform:     generateWaveform(),
		keypad:       opts.Keypad,
		random:       opts.Random,
		logger:       opts.Logger,
		trace:        opts.TraceExecution,
		shiftSourceX: opts.ShiftSourceX,
	}
	copy(m.memory[:], fontTable[:])

	if m.keypad == nil {
		m.keypad = nullKeypad{}
	}
	if m.random == nil {
		m.random = func(min, max int) int {
			return min + rand.Intn(max-min+1)
		}
	}
	return m
}

// LoadProgram copies a raw CHIP-8 byte stream into memory at the program
// start address. Programs larger than the available program space are
// rejected instead of truncated.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, %d available", ErrProgramTooLarge,
			len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// Framebuffer returns the display contents. The framebuffer is owned by the
// machine and mutated only by the clear-screen and draw instructions; callers
// must treat it as read-only.
func (m *Machine) Framebuffer() *Framebuffer {
	return &m.framebuffer
}

// Waveform returns the precomputed tone buffer to play while the sound timer
// is running. The buffer is immutable after initialization.
func (m *Machine) Waveform() []int16 {
	return m.waveform
}

// WaitingForKey reports whether the machine is suspended in the wait-for-key
// state. While waiting, Step only polls the keypad.
func (m *Machine) WaitingForKey() bool {
	return m.state == stateWaitingForKey
}
