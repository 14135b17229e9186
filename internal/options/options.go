// Package options contains the program options.
package options

// Program options of the emulator, filled from the command line.
type Program struct {
	Input string // ROM file to run

	Speed int // CPU speed in instructions per second
	Scale int // window scale factor

	Trace        bool // log every executed instruction
	ShiftSourceX bool // use the VX shift variant for SHR/SHL

	Debug bool
	Quiet bool
}

// Emulator defines options to control the emulation loop.
type Emulator struct {
	CPUSpeed       int  // instructions per second
	TraceExecution bool // log executed instructions in disassembled form
	ShiftSourceX   bool // shift quirk, see chip8.Options
}

// Default pacing values. The display refresh and timer cadence are fixed
// by the architecture at 60 Hz; the instruction rate is a free parameter
// that most ROMs expect in the several-hundred Hz range.
const (
	DefaultCPUSpeed = 720
	DefaultScale    = 12
)

// NewEmulator returns emulator options derived from the program options.
func NewEmulator(opts Program) Emulator {
	emuOpts := Emulator{
		CPUSpeed:       opts.Speed,
		TraceExecution: opts.Trace,
		ShiftSourceX:   opts.ShiftSourceX,
	}
	if emuOpts.CPUSpeed <= 0 {
		emuOpts.CPUSpeed = DefaultCPUSpeed
	}
	return emuOpts
}
