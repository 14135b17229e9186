package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Emulator
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.Emulator{CPUSpeed: options.DefaultCPUSpeed},
		},
		{
			name: "speed flag",
			args: []string{"prog", "-speed", "1000", "test.ch8"},
			want: options.Emulator{CPUSpeed: 1000},
		},
		{
			name: "trace flag",
			args: []string{"prog", "-trace", "test.ch8"},
			want: options.Emulator{CPUSpeed: options.DefaultCPUSpeed, TraceExecution: true},
		},
		{
			name: "shift quirk flag",
			args: []string{"prog", "-shift-x", "test.ch8"},
			want: options.Emulator{CPUSpeed: options.DefaultCPUSpeed, ShiftSourceX: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			opts, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, "test.ch8", opts.Input)
			assert.Equal(t, tt.want.CPUSpeed, got.CPUSpeed)
			assert.Equal(t, tt.want.TraceExecution, got.TraceExecution)
			assert.Equal(t, tt.want.ShiftSourceX, got.ShiftSourceX)
		})
	}
}

func TestParseFlagsMissingInput(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog"}

	_, _, err := ParseFlags()
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs([]string{"test.ch8"}))

	err := validateArgs([]string{"test.ch8", "-trace"})
	assert.Error(t, err)
}
