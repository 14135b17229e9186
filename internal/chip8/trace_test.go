package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   string
	}{
		{opcode: 0x00E0, want: "cls"},
		{opcode: 0x00EE, want: "ret"},
		{opcode: 0x1ABC, want: "jp $ABC"},
		{opcode: 0x2400, want: "call $400"},
		{opcode: 0x3142, want: "se V1, $42"},
		{opcode: 0x4142, want: "sne V1, $42"},
		{opcode: 0x5120, want: "se V1, V2"},
		{opcode: 0x6A02, want: "ld VA, $02"},
		{opcode: 0x7A0F, want: "add VA, $0F"},
		{opcode: 0x8120, want: "ld V1, V2"},
		{opcode: 0x8121, want: "or V1, V2"},
		{opcode: 0x8122, want: "and V1, V2"},
		{opcode: 0x8123, want: "xor V1, V2"},
		{opcode: 0x8124, want: "add V1, V2"},
		{opcode: 0x8125, want: "sub V1, V2"},
		{opcode: 0x8126, want: "shr V1, V2"},
		{opcode: 0x8127, want: "subn V1, V2"},
		{opcode: 0x812E, want: "shl V1, V2"},
		{opcode: 0x9120, want: "sne V1, V2"},
		{opcode: 0xA123, want: "ld I, $123"},
		{opcode: 0xB123, want: "jp V0, $123"},
		{opcode: 0xC10F, want: "rnd V1, $0F"},
		{opcode: 0xD125, want: "drw V1, V2, $5"},
		{opcode: 0xE19E, want: "skp V1"},
		{opcode: 0xE1A1, want: "sknp V1"},
		{opcode: 0xF107, want: "ld V1, DT"},
		{opcode: 0xF10A, want: "ld V1, K"},
		{opcode: 0xF115, want: "ld DT, V1"},
		{opcode: 0xF118, want: "ld ST, V1"},
		{opcode: 0xF11E, want: "add I, V1"},
		{opcode: 0xF129, want: "ld F, V1"},
		{opcode: 0xF133, want: "ld B, V1"},
		{opcode: 0xF155, want: "ld [I], V1"},
		{opcode: 0xF165, want: "ld V1, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Disassemble(tt.opcode))
		})
	}
}

func TestDisassembleUnknown(t *testing.T) {
	assert.Equal(t, ".word $FFFF", Disassemble(0xFFFF))
}
