package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble returns the assembly form of a single instruction word, used
// for execution tracing. Words matching no instruction pattern are returned
// as raw data.
func Disassemble(opcode uint16) string {
	ins, ok := lookupInstruction(opcode)
	if !ok {
		return fmt.Sprintf(".word $%04X", opcode)
	}

	if params := formatParams(ins.Name, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// lookupInstruction matches an instruction word against the CHIP-8 opcode
// tables, indexed by the first nibble.
func lookupInstruction(opcode uint16) (*chip8.Instruction, bool) {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			if op.Instruction == nil {
				return nil, false
			}
			return op.Instruction, true
		}
	}
	return nil, false
}

// formatParams formats the parameters of an instruction.
// Returns an empty string for instructions without parameters.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8.ClsName, chip8.RetName:
		return ""
	case chip8.JpName:
		return formatJumpParams(opcode)
	case chip8.CallName:
		return fmt.Sprintf("$%03X", opcode&addressMask)
	case chip8.SeName, chip8.SneName:
		return formatCompareParams(opcode)
	case chip8.LdName:
		return formatLoadParams(opcode)
	case chip8.AddName:
		return formatAddParams(opcode)
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.ShrName, chip8.ShlName:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	case chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", registerX(opcode))
	}
	return ""
}

// formatJumpParams formats jump parameters (JP addr, JP V0+addr).
func formatJumpParams(opcode uint16) string {
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", opcode&addressMask)
	}
	return fmt.Sprintf("$%03X", opcode&addressMask)
}

// formatCompareParams formats comparison parameters (SE/SNE with byte or register).
func formatCompareParams(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

// formatLoadParams formats the parameters of the many LD instruction forms.
func formatLoadParams(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&addressMask)
	case 0xF000:
		return formatTimerLoadParams(opcode, x)
	}
	return ""
}

// formatTimerLoadParams formats the 0xF family LD forms (timers, key wait,
// font lookup, BCD and register ranges).
func formatTimerLoadParams(opcode uint16, x uint8) string {
	switch opcode & 0x00FF {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAddParams formats add parameters (ADD Vx/byte, Vx/Vy, I/Vx).
func formatAddParams(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}
