package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Step executes one machine cycle. While the machine is suspended waiting for
// a keypress, it polls the keypad and resumes once a key is reported; no
// instruction is fetched in that case. Otherwise it fetches the big-endian
// 16-bit instruction at the program counter, advances the counter and
// executes the instruction.
//
// Instruction pacing is owned by the caller: the machine never blocks.
func (m *Machine) Step() error {
	if m.state == stateWaitingForKey {
		if key, ok := m.keypad.KeyPressed(); ok {
			m.v[m.waitDest] = key & 0x0F
			m.state = stateRunning
		}
		return nil
	}

	address := m.pc
	opcode := uint16(m.readMemory(address))<<8 | uint16(m.readMemory(address+1))
	m.pc += 2

	if m.trace && m.logger != nil {
		m.logger.Debug("Executing instruction",
			log.String("address", fmt.Sprintf("0x%04X", address)),
			log.String("instruction", Disassemble(opcode)))
	}

	if err := m.execute(opcode); err != nil {
		return fmt.Errorf("executing opcode 0x%04X at address 0x%04X: %w",
			opcode, address, err)
	}
	return nil
}

// execute dispatches an instruction by its opcode family, selected by the
// high nibble. The 0x8, 0xE and 0xF families use a secondary selector in
// the low nibble or low byte.
func (m *Machine) execute(opcode uint16) error {
	x := registerX(opcode)
	y := registerY(opcode)
	n := uint8(opcode & 0x000F)
	nn := uint8(opcode & 0x00FF)
	nnn := opcode & addressMask

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0: // CLS
			m.framebuffer.Clear()
		case 0x00EE: // RET
			return m.opReturn()
		default:
			// 0nnn machine code routines are not supported
			return ErrUnsupportedOpcode
		}

	case 0x1000: // JP addr
		m.pc = nnn

	case 0x2000: // CALL addr
		return m.opCall(nnn)

	case 0x3000: // SE Vx, byte
		m.skipIf(m.v[x] == nn)

	case 0x4000: // SNE Vx, byte
		m.skipIf(m.v[x] != nn)

	case 0x5000: // SE Vx, Vy
		if n != 0 {
			return ErrUnsupportedOpcode
		}
		m.skipIf(m.v[x] == m.v[y])

	case 0x6000: // LD Vx, byte
		m.v[x] = nn

	case 0x7000: // ADD Vx, byte - no carry flag update
		m.v[x] += nn

	case 0x8000:
		return m.executeALU(opcode, x, y)

	case 0x9000: // SNE Vx, Vy
		if n != 0 {
			return ErrUnsupportedOpcode
		}
		m.skipIf(m.v[x] != m.v[y])

	case 0xA000: // LD I, addr
		m.i = nnn

	case 0xB000: // JP V0, addr
		m.pc = nnn + uint16(m.v[0])

	case 0xC000: // RND Vx, byte
		m.v[x] = uint8(m.random(0, 255)) & nn

	case 0xD000: // DRW Vx, Vy, nibble
		m.opDraw(x, y, n)

	case 0xE000:
		switch nn {
		case 0x9E: // SKP Vx
			m.skipIf(m.keypad.IsKeyDown(m.v[x] & 0x0F))
		case 0xA1: // SKNP Vx
			m.skipIf(!m.keypad.IsKeyDown(m.v[x] & 0x0F))
		default:
			return ErrUnsupportedOpcode
		}

	case 0xF000:
		return m.executeMisc(x, nn)
	}
	return nil
}

// executeALU executes the 0x8 opcode family of register-to-register
// arithmetic, logic and shift operations, selected by the low nibble.
// All of them except the plain load update the VF flag register.
func (m *Machine) executeALU(opcode uint16, x, y uint8) error {
	switch opcode & 0x000F {
	case 0x0: // LD Vx, Vy
		m.v[x] = m.v[y]

	case 0x1: // OR Vx, Vy
		m.v[x] |= m.v[y]

	case 0x2: // AND Vx, Vy
		m.v[x] &= m.v[y]

	case 0x3: // XOR Vx, Vy
		m.v[x] ^= m.v[y]

	case 0x4: // ADD Vx, Vy - VF = carry
		sum := uint16(m.v[x]) + uint16(m.v[y])
		m.v[x] = uint8(sum)
		m.setFlag(sum > 0xFF)

	case 0x5: // SUB Vx, Vy - VF = not borrow
		noBorrow := m.v[x] >= m.v[y]
		m.v[x] -= m.v[y]
		m.setFlag(noBorrow)

	case 0x6: // SHR
		src := m.shiftSource(x, y)
		m.v[0xF] = src & 0x01
		m.v[x] = src >> 1

	case 0x7: // SUBN Vx, Vy - VF = not borrow
		noBorrow := m.v[y] >= m.v[x]
		m.v[x] = m.v[y] - m.v[x]
		m.setFlag(noBorrow)

	case 0xE: // SHL
		src := m.shiftSource(x, y)
		m.v[0xF] = (src & 0x80) >> 7
		m.v[x] = src << 1

	default:
		return ErrUnsupportedOpcode
	}
	return nil
}

// executeMisc executes the 0xF opcode family of timer, input, memory and
// BCD operations, selected by the low byte.
func (m *Machine) executeMisc(x, selector uint8) error {
	switch selector {
	case 0x07: // LD Vx, DT
		m.v[x] = m.delayTimer

	case 0x0A: // LD Vx, K - suspend until a key is pressed
		m.state = stateWaitingForKey
		m.waitDest = x

	case 0x15: // LD DT, Vx
		m.delayTimer = m.v[x]

	case 0x18: // LD ST, Vx
		m.soundTimer = m.v[x]

	case 0x1E: // ADD I, Vx
		m.i += uint16(m.v[x])

	case 0x29: // LD F, Vx - font glyph address
		m.i = uint16(m.v[x]) * fontGlyphSize

	case 0x33: // LD B, Vx - BCD digits at I, I+1, I+2
		value := m.v[x]
		m.writeMemory(m.i, value/100)
		m.writeMemory(m.i+1, value/10%10)
		m.writeMemory(m.i+2, value%10)

	case 0x55: // LD [I], Vx
		for r := uint16(0); r <= uint16(x); r++ {
			m.writeMemory(m.i+r, m.v[r])
		}
		m.i += uint16(x) + 1

	case 0x65: // LD Vx, [I]
		for r := uint16(0); r <= uint16(x); r++ {
			m.v[r] = m.readMemory(m.i + r)
		}
		m.i += uint16(x) + 1

	default:
		return ErrUnsupportedOpcode
	}
	return nil
}

// opCall pushes the current program counter and jumps to the given address.
// The stack pointer indexes the next free slot. The architecture leaves the
// behavior of exceeding the call depth undefined; this implementation faults
// instead of wrapping the stack pointer.
func (m *Machine) opCall(address uint16) error {
	if int(m.sp) >= StackDepth {
		return ErrStackOverflow
	}
	m.stack[m.sp] = m.pc
	m.sp++
	m.pc = address
	return nil
}

// opReturn pops the return address into the program counter. Returning with
// an empty stack faults.
func (m *Machine) opReturn() error {
	if m.sp == 0 {
		return ErrStackUnderflow
	}
	m.sp--
	m.pc = m.stack[m.sp]
	return nil
}

// opDraw reads an n-byte sprite from memory at the index register and
// XOR-composites it at (Vx, Vy), recording any collision in VF.
func (m *Machine) opDraw(x, y, height uint8) {
	sprite := make([]byte, height)
	for row := range sprite {
		sprite[row] = m.readMemory(m.i + uint16(row))
	}

	collision := m.framebuffer.DrawSprite(m.v[x], m.v[y], sprite)
	m.setFlag(collision)
}

// shiftSource returns the register value the shift instructions operate on.
// The original interpreter shifted VY into VX; many later interpreters
// shift VX in place. The machine option ShiftSourceX selects the variant.
func (m *Machine) shiftSource(x, y uint8) uint8 {
	if m.shiftSourceX {
		return m.v[x]
	}
	return m.v[y]
}

// skipIf advances the program counter over the next instruction if the
// condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += 2
	}
}

// setFlag sets the VF carry/borrow/collision flag to 1 or 0.
func (m *Machine) setFlag(condition bool) {
	if condition {
		m.v[0xF] = 1
	} else {
		m.v[0xF] = 0
	}
}

// readMemory reads a byte from memory, wrapping addresses to the 12-bit
// CHIP-8 address space.
func (m *Machine) readMemory(address uint16) byte {
	return m.memory[address&addressMask]
}

// writeMemory writes a byte to memory, wrapping addresses to the 12-bit
// CHIP-8 address space.
func (m *Machine) writeMemory(address uint16, value byte) {
	m.memory[address&addressMask] = value
}

// registerX extracts the X register nibble from an opcode.
func registerX(opcode uint16) uint8 {
	return uint8((opcode & 0x0F00) >> 8)
}

// registerY extracts the Y register nibble from an opcode.
func registerY(opcode uint16) uint8 {
	return uint8((opcode & 0x00F0) >> 4)
}
