package chip8

// The delay and sound timers count down at a fixed cadence imposed by the
// external driver, conventionally 60 Hz, decoupled from the instruction
// rate. The machine owns no clock of its own.

// DecreaseDelayTimer decrements the delay timer by one, saturating at zero.
func (m *Machine) DecreaseDelayTimer() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
}

// DecreaseSoundTimer decrements the sound timer by one, saturating at zero.
func (m *Machine) DecreaseSoundTimer() {
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delayTimer
}

// SoundTimer returns the current sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.soundTimer
}

// SoundActive reports whether the tone should currently be audible.
func (m *Machine) SoundActive() bool {
	return m.soundTimer > 0
}
