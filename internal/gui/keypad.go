package gui

import (
	"github.com/faiface/mainthread"
	"github.com/veandco/go-sdl2/sdl"
)

// keyMap maps CHIP-8 keypad codes to host keyboard scancodes. The 16-key
// hex keypad layout
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// is mapped to the conventional 1234/QWER/ASDF/ZXCV block.
var keyMap = [16]sdl.Scancode{
	0x0: sdl.SCANCODE_X,
	0x1: sdl.SCANCODE_1,
	0x2: sdl.SCANCODE_2,
	0x3: sdl.SCANCODE_3,
	0x4: sdl.SCANCODE_Q,
	0x5: sdl.SCANCODE_W,
	0x6: sdl.SCANCODE_E,
	0x7: sdl.SCANCODE_A,
	0x8: sdl.SCANCODE_S,
	0x9: sdl.SCANCODE_D,
	0xA: sdl.SCANCODE_Z,
	0xB: sdl.SCANCODE_C,
	0xC: sdl.SCANCODE_4,
	0xD: sdl.SCANCODE_R,
	0xE: sdl.SCANCODE_F,
	0xF: sdl.SCANCODE_V,
}

// Keypad implements the machine keypad capability on top of the SDL keyboard
// state and doubles as the emulator input adapter pumping the event queue.
type Keypad struct {
	state []uint8
}

// NewKeypad creates a keypad reading the host keyboard state.
func NewKeypad() *Keypad {
	k := &Keypad{}
	mainthread.Call(func() {
		k.state = sdl.GetKeyboardState()
	})
	return k
}

// Poll processes pending SDL events and reports whether the user requested
// to quit, either by closing the window or pressing escape.
func (k *Keypad) Poll() bool {
	quit := false
	mainthread.Call(func() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				quit = true
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					quit = true
				}
			}
		}
	})
	return quit
}

// IsKeyDown reports whether the host key mapped to the given CHIP-8 key
// is currently held.
func (k *Keypad) IsKeyDown(key uint8) bool {
	return k.state[keyMap[key&0x0F]] != 0
}

// KeyPressed returns the first currently pressed keypad key, if any.
func (k *Keypad) KeyPressed() (uint8, bool) {
	for key := uint8(0); key < 16; key++ {
		if k.IsKeyDown(key) {
			return key, true
		}
	}
	return 0, false
}
