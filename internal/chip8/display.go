package chip8

// Screen dimensions of the monochrome CHIP-8 display.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Framebuffer is the 64×32 monochrome display, one byte per pixel with
// value 0 or 1. Pixels are addressed as [y][x].
type Framebuffer [ScreenHeight][ScreenWidth]uint8

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	*f = Framebuffer{}
}

// Pixel returns the pixel state at the given coordinates.
func (f *Framebuffer) Pixel(x, y int) uint8 {
	return f[y][x]
}

// DrawSprite XOR-composites a sprite onto the framebuffer at the given
// coordinates. Each sprite byte is one row of 8 pixels, bit 7 leftmost.
// Rows wrap around the vertical axis and columns around the horizontal
// axis independently. It reports whether any pixel was turned off by
// the draw (collision).
func (f *Framebuffer) DrawSprite(x, y uint8, sprite []byte) bool {
	collision := false

	for row, line := range sprite {
		py := (int(y) + row) % ScreenHeight

		for col := range 8 {
			if line&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % ScreenWidth

			if f[py][px] == 1 {
				collision = true
			}
			f[py][px] ^= 1
		}
	}
	return collision
}
