package gui

import (
	"fmt"
	"image/color"

	"github.com/faiface/mainthread"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

// defaultPalette holds the off and on pixel colors, a greenish monochrome
// scheme. Alpha is always 0xFF since transparency is not used.
var defaultPalette = [2]color.RGBA{
	{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}, // off
	{R: 0xE0, G: 0xF0, B: 0xE7, A: 0xFF}, // on
}

// Display renders the machine framebuffer into a streaming texture that is
// stretched to the window size.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// texture buffer for the current frame, 4 bytes per pixel as per RGBA32
	buffer  []byte
	palette [2]color.RGBA
}

// NewDisplay creates a window sized to the CHIP-8 screen dimensions times
// the given scale factor.
func NewDisplay(scale int) (*Display, error) {
	if scale < 1 {
		scale = 1
	}

	d := &Display{
		buffer:  make([]byte, chip8.ScreenWidth*chip8.ScreenHeight*4),
		palette: defaultPalette,
	}

	var err error
	mainthread.Call(func() {
		err = d.createResources(scale)
	})
	if err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// createResources creates the SDL window, renderer and texture.
// Must be called on the main thread.
func (d *Display) createResources(scale int) error {
	window, err := sdl.CreateWindow("chip8emu",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(chip8.ScreenWidth*scale), int32(chip8.ScreenHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	d.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	d.renderer = renderer

	// the texture has the exact logical screen size, the renderer stretches
	// it to the window size
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32),
		sdl.TEXTUREACCESS_STREAMING, chip8.ScreenWidth, chip8.ScreenHeight)
	if err != nil {
		return fmt.Errorf("creating texture: %w", err)
	}
	d.texture = texture
	return nil
}

// Render presents the framebuffer contents in the window.
func (d *Display) Render(framebuffer *chip8.Framebuffer) error {
	offset := 0
	for y := range chip8.ScreenHeight {
		for x := range chip8.ScreenWidth {
			pixel := d.palette[framebuffer.Pixel(x, y)]
			d.buffer[offset+0] = pixel.R
			d.buffer[offset+1] = pixel.G
			d.buffer[offset+2] = pixel.B
			d.buffer[offset+3] = pixel.A
			offset += 4
		}
	}

	var err error
	mainthread.Call(func() {
		err = d.present()
	})
	if err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	return nil
}

// present uploads the texture buffer and displays it.
// Must be called on the main thread.
func (d *Display) present() error {
	if err := d.texture.Update(nil, d.buffer, chip8.ScreenWidth*4); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	d.renderer.Present()
	return nil
}

// Close frees all SDL resources of the display.
func (d *Display) Close() {
	mainthread.Call(func() {
		if d.texture != nil {
			_ = d.texture.Destroy()
		}
		if d.renderer != nil {
			_ = d.renderer.Destroy()
		}
		if d.window != nil {
			_ = d.window.Destroy()
		}
	})
}
