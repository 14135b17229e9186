package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSprite(t *testing.T) {
	var fb Framebuffer

	// 8x2 sprite, top row fully set, bottom row single right pixel
	collision := fb.DrawSprite(4, 2, []byte{0xFF, 0x01})

	assert.False(t, collision)
	for col := range 8 {
		assert.Equal(t, uint8(1), fb.Pixel(4+col, 2))
	}
	assert.Equal(t, uint8(1), fb.Pixel(11, 3))
	assert.Equal(t, uint8(0), fb.Pixel(4, 3))
}

func TestDrawSpriteCollision(t *testing.T) {
	var fb Framebuffer

	assert.False(t, fb.DrawSprite(10, 10, []byte{0x80}))
	assert.Equal(t, uint8(1), fb.Pixel(10, 10))

	// drawing the same pixel again XORs it off and reports the collision
	assert.True(t, fb.DrawSprite(10, 10, []byte{0x80}))
	assert.Equal(t, uint8(0), fb.Pixel(10, 10))
}

func TestDrawSpritePartialCollision(t *testing.T) {
	var fb Framebuffer

	fb.DrawSprite(0, 0, []byte{0x80})

	// one overlapping and one fresh pixel still count as a collision
	assert.True(t, fb.DrawSprite(0, 0, []byte{0xC0}))
	assert.Equal(t, uint8(0), fb.Pixel(0, 0))
	assert.Equal(t, uint8(1), fb.Pixel(1, 0))
}

func TestDrawSpriteWrap(t *testing.T) {
	tests := []struct {
		name   string
		x, y   uint8
		sprite []byte
		want   [][2]int // expected set pixels as (x, y)
	}{
		{
			name:   "horizontal wrap",
			x:      62,
			y:      0,
			sprite: []byte{0xF0},
			want:   [][2]int{{62, 0}, {63, 0}, {0, 0}, {1, 0}},
		},
		{
			name:   "vertical wrap",
			x:      0,
			y:      31,
			sprite: []byte{0x80, 0x80},
			want:   [][2]int{{0, 31}, {0, 0}},
		},
		{
			// row wrap must use the screen height, not the width: a sprite
			// row at y=40 lands at y=8, not at y=40%64
			name:   "row wrap uses vertical axis",
			x:      0,
			y:      40,
			sprite: []byte{0x80},
			want:   [][2]int{{0, 8}},
		},
		{
			name:   "column wrap uses horizontal axis",
			x:      70,
			y:      0,
			sprite: []byte{0x80},
			want:   [][2]int{{6, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fb Framebuffer
			fb.DrawSprite(tt.x, tt.y, tt.sprite)

			set := map[[2]int]bool{}
			for _, p := range tt.want {
				set[p] = true
			}

			for y := range ScreenHeight {
				for x := range ScreenWidth {
					want := uint8(0)
					if set[[2]int{x, y}] {
						want = 1
					}
					assert.Equal(t, want, fb.Pixel(x, y), "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestFramebufferClear(t *testing.T) {
	var fb Framebuffer
	fb.DrawSprite(0, 0, []byte{0xFF, 0xFF})

	fb.Clear()

	for y := range ScreenHeight {
		for x := range ScreenWidth {
			assert.Equal(t, uint8(0), fb.Pixel(x, y))
		}
	}
}
