// display.go - ebiten-backed vip.Surface and vip.InputDevice adapters
//
// License: GPLv3 or later

package vipebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	vip "github.com/mothlightretro/vipcore"
)

// ScreenWidth and ScreenHeight are the fixed per-eye output dimensions.
const (
	ScreenWidth  = 384
	ScreenHeight = 224
)

// Palette4 maps the four 2-bit colour indices a vip.Surface receives to
// display colours. The default value is four shades of the console's
// monochrome red LED matrix, the closest a host display gets to the
// real hardware's single-colour panel.
var Palette4 = [4]color.RGBA{
	{0, 0, 0, 255},
	{84, 0, 0, 255},
	{170, 0, 0, 255},
	{255, 0, 0, 255},
}

// Display is a vip.Surface backed by an in-memory pixel buffer that is
// blitted into an *ebiten.Image on demand. One Display exists per eye.
type Display struct {
	mu     sync.Mutex
	pixels []byte // RGBA, ScreenWidth*ScreenHeight*4
	image  *ebiten.Image
	dirty  bool
}

// NewDisplay allocates a Display ready to receive SetPixel/Fill calls.
func NewDisplay() *Display {
	return &Display{
		pixels: make([]byte, ScreenWidth*ScreenHeight*4),
	}
}

// SetPixel implements vip.Surface.
func (d *Display) SetPixel(x, y int, paletteIndex uint8) {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return
	}
	d.mu.Lock()
	c := Palette4[paletteIndex&3]
	off := (y*ScreenWidth + x) * 4
	d.pixels[off] = c.R
	d.pixels[off+1] = c.G
	d.pixels[off+2] = c.B
	d.pixels[off+3] = c.A
	d.dirty = true
	d.mu.Unlock()
}

// Fill implements vip.Surface, painting every pixel within clip.
func (d *Display) Fill(paletteIndex uint8, clip vip.Rect) {
	c := Palette4[paletteIndex&3]
	d.mu.Lock()
	for y := clip.Y0; y < clip.Y1 && y < ScreenHeight; y++ {
		if y < 0 {
			continue
		}
		for x := clip.X0; x < clip.X1 && x < ScreenWidth; x++ {
			if x < 0 {
				continue
			}
			off := (y*ScreenWidth + x) * 4
			d.pixels[off] = c.R
			d.pixels[off+1] = c.G
			d.pixels[off+2] = c.B
			d.pixels[off+3] = c.A
		}
	}
	d.dirty = true
	d.mu.Unlock()
}

// Image returns (creating if necessary) the ebiten.Image holding the
// most recently rendered frame, uploading pixel changes lazily.
func (d *Display) Image() *ebiten.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.image == nil {
		d.image = ebiten.NewImage(ScreenWidth, ScreenHeight)
	}
	if d.dirty {
		d.image.WritePixels(d.pixels)
		d.dirty = false
	}
	return d.image
}

// RGBA returns a copy of the raw pixel buffer, for the Anaglyph
// compositor.
func (d *Display) RGBA() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]byte, len(d.pixels))
	copy(out, d.pixels)
	return out
}

// KeypadInput reads the console keypad from ebiten's keyboard state.
// The mapping is arbitrary (there is no physical controller to match
// against) but fixed, so a host's key-binding documentation stays
// accurate across runs.
type KeypadInput struct{}

// Keypad bit assignments, spec.md §4.11's 16-bit KLB/KHB pair.
const (
	KeyLL       uint16 = 1 << 14 // left d-pad left
	KeyLR       uint16 = 1 << 15
	KeyLU       uint16 = 1 << 4
	KeyLD       uint16 = 1 << 6
	KeyRL       uint16 = 1 << 9
	KeyRR       uint16 = 1 << 8
	KeyRU       uint16 = 1 << 11
	KeyRD       uint16 = 1 << 13
	KeyA        uint16 = 1 << 10
	KeyB        uint16 = 1 << 2
	KeyStart    uint16 = 1 << 3
	KeySelect   uint16 = 1 << 5
	KeyLTrigger uint16 = 1 << 1
	KeyRTrigger uint16 = 1 << 0
)

// ReadKeypad implements vip.InputDevice.
func (KeypadInput) ReadKeypad() uint16 {
	var v uint16
	add := func(pressed bool, bit uint16) {
		if pressed {
			v |= bit
		}
	}
	add(ebiten.IsKeyPressed(ebiten.KeyArrowLeft), KeyLL)
	add(ebiten.IsKeyPressed(ebiten.KeyArrowRight), KeyLR)
	add(ebiten.IsKeyPressed(ebiten.KeyArrowUp), KeyLU)
	add(ebiten.IsKeyPressed(ebiten.KeyArrowDown), KeyLD)
	add(ebiten.IsKeyPressed(ebiten.KeyA), KeyLTrigger)
	add(ebiten.IsKeyPressed(ebiten.KeyS), KeyRTrigger)
	add(ebiten.IsKeyPressed(ebiten.KeyZ), KeyA)
	add(ebiten.IsKeyPressed(ebiten.KeyX), KeyB)
	add(ebiten.IsKeyPressed(ebiten.KeyEnter), KeyStart)
	add(ebiten.IsKeyPressed(ebiten.KeyBackspace), KeySelect)
	return v
}
