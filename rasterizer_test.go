// rasterizer_test.go
//
// License: GPLv3 or later

package vip

import "testing"

// TestRasterizerSampleBGMapPixel is spec.md §8 scenario S4.
func TestRasterizerSampleBGMapPixel(t *testing.T) {
	chars := NewCharacterTable()
	bgmap := NewBGMapMemory()
	r := NewRasterizer(chars, bgmap)
	r.SetPalettes([4]Palette{0, 0x1B, 0, 0}, [4]Palette{})

	chars.WriteWord(0, 0, 0x0003, 3) // tile 0 row 0: pixel 0 = color index 3
	bgmap.WriteWord(0, (1<<14)|0, 3) // segment 0, entry(0,0): palette 1, tile 0

	got := r.sampleBGMapPixel(0, 0, 0)
	want := int(Palette(0x1B).Color(3))
	if got != want {
		t.Fatalf("sampleBGMapPixel = %d, want %d", got, want)
	}
}

func TestRasterizerSampleBGMapPixelTransparent(t *testing.T) {
	chars := NewCharacterTable()
	bgmap := NewBGMapMemory()
	r := NewRasterizer(chars, bgmap)
	r.SetPalettes([4]Palette{0x1B}, [4]Palette{})

	got := r.sampleBGMapPixel(0, 0, 0) // all zero -> transparent
	if got != transparent {
		t.Fatalf("sampleBGMapPixel = %d, want transparent", got)
	}
}

func TestRasterizerPutObject(t *testing.T) {
	chars := NewCharacterTable()
	bgmap := NewBGMapMemory()
	r := NewRasterizer(chars, bgmap)

	chars.WriteWord(0, 0, 0x0001, 3) // pixel 0 = color index 1
	surf := newFakeSurface()
	clip := Rect{0, 0, 384, 224}

	r.PutObject(surf, clip, 10, 20, 0, Palette(0x06)) // color1 -> index 1

	v, ok := surf.at(10, 20)
	if !ok {
		t.Fatalf("pixel (10,20) not written")
	}
	if want := Palette(0x06).Color(1); v != want {
		t.Errorf("pixel value = %d, want %d", v, want)
	}
}

func TestRasterizerPutObjectClipped(t *testing.T) {
	chars := NewCharacterTable()
	bgmap := NewBGMapMemory()
	r := NewRasterizer(chars, bgmap)
	chars.WriteWord(0, 0, 0xFFFF, 3)
	surf := newFakeSurface()

	r.PutObject(surf, Rect{0, 0, 4, 4}, 0, 0, 0, Palette(0xFF))
	if _, ok := surf.at(5, 5); ok {
		t.Fatalf("pixel outside clip rect was written")
	}
}

func TestPaletteColor(t *testing.T) {
	p := Palette(0b11_10_01_00)
	if p.Color(0) != 0 {
		t.Errorf("Color(0) = %d, want 0", p.Color(0))
	}
	if p.Color(1) != 1 {
		t.Errorf("Color(1) = %d, want 1", p.Color(1))
	}
	if p.Color(3) != 3 {
		t.Errorf("Color(3) = %d, want 3", p.Color(3))
	}
}
