// anaglyph.go - red/cyan anaglyph compositor for single-screen hosts
//
// License: GPLv3 or later

package vipebiten

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Anaglyph combines a left-eye and a right-eye Display into one
// red/cyan stereo image, for hosts with a single ordinary monitor
// instead of the console's own dual-panel viewer. The two eye buffers
// are resampled independently to the requested output size before the
// channels are merged, so callers can up- or down-scale freely.
type Anaglyph struct {
	scaler draw.Scaler
	out    *image.RGBA
	w, h   int
}

// NewAnaglyph creates a compositor that produces w x h output frames.
func NewAnaglyph(w, h int) *Anaglyph {
	return &Anaglyph{
		scaler: draw.CatmullRom,
		out:    image.NewRGBA(image.Rect(0, 0, w, h)),
		w:      w, h: h,
	}
}

// Composite scales left and right (each ScreenWidth x ScreenHeight RGBA
// buffers as returned by Display.RGBA) to the output size and merges
// them into a red/cyan anaglyph: left eye contributes the red channel,
// right eye contributes green and blue.
func (a *Anaglyph) Composite(left, right []byte) *image.RGBA {
	leftImg := &image.RGBA{Pix: left, Stride: ScreenWidth * 4, Rect: image.Rect(0, 0, ScreenWidth, ScreenHeight)}
	rightImg := &image.RGBA{Pix: right, Stride: ScreenWidth * 4, Rect: image.Rect(0, 0, ScreenWidth, ScreenHeight)}

	leftScaled := image.NewRGBA(image.Rect(0, 0, a.w, a.h))
	rightScaled := image.NewRGBA(image.Rect(0, 0, a.w, a.h))
	a.scaler.Scale(leftScaled, leftScaled.Bounds(), leftImg, leftImg.Bounds(), draw.Over, nil)
	a.scaler.Scale(rightScaled, rightScaled.Bounds(), rightImg, rightImg.Bounds(), draw.Over, nil)

	for y := 0; y < a.h; y++ {
		for x := 0; x < a.w; x++ {
			lr, _, _, _ := leftScaled.At(x, y).RGBA()
			_, rg, rb, _ := rightScaled.At(x, y).RGBA()
			a.out.SetRGBA(x, y, color.RGBA{
				R: uint8(lr >> 8),
				G: uint8(rg >> 8),
				B: uint8(rb >> 8),
				A: 255,
			})
		}
	}
	return a.out
}
