// rasterizer.go - stateless rendering kernels (spec.md §4.4)
//
// License: GPLv3 or later

package vip

import "math"

// transparent is the sentinel sample_bgmap_pixel and the overflow-tile
// cache return for a zero (transparent) 2-bit source pixel.
const transparent = -1

// Palette is a 2-bit-indexed 4-colour lookup table (GPLT[n] or
// JPLT[n]), stored the way VipRegisters keeps it: 8 bits, two bits per
// colour.
type Palette uint8

// Color returns the palette's colour for 2-bit index dat (0..3).
func (p Palette) Color(dat uint8) uint8 {
	return uint8(p>>(2*dat)) & 3
}

// Rasterizer reads CharacterTable and BGMapMemory and writes into a
// caller-supplied Surface; it carries no state of its own between
// calls other than the palette snapshot set by SetPalettes and the
// scratch overflow-tile cache used within a single world's draw.
type Rasterizer struct {
	chars *CharacterTable
	bgmap *BGMapMemory
	gplt  [4]Palette
	jplt  [4]Palette

	overflow    [64]int // cached colours (or transparent), one world's overflow tile
	hasOverflow bool
}

func NewRasterizer(chars *CharacterTable, bgmap *BGMapMemory) *Rasterizer {
	return &Rasterizer{chars: chars, bgmap: bgmap}
}

// SetPalettes snapshots the background and object palettes for the
// render pass about to run (spec.md §5: the renderer reads a snapshot
// taken at render-pass start, never the live registers).
func (r *Rasterizer) SetPalettes(gplt, jplt [4]Palette) {
	r.gplt = gplt
	r.jplt = jplt
}

// sampleBGMapPixel implements spec.md §4.4.1.
func (r *Rasterizer) sampleBGMapPixel(segment int, x, y int) int {
	cx := x >> 3
	cy := y >> 3

	stepx := (cx >> 6) & 3
	stepy := ((cy >> 6) & 3) * (stepx + 1)

	segIndex := segment + stepx + stepy
	entryOffset := uint32((cx&63)+64*(cy&63)) + uint32(BGMapSegmentWords*segIndex)
	entry := r.bgmap.ReadWord(entryOffset)

	palette := r.gplt[(entry>>14)&3]
	tileEntry := entry & 0x3FFF

	row := r.chars.Row(tileEntry, y&7)
	dat := uint8(row>>(2*(x&7))) & 3
	if dat == 0 {
		return transparent
	}
	return int(palette.Color(dat))
}

// fillOverflowTile implements spec.md §4.4.2: precompute the world's
// single overflow tile into the 8x8 scratch buffer.
func (r *Rasterizer) fillOverflowTile(tileEntry uint16, palette Palette) {
	for row := 0; row < 8; row++ {
		line := r.chars.Row(tileEntry, row)
		for x := 0; x < 8; x++ {
			dat := uint8(line>>(2*x)) & 3
			idx := row*8 + x
			if dat == 0 {
				r.overflow[idx] = transparent
			} else {
				r.overflow[idx] = int(palette.Color(dat))
			}
		}
	}
	r.hasOverflow = true
}

func (r *Rasterizer) overflowSample(x, y int) int {
	return r.overflow[(y&7)*8+(x&7)]
}

// BGMapDrawParams carries the world fields draw_bgmap and draw_affine
// need, decoupled from the World type so the hot loop touches a flat
// struct rather than re-deriving fields every iteration.
type BGMapDrawParams struct {
	World   *World
	Segment int
	XMask   int
	YMask   int
	Clip    Rect
	Right   bool // rendering the right eye
}

// DrawNormalOrHBias implements spec.md §4.4.3 for both Normal and
// HBias modes; HBias differs only in the extra per-scanline shift term.
func (r *Rasterizer) DrawNormalOrHBias(surf Surface, p BGMapDrawParams) {
	w := p.World
	gp, mp := int(w.GP), int(w.MP)
	if p.Right {
		gp, mp = -gp, -mp
	}

	for y := 0; y <= w.H; y++ {
		dy := y + int(w.GY)
		sy := y + int(w.MY)

		var hbias int
		if w.Mode == ModeHBias {
			hbias = int(r.bgmap.HBiasShift(w.ParamBase, y, eyeOf(p.Right)))
		}

		for x := 0; x <= w.W; x++ {
			dx := x + int(w.GX) + gp
			if !p.Clip.Contains(dx, dy) {
				continue
			}
			sx := x + int(w.MX) + hbias + mp

			var color int
			if w.OVR && (sx < 0 || sx > p.XMask || sy < 0 || sy > p.YMask) {
				if !r.hasOverflow {
					continue
				}
				color = r.overflowSample(sx, sy)
			} else {
				color = r.sampleBGMapPixel(p.Segment, sx&p.XMask, sy&p.YMask)
			}
			if color != transparent {
				surf.SetPixel(dx, dy, uint8(color))
			}
		}
	}
}

// DrawAffine implements spec.md §4.4.4.
func (r *Rasterizer) DrawAffine(surf Surface, p BGMapDrawParams) {
	w := p.World
	gp := int(w.GP)
	if p.Right {
		gp = -gp
	}

	for y := 0; y <= w.H; y++ {
		params := r.bgmap.AffineRow(w.ParamBase, y)
		hSkew := int(params.HSkew)
		if p.Right {
			hSkew -= int(params.Parallax)
		} else {
			hSkew += int(params.Parallax)
		}
		vSkew := float64(params.VSkew)
		hScale := float64(params.HScale) / 512.0
		vScale := float64(params.VScale) / 512.0

		dy := y + int(w.GY)

		for x := 0; x <= w.W; x++ {
			dx := x + int(w.GX) + gp
			if !p.Clip.Contains(dx, dy) {
				continue
			}

			sx := int(math.Floor(float64(hSkew) + hScale*float64(x)))
			sy := int(math.Floor(vSkew + vScale*float64(x)))

			var color int
			if w.OVR && (sx < 0 || sx > p.XMask || sy < 0 || sy > p.YMask) {
				if !r.hasOverflow {
					continue
				}
				color = r.overflowSample(sx, sy)
			} else {
				color = r.sampleBGMapPixel(p.Segment, sx&p.XMask, sy&p.YMask)
			}
			if color != transparent {
				surf.SetPixel(dx, dy, uint8(color))
			}
		}
	}
}

// PutObject implements spec.md §4.4.5: one 8x8 object at (x, y).
func (r *Rasterizer) PutObject(surf Surface, clip Rect, x, y int, tileEntry uint16, palette Palette) {
	for yi := 0; yi < 8; yi++ {
		row := r.chars.Row(tileEntry, yi)
		for xi := 0; xi < 8; xi++ {
			dat := uint8(row>>(2*xi)) & 3
			if dat == 0 {
				continue
			}
			px, py := x+xi, y+yi
			if clip.Contains(px, py) {
				surf.SetPixel(px, py, palette.Color(dat))
			}
		}
	}
}

func eyeOf(right bool) Eye {
	if right {
		return RightEye
	}
	return LeftEye
}
