// world.go - decoded world-attribute descriptor (spec.md §3 "World attribute")
//
// License: GPLv3 or later

package vip

// WorldMode is the tagged rendering mode a world descriptor selects,
// decoded once at world-attribute read time rather than tested
// repeatedly inside the rasterizer's hot loop.
type WorldMode int

const (
	ModeNormal WorldMode = iota
	ModeHBias
	ModeAffine
	ModeObject
)

// World is the decoded form of one 16-word world-attribute entry.
type World struct {
	LON, RON bool
	Mode     WorldMode
	End      bool

	SCX, SCY  int // map-array width/height multipliers, in segments
	OVR       bool
	BGMapBase int

	GX, GP, GY int16 // eye-offset screen coordinates and parallax
	MX, MP, MY int16 // source offsets and parallax
	W, H       int   // size in pixels minus one

	ParamBase uint32 // offset within BGMap memory to the per-line parameter block
	OvrChar   uint16 // address of the single overflow BGMap entry
}

// decodeWorld reads 16 words via word(i) (0..15) and decodes a World.
// word(0) alone determines End, matching the hardware's END-bit
// short-circuit: a world walk must be able to stop after reading just
// the first word without touching the rest of the descriptor.
func decodeWorld(word func(i int) uint16) World {
	w0 := word(0)
	end := w0&0x0040 != 0
	if end {
		return World{End: true}
	}

	lon := w0&0x8000 != 0
	ron := w0&0x4000 != 0
	mode := WorldMode((w0 >> 12) & 3)
	ovr := w0&0x0080 != 0
	scy := 1 << ((w0 >> 2) & 3)
	scx := 1 << (w0 & 3)

	w1 := word(1)
	bgmapBase := int(w1 & 0x0F)

	return World{
		LON: lon, RON: ron, Mode: mode, End: false,
		SCX: scx, SCY: scy, OVR: ovr, BGMapBase: bgmapBase,
		GX: int16(word(2)), GP: int16(word(3)), GY: int16(word(4)),
		MX: int16(word(5)), MP: int16(word(6)), MY: int16(word(7)),
		W: int(word(8)), H: int(word(9)),
		ParamBase: uint32(word(10)),
		OvrChar:   word(12),
	}
}
