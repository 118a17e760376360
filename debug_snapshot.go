// debug_snapshot.go - structured state dumps for host-side debug overlays
//
// License: GPLv3 or later

package vip

// RegisterSnapshot is a read-only copy of the VIP register file for a
// host debug overlay to render; unlike ReadWord it never logs or
// touches INTPND/INTCLR side effects.
type RegisterSnapshot struct {
	INTPND, INTENB   uint16
	DPCTRL           uint16
	XPCTRL           uint16
	BRTA, BRTB, BRTC uint16
	FRMCYC           uint16
	SPT              [4]uint16
	GPLT             [4]Palette
	JPLT             [4]Palette
	BKCOL            uint8
	Pens             [4]uint8
}

// DumpRegisters returns a snapshot of the current register file.
func (c *Chipset) DumpRegisters() RegisterSnapshot {
	r := c.Regs
	return RegisterSnapshot{
		INTPND: r.intpnd, INTENB: r.intenb,
		DPCTRL: r.dpctrl, XPCTRL: r.xpctrl,
		BRTA: r.brta, BRTB: r.brtb, BRTC: r.brtc,
		FRMCYC: r.frmcyc,
		SPT:    r.SPT(),
		GPLT:   r.GPLT(),
		JPLT:   r.JPLT(),
		BKCOL:  r.BackdropColor(),
		Pens:   r.Pens(),
	}
}

// WorldSnapshot is a decoded world-attribute entry for debug display.
type WorldSnapshot struct {
	Index int
	World World
}

// DumpWorlds decodes and returns all 32 world-attribute entries,
// independent of the END short-circuit a real render pass applies —
// useful for a debug overlay that wants to see past a stray END bit.
func (c *Chipset) DumpWorlds() [WorldCount]WorldSnapshot {
	var out [WorldCount]WorldSnapshot
	for i := 0; i < WorldCount; i++ {
		out[i] = WorldSnapshot{Index: i, World: c.BGMap.WorldAttr(i)}
	}
	return out
}
