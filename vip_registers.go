// vip_registers.go - VIP control/status/palette/brightness register file (spec.md §4.6)
//
// License: GPLv3 or later

package vip

// Interrupt kinds, also the bit layout of INTPND/INTENB (spec.md §4.7).
const (
	IntTimeErr    uint16 = 0x8000
	IntXPEnd      uint16 = 0x4000
	IntSBHit      uint16 = 0x2000
	IntFrameStart uint16 = 0x0010
	IntGameStart  uint16 = 0x0008
	IntRFBEnd     uint16 = 0x0004
	IntLFBEnd     uint16 = 0x0002
	IntScanErr    uint16 = 0x0001
)

// VipRegisters is the memory-mapped control/status/palette/brightness
// block. It owns the palette/brightness derived state and defers
// interrupt-line recomputation to an InterruptController.
type VipRegisters struct {
	intenb uint16
	intpnd uint16

	dpctrl     uint16
	xpctrl     uint16
	xpsttsLive uint16 // bits XPSTTS keeps that aren't synthesised from drawfb/rowNum

	brta, brtb, brtc, rest uint16
	frmcyc                 uint16
	cta                    uint16
	ver                    uint16

	spt   [4]uint16
	gplt  [4]Palette
	jplt  [4]Palette
	bkcol uint16

	pens [4]uint8 // pen0..pen3, pen0 always black

	// supplied by the scheduler for DPSTTS/XPSTTS synthesis
	rowNum    int
	displayFB int
	drawFB    int

	interrupts *InterruptController
}

func NewVipRegisters(ic *InterruptController) *VipRegisters {
	r := &VipRegisters{interrupts: ic, ver: 0x0002}
	r.recomputeBrightness()
	return r
}

// --- register offsets within the VIP MMIO block (spec.md §4.10) ---
const (
	RegINTPND = 0x00
	RegINTENB = 0x02
	RegINTCLR = 0x04
	RegDPSTTS = 0x20
	RegDPCTRL = 0x22
	RegBRTA   = 0x24
	RegBRTB   = 0x26
	RegBRTC   = 0x28
	RegREST   = 0x2A
	RegFRMCYC = 0x2E
	RegCTA    = 0x30
	RegXPSTTS = 0x40
	RegXPCTRL = 0x42
	RegVER    = 0x44
	RegSPT0   = 0x60
	RegSPT1   = 0x62
	RegSPT2   = 0x64
	RegSPT3   = 0x66
	RegGPLT0  = 0x68
	RegGPLT1  = 0x6A
	RegGPLT2  = 0x6C
	RegGPLT3  = 0x6E
	RegJPLT0  = 0x70
	RegJPLT1  = 0x72
	RegJPLT2  = 0x74
	RegJPLT3  = 0x76
	RegBKCOL  = 0x78
)

// SetSchedulerState is called by the scheduler every time row_num,
// displayfb or drawfb change, so DPSTTS/XPSTTS reads are always current.
func (r *VipRegisters) SetSchedulerState(rowNum, displayFB, drawFB int) {
	r.rowNum = rowNum
	r.displayFB = displayFB
	r.drawFB = drawFB
}

// RaiseInterrupt ORs kind into INTPND and reevaluates the CPU line;
// called by the scheduler when it detects a raster event.
func (r *VipRegisters) RaiseInterrupt(kind uint16) {
	r.intpnd |= kind
	r.interrupts.Evaluate(r.intenb, r.intpnd)
}

func (r *VipRegisters) Pens() [4]uint8       { return r.pens }
func (r *VipRegisters) GPLT() [4]Palette     { return r.gplt }
func (r *VipRegisters) JPLT() [4]Palette     { return r.jplt }
func (r *VipRegisters) SPT() [4]uint16       { return r.spt }
func (r *VipRegisters) BackdropColor() uint8 { return uint8(r.bkcol) }

// ReadWord implements the computed/plain register reads.
func (r *VipRegisters) ReadWord(offset uint32) uint16 {
	switch offset {
	case RegINTPND:
		return r.intpnd
	case RegINTENB:
		return r.intenb
	case RegDPSTTS:
		return r.dpstts()
	case RegDPCTRL:
		return r.dpctrl
	case RegBRTA:
		return r.brta
	case RegBRTB:
		return r.brtb
	case RegBRTC:
		return r.brtc
	case RegREST:
		return r.rest
	case RegFRMCYC:
		return r.frmcyc
	case RegCTA:
		return r.cta
	case RegXPSTTS:
		return r.xpstts()
	case RegXPCTRL:
		return r.xpctrl
	case RegVER:
		return r.ver
	case RegSPT0, RegSPT1, RegSPT2, RegSPT3:
		return r.spt[(offset-RegSPT0)/2]
	case RegGPLT0, RegGPLT1, RegGPLT2, RegGPLT3:
		return uint16(r.gplt[(offset-RegGPLT0)/2])
	case RegJPLT0, RegJPLT1, RegJPLT2, RegJPLT3:
		return uint16(r.jplt[(offset-RegJPLT0)/2])
	case RegBKCOL:
		return r.bkcol
	default:
		warnf("unknown VIP register read at offset 0x%02X", offset)
		return 0xFFFF
	}
}

func (r *VipRegisters) dpstts() uint16 {
	result := r.dpctrl & 0x0702
	if r.dpctrl&0x0002 != 0 && r.rowNum < 28 {
		if r.displayFB == 0 {
			result |= 0x0C
		} else {
			result |= 0x30
		}
	}
	result |= 0x40
	return result
}

func (r *VipRegisters) xpstts() uint16 {
	result := r.xpsttsLive & 0x00F3
	result |= uint16(r.drawFB) << 2
	if r.rowNum < 28 {
		result |= 0x8000 | uint16(r.rowNum)<<8
	}
	return result
}

// WriteWord implements the strobe-style register writes of spec.md §4.6.
func (r *VipRegisters) WriteWord(offset uint32, data uint16) {
	switch offset {
	case RegINTCLR:
		r.intpnd &^= data
		r.interrupts.Evaluate(r.intenb, r.intpnd)
	case RegINTENB:
		r.intenb = data
		r.interrupts.Evaluate(r.intenb, r.intpnd)
	case RegDPCTRL:
		r.dpctrl = data & 0x0702
		if data&0x0001 != 0 {
			r.intpnd &= (IntSBHit | IntXPEnd | IntTimeErr)
			r.interrupts.Evaluate(r.intenb, r.intpnd)
		}
	case RegXPCTRL:
		r.xpctrl = data & 0x1F02
		if data&0x0001 != 0 {
			r.intpnd &^= (IntSBHit | IntXPEnd | IntTimeErr)
			r.interrupts.Evaluate(r.intenb, r.intpnd)
		}
	case RegBRTA:
		r.brta = data
		r.recomputeBrightness()
	case RegBRTB:
		r.brtb = data
		r.recomputeBrightness()
	case RegBRTC:
		r.brtc = data
		r.recomputeBrightness()
	case RegREST:
		// accepted but not yet applied to palette computation — spec.md §9 Q3
		r.rest = data
	case RegFRMCYC:
		r.frmcyc = data
	case RegCTA:
		r.cta = data
	case RegSPT0, RegSPT1, RegSPT2, RegSPT3:
		r.spt[(offset-RegSPT0)/2] = data & 0x3FF
	case RegGPLT0, RegGPLT1, RegGPLT2, RegGPLT3:
		r.gplt[(offset-RegGPLT0)/2] = Palette(data)
	case RegJPLT0, RegJPLT1, RegJPLT2, RegJPLT3:
		r.jplt[(offset-RegJPLT0)/2] = Palette(data & 0xFC)
	case RegBKCOL:
		r.bkcol = data & 3
	case RegINTPND, RegVER:
		warnf("write to read-only VIP register at offset 0x%02X ignored", offset)
	default:
		warnf("unknown VIP register write at offset 0x%02X", offset)
	}
}

func (r *VipRegisters) recomputeBrightness() {
	r.pens[0] = 0
	r.pens[1] = clampBrightness(0xFF * int(r.brta) / 0x80)
	r.pens[2] = clampBrightness(0xFF * int(r.brta+r.brtb) / 0x80)
	r.pens[3] = clampBrightness(0xFF * int(r.brta+r.brtb+r.brtc) / 0x80)
}

func clampBrightness(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
