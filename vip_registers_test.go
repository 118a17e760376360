// vip_registers_test.go
//
// License: GPLv3 or later

package vip

import "testing"

func newTestRegs() (*VipRegisters, *fakeCPU) {
	cpu := newFakeCPU()
	ic := NewInterruptController(cpu)
	return NewVipRegisters(ic), cpu
}

func TestVipRegistersIntClear(t *testing.T) {
	regs, cpu := newTestRegs()
	regs.intenb = IntFrameStart
	regs.RaiseInterrupt(IntFrameStart)
	if !cpu.lines[LineVIP] {
		t.Fatalf("VIP line not asserted after raise")
	}

	regs.WriteWord(RegINTCLR, IntFrameStart)
	if regs.intpnd&IntFrameStart != 0 {
		t.Errorf("INTCLR did not clear the pending bit")
	}
	if cpu.lines[LineVIP] {
		t.Errorf("VIP line still asserted after clearing the only pending bit")
	}
}

func TestVipRegistersDPCTRLReset(t *testing.T) {
	regs, _ := newTestRegs()
	regs.intpnd = IntSBHit | IntXPEnd | IntTimeErr | IntFrameStart | IntLFBEnd
	regs.WriteWord(RegDPCTRL, 0x0001) // DPRST bit
	want := IntSBHit | IntXPEnd | IntTimeErr
	if regs.intpnd != want {
		t.Fatalf("intpnd after DPRST = 0x%04X, want 0x%04X", regs.intpnd, want)
	}
}

func TestVipRegistersXPCTRLReset(t *testing.T) {
	regs, _ := newTestRegs()
	regs.intpnd = IntSBHit | IntXPEnd | IntTimeErr | IntFrameStart
	regs.WriteWord(RegXPCTRL, 0x0001) // XPRST bit
	want := IntFrameStart
	if regs.intpnd != want {
		t.Fatalf("intpnd after XPRST = 0x%04X, want 0x%04X", regs.intpnd, want)
	}
}

func TestVipRegistersBrightnessPlateaus(t *testing.T) {
	regs, _ := newTestRegs()
	regs.WriteWord(RegBRTA, 0x80)
	regs.WriteWord(RegBRTB, 0x80)
	regs.WriteWord(RegBRTC, 0x80)

	pens := regs.Pens()
	if pens[0] != 0 {
		t.Errorf("pen0 = %d, want 0", pens[0])
	}
	if pens[1] != 255 {
		t.Errorf("pen1 = %d, want 255", pens[1])
	}
	if pens[3] != 255 {
		t.Errorf("pen3 = %d, want 255 (clamped)", pens[3])
	}
}

func TestVipRegistersSPTMasked(t *testing.T) {
	regs, _ := newTestRegs()
	regs.WriteWord(RegSPT2, 0xFFFF)
	if got := regs.SPT()[2]; got != 0x3FF {
		t.Fatalf("SPT2 = 0x%04X, want masked to 0x3FF", got)
	}
}

func TestVipRegistersBKCOLMasked(t *testing.T) {
	regs, _ := newTestRegs()
	regs.WriteWord(RegBKCOL, 0xFF)
	if got := regs.BackdropColor(); got != 3 {
		t.Fatalf("BKCOL = %d, want masked to 3", got)
	}
}

func TestVipRegistersReadOnlyWritesIgnored(t *testing.T) {
	regs, _ := newTestRegs()
	regs.intpnd = 0x4000
	regs.WriteWord(RegINTPND, 0xFFFF)
	if regs.intpnd != 0x4000 {
		t.Fatalf("write to INTPND mutated state: 0x%04X", regs.intpnd)
	}
}

func TestVipRegistersJPLTMasked(t *testing.T) {
	regs, _ := newTestRegs()
	regs.WriteWord(RegJPLT0, 0xFF)
	if got := uint8(regs.JPLT()[0]); got != 0xFC {
		t.Fatalf("JPLT0 = 0x%02X, want masked to 0xFC", got)
	}
}
