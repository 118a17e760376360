// scanline_scheduler_test.go
//
// License: GPLv3 or later

package vip

import "testing"

// TestScanlineSchedulerDisplayFlip is spec.md §8 scenario S6: crossing
// scanline 0 with display output enabled raises FRAME_START and
// toggles the display buffer.
func TestScanlineSchedulerDisplayFlip(t *testing.T) {
	cpu := newFakeCPU()
	ic := NewInterruptController(cpu)
	regs := NewVipRegisters(ic)
	regs.intenb = IntFrameStart
	regs.WriteWord(RegDPCTRL, 0x0002)

	s := NewScanlineScheduler(regs)
	if s.DisplayFB() != 0 {
		t.Fatalf("initial displayFB = %d, want 0", s.DisplayFB())
	}

	s.ScanlineTick(0, LeftEye)

	if s.DisplayFB() != 1 {
		t.Errorf("displayFB after frame-start = %d, want 1", s.DisplayFB())
	}
	if regs.intpnd&IntFrameStart == 0 {
		t.Errorf("FRAME_START not raised")
	}
	if !cpu.lines[LineVIP] {
		t.Errorf("VIP line not asserted after FRAME_START with INTENB set")
	}
}

func TestScanlineSchedulerRightEyeNoOp(t *testing.T) {
	cpu := newFakeCPU()
	ic := NewInterruptController(cpu)
	regs := NewVipRegisters(ic)
	regs.WriteWord(RegDPCTRL, 0x0002)
	s := NewScanlineScheduler(regs)

	s.ScanlineTick(0, RightEye)
	if regs.intpnd != 0 {
		t.Fatalf("right-eye tick raised an interrupt: 0x%04X", regs.intpnd)
	}
}

func TestScanlineSchedulerDrawFBSequence(t *testing.T) {
	cpu := newFakeCPU()
	ic := NewInterruptController(cpu)
	regs := NewVipRegisters(ic)
	regs.WriteWord(RegDPCTRL, 0x0002)
	s := NewScanlineScheduler(regs)

	s.ScanlineTick(ActiveScanlines, LeftEye)
	if s.DrawFB() == 0 {
		t.Fatalf("drawFB not set at active-scanline boundary")
	}
	if regs.intpnd&IntXPEnd == 0 {
		t.Errorf("XP_END not raised at scanline %d", ActiveScanlines)
	}

	s.ScanlineTick(232, LeftEye)
	if s.DrawFB() != 0 {
		t.Errorf("drawFB not cleared at scanline 232")
	}
	if regs.intpnd&IntLFBEnd == 0 {
		t.Errorf("LFB_END not raised at scanline 232")
	}

	s.ScanlineTick(240, LeftEye)
	if regs.intpnd&IntRFBEnd == 0 {
		t.Errorf("RFB_END not raised at scanline 240")
	}
}

func TestScanlineSchedulerSBHit(t *testing.T) {
	cpu := newFakeCPU()
	ic := NewInterruptController(cpu)
	regs := NewVipRegisters(ic)
	regs.WriteWord(RegXPCTRL, uint16(5)<<8)
	s := NewScanlineScheduler(regs)

	s.ScanlineTick(5*8, LeftEye)
	if regs.intpnd&IntSBHit == 0 {
		t.Fatalf("SB_HIT not raised at matching row")
	}
}
