// vip_test_helpers_test.go - shared fakes for the vip package test suite
//
// License: GPLv3 or later

package vip

type fakeCPU struct {
	lines map[InterruptLine]bool
	pc    uint32
}

func newFakeCPU() *fakeCPU {
	return &fakeCPU{lines: make(map[InterruptLine]bool)}
}

func (f *fakeCPU) SetInterruptLine(line InterruptLine, asserted bool) {
	f.lines[line] = asserted
}

func (f *fakeCPU) CyclesNow() uint64 { return 0 }
func (f *fakeCPU) PC() uint32        { return f.pc }

type fakeSurface struct {
	pixels map[[2]int]uint8
	fills  int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{pixels: make(map[[2]int]uint8)}
}

func (s *fakeSurface) SetPixel(x, y int, paletteIndex uint8) {
	s.pixels[[2]int{x, y}] = paletteIndex
}

func (s *fakeSurface) Fill(paletteIndex uint8, clip Rect) {
	s.fills++
}

func (s *fakeSurface) at(x, y int) (uint8, bool) {
	v, ok := s.pixels[[2]int{x, y}]
	return v, ok
}

type fakeInput struct{ keys uint16 }

func (f fakeInput) ReadKeypad() uint16 { return f.keys }
