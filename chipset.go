// chipset.go - the Chipset aggregate (spec.md §9 "Ad-hoc global state" rearchitecture)
//
// License: GPLv3 or later

package vip

// Chipset owns every piece of VIP state and is the single entry point
// a host embeds. Rendering kernels only ever see an immutable
// CharacterTable/BGMapMemory reference, a mutable output Surface, and
// a palette snapshot — never the control registers directly, so the
// renderer cannot accidentally mutate register state mid-pass.
type Chipset struct {
	Chars *CharacterTable
	BGMap *BGMapMemory
	FB    *Framebuffers

	Regs       *VipRegisters
	Interrupts *InterruptController
	Timer      *HardwareTimer
	Scheduler  *ScanlineScheduler
	IO         *IoRegisters
	Bus        *HostBus

	walker    *WorldWalker
	raster    *Rasterizer
	tickCount uint64
}

// Option configures a Chipset at construction time.
type Option func(*options)

type options struct {
	cart  CartridgeBus
	input InputDevice
}

func WithCartridge(cart CartridgeBus) Option {
	return func(o *options) { o.cart = cart }
}

func WithInputDevice(input InputDevice) Option {
	return func(o *options) { o.input = input }
}

// New wires up a complete Chipset bound to the given host CPU facade.
func New(cpu HostCPU, opts ...Option) *Chipset {
	o := options{cart: NullCartridge{}, input: zeroKeypad{}}
	for _, apply := range opts {
		apply(&o)
	}

	chars := NewCharacterTable()
	bgmap := NewBGMapMemory()
	fb := NewFramebuffers()

	interrupts := NewInterruptController(cpu)
	regs := NewVipRegisters(interrupts)
	timer := NewHardwareTimer(cpu)
	scheduler := NewScanlineScheduler(regs)
	io := NewIoRegisters(timer, o.input)
	bus := NewHostBus(chars, bgmap, fb, regs, io, o.cart)

	raster := NewRasterizer(chars, bgmap)
	walker := NewWorldWalker(bgmap, raster)

	return &Chipset{
		Chars: chars, BGMap: bgmap, FB: fb,
		Regs: regs, Interrupts: interrupts, Timer: timer,
		Scheduler: scheduler, IO: io, Bus: bus,
		walker: walker, raster: raster,
	}
}

type zeroKeypad struct{}

func (zeroKeypad) ReadKeypad() uint16 { return 0 }

// ScanlineTick advances the display timing by one scanline for one eye.
func (c *Chipset) ScanlineTick(scanline int, eye Eye) {
	c.Scheduler.ScanlineTick(scanline, eye)
}

// TimerTick advances the hardware timer by one tick at its currently
// configured rate.
func (c *Chipset) TimerTick() {
	c.Timer.Tick()
}

// PadTick advances the periodic pad sampler.
func (c *Chipset) PadTick() {
	c.IO.PadTick()
}

// RenderEye walks the 32 worlds for eye and draws into surf, backed by
// a palette snapshot taken at the start of this call (spec.md §5: a
// render pass sees a fixed palette even if the register file is
// written again before the pass completes — which cannot happen in
// this single-threaded model, but keeps the rendering API honest about
// the snapshot semantics spec.md describes).
func (c *Chipset) RenderEye(eye Eye, surf Surface, clip Rect) {
	c.raster.SetPalettes(c.Regs.GPLT(), c.Regs.JPLT())
	surf.Fill(c.Regs.BackdropColor(), clip)
	c.walker.RenderEye(surf, eye, c.Regs.SPT(), clip)
}
