// framebuffers.go - the four 24KiB (0x6000-byte) VIP framebuffer planes
//
// spec.md §4.3 / Q1: the real hardware's display processor reads these
// back out to the screen; this core rasters directly to the host's
// output Surface instead (see surface.go) and never reads the planes
// itself. They are still fully implemented because the host CPU reads
// and writes them via HostBus like any other peripheral.
//
// License: GPLv3 or later

package vip

const FramebufferBytes = 0x6000

// Framebuffers is LFB0/LFB1/RFB0/RFB1 as the host CPU sees them:
// 384x224 pixels at 2bpp, column-major, 4 vertical pixels per byte.
type Framebuffers struct {
	planes [4][FramebufferBytes]byte
}

const (
	PlaneLFB0 = 0
	PlaneLFB1 = 1
	PlaneRFB0 = 2
	PlaneRFB1 = 3
)

func NewFramebuffers() *Framebuffers {
	return &Framebuffers{}
}

func (f *Framebuffers) ReadByte(plane int, offset uint32) byte {
	return f.planes[plane][offset%FramebufferBytes]
}

func (f *Framebuffers) WriteByte(plane int, offset uint32, value byte) {
	f.planes[plane][offset%FramebufferBytes] = value
}
