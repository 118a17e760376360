// vipdemo - drives a vip.Chipset from an ebiten game loop and displays
// both eyes (or a merged anaglyph) in a window.
//
// License: GPLv3 or later

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	vip "github.com/mothlightretro/vipcore"
	"github.com/mothlightretro/vipcore/vipebiten"
)

// stubCPU is a no-op vip.HostCPU: vipdemo drives the Chipset's tick
// entry points directly from the game loop instead of from an attached
// processor core, which is out of scope for this module.
type stubCPU struct {
	cycles uint64
}

func (c *stubCPU) SetInterruptLine(line vip.InterruptLine, asserted bool) {}
func (c *stubCPU) CyclesNow() uint64                                      { c.cycles++; return c.cycles }
func (c *stubCPU) PC() uint32                                             { return 0 }

type game struct {
	chipset  *vip.Chipset
	left     *vipebiten.Display
	right    *vipebiten.Display
	anaglyph bool
	merger   *vipebiten.Anaglyph
	scanline int
}

func newGame(anaglyph bool) *game {
	cpu := &stubCPU{}
	g := &game{
		chipset:  vip.New(cpu, vip.WithInputDevice(vipebiten.KeypadInput{})),
		left:     vipebiten.NewDisplay(),
		right:    vipebiten.NewDisplay(),
		anaglyph: anaglyph,
	}
	if anaglyph {
		g.merger = vipebiten.NewAnaglyph(vipebiten.ScreenWidth, vipebiten.ScreenHeight)
	}
	return g
}

func (g *game) Update() error {
	clip := vip.Rect{X0: 0, Y0: 0, X1: vipebiten.ScreenWidth, Y1: vipebiten.ScreenHeight}

	// One ebiten tick renders one full frame: all 264 scanlines, both
	// eyes, plus a render pass per eye once the active area closes.
	for s := 0; s < vip.ScanlinesPerFrame; s++ {
		g.chipset.ScanlineTick(s, vip.LeftEye)
		g.chipset.ScanlineTick(s, vip.RightEye)
		g.chipset.TimerTick()
		g.scanline++
		if g.scanline%vip.ScanlinesPerFrame == 0 { // one pad sample per frame, approximate pad-sample cadence, spec.md §6
			g.chipset.PadTick()
		}
	}
	g.chipset.RenderEye(vip.LeftEye, g.left, clip)
	g.chipset.RenderEye(vip.RightEye, g.right, clip)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.anaglyph {
		frame := g.merger.Composite(g.left.RGBA(), g.right.RGBA())
		img := ebiten.NewImageFromImage(frame)
		screen.DrawImage(img, nil)
		return
	}

	opL := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.left.Image(), opL)

	opR := &ebiten.DrawImageOptions{}
	opR.GeoM.Translate(vipebiten.ScreenWidth, 0)
	screen.DrawImage(g.right.Image(), opR)

	ebitenutil.DebugPrint(screen, "left eye | right eye")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.anaglyph {
		return vipebiten.ScreenWidth, vipebiten.ScreenHeight
	}
	return vipebiten.ScreenWidth * 2, vipebiten.ScreenHeight
}

func main() {
	anaglyph := flag.Bool("anaglyph", false, "merge both eyes into a single red/cyan anaglyph image instead of showing them side by side")
	scale := flag.Int("scale", 2, "window scale factor")
	flag.Parse()

	g := newGame(*anaglyph)

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w*(*scale), h*(*scale))
	ebiten.SetWindowTitle("vipdemo")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "vipdemo: %v\n", err)
		os.Exit(1)
	}
}
