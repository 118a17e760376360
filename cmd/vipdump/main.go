// vipdump - peek/poke/step register REPL and PGM frame dumper for a
// vip.Chipset, with no attached host CPU or cartridge.
//
// License: GPLv3 or later

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	vip "github.com/mothlightretro/vipcore"
)

type stubCPU struct{ cycles uint64 }

func (c *stubCPU) SetInterruptLine(line vip.InterruptLine, asserted bool) {
	fmt.Printf("interrupt line %d -> %v\n", line, asserted)
}
func (c *stubCPU) CyclesNow() uint64 { c.cycles++; return c.cycles }
func (c *stubCPU) PC() uint32        { return 0 }

// graySurface is a vip.Surface that records palette indices directly,
// for writing out as a PGM greyscale image rather than rendering
// through any particular display colour mapping.
type graySurface struct {
	w, h int
	pix  []uint8
}

func newGraySurface(w, h int) *graySurface {
	return &graySurface{w: w, h: h, pix: make([]uint8, w*h)}
}

func (s *graySurface) SetPixel(x, y int, paletteIndex uint8) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.pix[y*s.w+x] = paletteIndex
}

func (s *graySurface) Fill(paletteIndex uint8, clip vip.Rect) {
	for y := clip.Y0; y < clip.Y1 && y < s.h; y++ {
		if y < 0 {
			continue
		}
		for x := clip.X0; x < clip.X1 && x < s.w; x++ {
			if x < 0 {
				continue
			}
			s.pix[y*s.w+x] = paletteIndex
		}
	}
}

// writePGM encodes the surface as a binary P5 PGM with the 2-bit
// palette indices scaled up to the 0-255 greyscale range.
func (s *graySurface) writePGM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P5\n%d %d\n255\n", s.w, s.h)
	for _, v := range s.pix {
		w.WriteByte(v * 85) // 0,1,2,3 -> 0,85,170,255
	}
	return w.Flush()
}

func main() {
	dumpLeft := flag.String("dump-left", "", "dump the left eye to a PGM file and exit")
	dumpRight := flag.String("dump-right", "", "dump the right eye to a PGM file and exit")
	flag.Parse()

	chipset := vip.New(&stubCPU{})

	clip := vip.Rect{X0: 0, Y0: 0, X1: 384, Y1: 224}

	if *dumpLeft != "" || *dumpRight != "" {
		if *dumpLeft != "" {
			surf := newGraySurface(384, 224)
			chipset.RenderEye(vip.LeftEye, surf, clip)
			if err := surf.writePGM(*dumpLeft); err != nil {
				fmt.Fprintf(os.Stderr, "vipdump: %v\n", err)
				os.Exit(1)
			}
		}
		if *dumpRight != "" {
			surf := newGraySurface(384, 224)
			chipset.RenderEye(vip.RightEye, surf, clip)
			if err := surf.writePGM(*dumpRight); err != nil {
				fmt.Fprintf(os.Stderr, "vipdump: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	runREPL(chipset)
}

// runREPL drives an interactive peek/poke/step session over raw stdin,
// echoing input itself the way a line editor would, since raw mode
// disables the terminal's own echo and line buffering.
func runREPL(chipset *vip.Chipset) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vipdump: stdin is not a terminal, falling back to line mode: %v\n", err)
		runCookedREPL(chipset)
		return
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(os.Stdin, "vipdump> ")
	for {
		line, err := t.ReadLine()
		if err != nil {
			return
		}
		if !dispatch(chipset, line, t) {
			return
		}
	}
}

func runCookedREPL(chipset *vip.Chipset) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("vipdump> ")
		if !scanner.Scan() {
			return
		}
		if !dispatch(chipset, scanner.Text(), os.Stdout) {
			return
		}
	}
}

func dispatch(chipset *vip.Chipset, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "quit", "exit":
		return false
	case "regs":
		r := chipset.DumpRegisters()
		fmt.Fprintf(out, "INTENB=%04X INTPND=%04X DPCTRL=%04X XPCTRL=%04X BKCOL=%d\r\n",
			r.INTENB, r.INTPND, r.DPCTRL, r.XPCTRL, r.BKCOL)
	case "worlds":
		worlds := chipset.DumpWorlds()
		for i := 31; i >= 0; i-- {
			w := worlds[i].World
			if w.End {
				fmt.Fprintf(out, "world %2d: END\r\n", i)
				break
			}
			fmt.Fprintf(out, "world %2d: mode=%d LON=%v RON=%v\r\n", i, w.Mode, w.LON, w.RON)
		}
	case "peek":
		if len(fields) != 2 {
			fmt.Fprintf(out, "usage: peek <hex-addr>\r\n")
			break
		}
		addr, err := strconv.ParseUint(fields[1], 16, 32)
		if err != nil {
			fmt.Fprintf(out, "bad address: %v\r\n", err)
			break
		}
		fmt.Fprintf(out, "%08X: %02X\r\n", addr, chipset.Bus.ReadByte(uint32(addr)))
	case "poke":
		if len(fields) != 3 {
			fmt.Fprintf(out, "usage: poke <hex-addr> <hex-value>\r\n")
			break
		}
		addr, err1 := strconv.ParseUint(fields[1], 16, 32)
		val, err2 := strconv.ParseUint(fields[2], 16, 8)
		if err1 != nil || err2 != nil {
			fmt.Fprintf(out, "bad operand\r\n")
			break
		}
		chipset.Bus.WriteByte(uint32(addr), uint8(val))
	case "step":
		n := 1
		if len(fields) == 2 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			chipset.ScanlineTick(i%vip.ScanlinesPerFrame, vip.LeftEye)
			chipset.TimerTick()
		}
		fmt.Fprintf(out, "stepped %d scanlines\r\n", n)
	default:
		fmt.Fprintf(out, "unknown command %q\r\n", fields[0])
	}
	return true
}
