// world_walker.go - per-eye world-list traversal (spec.md §4.5)
//
// License: GPLv3 or later

package vip

// WorldWalker iterates the 32 world entries from 31 down to 0 for one
// eye, dispatching each to the Rasterizer and tracking the shared
// object-group cursor (SPT) across OBJ worlds encountered during the
// pass.
type WorldWalker struct {
	bgmap  *BGMapMemory
	raster *Rasterizer
}

func NewWorldWalker(bgmap *BGMapMemory, raster *Rasterizer) *WorldWalker {
	return &WorldWalker{bgmap: bgmap, raster: raster}
}

// RenderEye walks all 32 worlds for eye and draws into surf. spt holds
// the four SPT cursor registers; clip bounds the output surface.
func (ww *WorldWalker) RenderEye(surf Surface, eye Eye, spt [4]uint16, clip Rect) {
	curSPT := 3

	for idx := 31; idx >= 0; idx-- {
		world := ww.bgmap.WorldAttr(idx)
		if world.End {
			return
		}

		enabled := world.LON
		if eye == RightEye {
			enabled = world.RON
		}

		switch world.Mode {
		case ModeNormal, ModeHBias:
			ww.raster.hasOverflow = false
			if world.OVR {
				ww.raster.fillOverflowTile(world.OvrChar&0x3FFF, ww.raster.gplt[(world.OvrChar>>14)&3])
			}
			if !enabled {
				continue
			}
			xMask := world.SCX*8 - 1
			yMask := world.SCY*8 - 1
			ww.raster.DrawNormalOrHBias(surf, BGMapDrawParams{
				World: &world, Segment: world.BGMapBase,
				XMask: xMask, YMask: yMask, Clip: clip, Right: eye == RightEye,
			})

		case ModeAffine:
			ww.raster.hasOverflow = false
			if world.OVR {
				ww.raster.fillOverflowTile(world.OvrChar&0x3FFF, ww.raster.gplt[(world.OvrChar>>14)&3])
			}
			if !enabled {
				continue
			}
			xMask := world.SCX*8 - 1
			yMask := world.SCY*8 - 1
			ww.raster.DrawAffine(surf, BGMapDrawParams{
				World: &world, Segment: world.BGMapBase,
				XMask: xMask, YMask: yMask, Clip: clip, Right: eye == RightEye,
			})

		case ModeObject:
			curSPT = ww.drawObjectWorld(surf, eye, world, spt, curSPT, clip)
		}
	}
}

// drawObjectWorld consumes one object group per Object-mode world
// (spec.md §4.5): group k occupies (SPT[k-1], SPT[k]] cyclically mod
// 1024, with group 0 upper-bounded by the 0x3FF sentinel.
func (ww *WorldWalker) drawObjectWorld(surf Surface, eye Eye, world World, spt [4]uint16, curSPT int, clip Rect) int {
	if curSPT == -1 {
		warnf("SPT underflow in object world, skipping")
		return curSPT
	}

	start := int(spt[curSPT])
	var end int
	if curSPT == 0 {
		end = 0x3FF
	} else {
		end = int(spt[curSPT-1])
	}

	i := start
	for steps := 0; steps < ObjectAttrCount; steps++ {
		if i == end {
			break
		}
		obj := ww.bgmap.ObjectAttr(i)
		renderThisEye := obj.JLON
		if eye == RightEye {
			renderThisEye = obj.JRON
		}
		if renderThisEye {
			x := int(obj.X) & 0x1FF
			y := int(obj.Y) & 0x1FF
			// sign-extend the wrapped 9-bit coordinate back out so the
			// clip test and pixel writes use normal screen-space ints.
			if x >= 0x100 {
				x -= 0x200
			}
			if y >= 0x100 {
				y -= 0x200
			}
			px := x
			if eye == RightEye {
				px -= int(obj.Parallax)
			} else {
				px += int(obj.Parallax)
			}
			ww.raster.PutObject(surf, clip, px, y, obj.Tile, ww.raster.jplt[obj.Palette])
		}
		i = (i - 1) & (ObjectAttrCount - 1)
	}

	consumedByThisEye := world.LON
	if eye == RightEye {
		consumedByThisEye = world.RON
	}
	if consumedByThisEye {
		curSPT--
	}
	return curSPT
}
