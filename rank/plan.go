package rank

import (
	"github.com/nvr-ai/go-rank/grid"
)

// The scan drivers never diff the whole footprint when the window moves one
// step. For each axis they use the footprint's border members: a member whose
// neighbor along the move direction is not itself a member. Moving the window
// east by one column, the pixels entering the window are exactly the east
// borders at the new position and the pixels leaving are the west borders at
// the old one; the interior cancels. This holds for arbitrary footprints,
// including non-convex ones.

// offset2 is a window offset relative to the (shifted) footprint center.
type offset2 struct{ dy, dx int }

// offset3 is the 3-D counterpart.
type offset3 struct{ dz, dy, dx int }

// plan2D is the precomputed traversal plan for one 2-D filter invocation.
type plan2D struct {
	members []offset2
	east    []offset2
	west    []offset2
	north   []offset2
	south   []offset2
}

func newPlan2D(fp *grid.Footprint, center []int) *plan2D {
	p := &plan2D{}
	cy, cx := center[0], center[1]
	for y := 0; y < fp.Shape[0]; y++ {
		for x := 0; x < fp.Shape[1]; x++ {
			if !fp.Member(y, x) {
				continue
			}
			off := offset2{dy: y - cy, dx: x - cx}
			p.members = append(p.members, off)
			if !fp.Member(y, x+1) {
				p.east = append(p.east, off)
			}
			if !fp.Member(y, x-1) {
				p.west = append(p.west, off)
			}
			if !fp.Member(y+1, x) {
				p.south = append(p.south, off)
			}
			if !fp.Member(y-1, x) {
				p.north = append(p.north, off)
			}
		}
	}
	return p
}

// plan3D is the precomputed traversal plan for one 3-D filter invocation. The
// borders are taken along x (east/west) and y (north/south); the z axis is the
// outer loop and rebuilds the histogram per slice.
type plan3D struct {
	members []offset3
	east    []offset3
	west    []offset3
	north   []offset3
	south   []offset3
}

func newPlan3D(fp *grid.Footprint, center []int) *plan3D {
	p := &plan3D{}
	cz, cy, cx := center[0], center[1], center[2]
	for z := 0; z < fp.Shape[0]; z++ {
		for y := 0; y < fp.Shape[1]; y++ {
			for x := 0; x < fp.Shape[2]; x++ {
				if !fp.Member(z, y, x) {
					continue
				}
				off := offset3{dz: z - cz, dy: y - cy, dx: x - cx}
				p.members = append(p.members, off)
				if !fp.Member(z, y, x+1) {
					p.east = append(p.east, off)
				}
				if !fp.Member(z, y, x-1) {
					p.west = append(p.west, off)
				}
				if !fp.Member(z, y+1, x) {
					p.south = append(p.south, off)
				}
				if !fp.Member(z, y-1, x) {
					p.north = append(p.north, off)
				}
			}
		}
	}
	return p
}
