package flood

import (
	"sort"

	"github.com/nvr-ai/go-rank/grid"
)

// The traversal never does per-axis bounds arithmetic. The image is copied
// into a buffer padded by one cell per side, the matching flag grid gets its
// outer ring pre-painted as border sentinel, and neighbors are reached through
// signed linear-index deltas computed once from the footprint and the padded
// strides. Every neighbor dereference lands inside allocated memory and
// sentinels reject themselves through the flag check.

const (
	flagUnvisited = 0
	flagFilled    = 1
	flagBorder    = 2
)

func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

func prod(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// padGrid copies the image into a buffer grown by one cell per side on every
// axis. The padding cells are never read by the traversal; sentinels stop it
// first.
func padGrid[T grid.Value](g *grid.Grid[T]) ([]T, []int) {
	rank := g.Rank()
	pshape := make([]int, rank)
	for i, s := range g.Shape {
		pshape[i] = s + 2
	}
	pstrides := stridesOf(pshape)
	buf := make([]T, prod(pshape))

	rowLen := g.Shape[rank-1]
	coords := make([]int, rank)
	for src := 0; src < len(g.Data); src += rowLen {
		dst := pstrides[rank-1]
		for i := 0; i < rank-1; i++ {
			dst += (coords[i] + 1) * pstrides[i]
		}
		copy(buf[dst:dst+rowLen], g.Data[src:src+rowLen])
		for a := rank - 2; a >= 0; a-- {
			coords[a]++
			if coords[a] < g.Shape[a] {
				break
			}
			coords[a] = 0
		}
	}
	return buf, pshape
}

// paintBorder marks every cell on the outer ring of the padded shape as a
// border sentinel.
func paintBorder(flags []uint8, pshape []int) {
	coords := make([]int, len(pshape))
	for i := range flags {
		for a, c := range coords {
			if c == 0 || c == pshape[a]-1 {
				flags[i] = flagBorder
				break
			}
		}
		for a := len(pshape) - 1; a >= 0; a-- {
			coords[a]++
			if coords[a] < pshape[a] {
				break
			}
			coords[a] = 0
		}
	}
}

// raveledOffsets converts the footprint members, excluding the center, into
// signed linear-index deltas against the padded strides. Offsets are ordered
// by distance from the center so near neighbors are tried first.
func raveledOffsets(fp *grid.Footprint, center, pshape []int) []int {
	pstrides := stridesOf(pshape)
	rank := len(pshape)
	coords := make([]int, rank)

	type neighbor struct {
		delta int
		dist  int
	}
	var neighbors []neighbor
	for i, member := range fp.Data {
		if member == 0 {
			continue
		}
		idx := i
		for a := rank - 1; a >= 0; a-- {
			coords[a] = idx % fp.Shape[a]
			idx /= fp.Shape[a]
		}
		delta, dist := 0, 0
		for a := 0; a < rank; a++ {
			d := coords[a] - center[a]
			delta += d * pstrides[a]
			dist += d * d
		}
		if delta == 0 {
			continue
		}
		neighbors = append(neighbors, neighbor{delta: delta, dist: dist})
	}
	sort.SliceStable(neighbors, func(i, j int) bool { return neighbors[i].dist < neighbors[j].dist })

	offsets := make([]int, len(neighbors))
	for i, n := range neighbors {
		offsets[i] = n.delta
	}
	return offsets
}

// interiorMask copies the filled flags of the padded buffer, minus the
// sentinel ring, into a mask of the original shape.
func interiorMask(flags []uint8, shape, pshape []int) *grid.Mask {
	mask := grid.NewMask(shape...)
	if len(mask.Data) == 0 {
		return mask
	}
	rank := len(shape)
	pstrides := stridesOf(pshape)
	rowLen := shape[rank-1]
	coords := make([]int, rank)
	for dst := 0; dst < len(mask.Data); dst += rowLen {
		src := pstrides[rank-1]
		for i := 0; i < rank-1; i++ {
			src += (coords[i] + 1) * pstrides[i]
		}
		for x := 0; x < rowLen; x++ {
			mask.Data[dst+x] = flags[src+x] == flagFilled
		}
		for a := rank - 2; a >= 0; a-- {
			coords[a]++
			if coords[a] < shape[a] {
				break
			}
			coords[a] = 0
		}
	}
	return mask
}
