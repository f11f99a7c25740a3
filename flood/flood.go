// Package flood - seeded flood fill with exact or tolerance-based membership
// over dense grids of any rank.
package flood

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-rank/grid"
)

// Options configures a flood operation.
type Options struct {
	// Footprint is the neighborhood used to grow the region. Nil falls back
	// to Connectivity.
	Footprint *grid.Footprint
	// Connectivity selects the 3^rank neighborhood when Footprint is nil:
	// offsets within this squared distance of the center are neighbors. Zero
	// means full connectivity (diagonals included).
	Connectivity int
	// Tolerance widens membership to the inclusive range
	// [seed-Tolerance, seed+Tolerance], saturated against the value domain.
	// Nil requires strict equality with the seed value.
	Tolerance *float64
	// InPlace makes FloodFill mutate the caller's grid instead of a copy.
	// Flood ignores it.
	InPlace bool
}

func (o *Options) footprint(rank int) *grid.Footprint {
	if o != nil && o.Footprint != nil {
		return o.Footprint
	}
	conn := rank
	if o != nil && o.Connectivity > 0 {
		conn = o.Connectivity
	}
	return grid.Connectivity(rank, conn)
}

// Flood returns the boolean mask of positions reachable from the seed through
// a chain of footprint-adjacent positions whose values match the seed: exact
// equality by default, the inclusive tolerance window when one is given.
//
// A zero-extent axis yields an all-false mask without traversal. Seed
// coordinates wrap modulo the axis extents. The masked seed position is
// always true for nonempty images.
func Flood[T grid.Value](img *grid.Grid[T], seed []int, opts *Options) (*grid.Mask, error) {
	rank := img.Rank()
	if rank == 0 {
		return nil, grid.ErrEmptyInput
	}
	if img.Empty() {
		return grid.NewMask(img.Shape...), nil
	}
	if len(seed) != rank {
		return nil, errors.Wrapf(grid.ErrDimensionMismatch,
			"seed has %d coordinates, image rank is %d", len(seed), rank)
	}
	fp := opts.footprint(rank)
	if fp.Rank() != rank {
		return nil, errors.Wrapf(grid.ErrDimensionMismatch,
			"footprint rank %d, image rank %d", fp.Rank(), rank)
	}
	// The sentinel ring is one cell deep, so neighbors must stay within the
	// 3^rank window.
	for i, ext := range fp.Shape {
		if ext > 3 {
			return nil, errors.Wrapf(grid.ErrInvalidFootprint,
				"axis %d: extent %d exceeds the adjacent neighborhood", i, ext)
		}
	}
	center, err := fp.Center()
	if err != nil {
		return nil, err
	}

	// Seed coordinates are taken modulo each axis extent, negatives included.
	wrapped := make([]int, rank)
	for i, s := range seed {
		w := s % img.Shape[i]
		if w < 0 {
			w += img.Shape[i]
		}
		wrapped[i] = w
	}
	seedValue := img.At(wrapped...)

	var match func(T) bool
	if opts != nil && opts.Tolerance != nil {
		low, high, err := toleranceBounds(seedValue, *opts.Tolerance)
		if err != nil {
			return nil, err
		}
		match = func(v T) bool {
			f := float64(v)
			return low <= f && f <= high
		}
	} else {
		match = func(v T) bool { return v == seedValue }
	}

	working, pshape := padGrid(img)
	flags := make([]uint8, len(working))
	paintBorder(flags, pshape)
	offsets := raveledOffsets(fp, center, pshape)

	pstrides := stridesOf(pshape)
	seedIdx := 0
	for i, c := range wrapped {
		seedIdx += (c + 1) * pstrides[i]
	}

	floodMask(working, flags, offsets, seedIdx, match)
	return interiorMask(flags, img.Shape, pshape), nil
}

// floodMask is the traversal core: an explicit LIFO worklist of linear indices
// on the padded buffer. A candidate is pushed at most once; the membership
// predicate runs once per unvisited, non-sentinel candidate.
func floodMask[T grid.Value](working []T, flags []uint8, offsets []int, seedIdx int, match func(T) bool) {
	stack := make([]int, 0, 64)
	stack = append(stack, seedIdx)
	flags[seedIdx] = flagFilled

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, off := range offsets {
			n := idx + off
			if flags[n] == flagUnvisited && match(working[n]) {
				flags[n] = flagFilled
				stack = append(stack, n)
			}
		}
	}
}

// FloodFill floods from the seed and writes newValue at every masked
// position. The input is left untouched and a filled copy returned unless
// Options.InPlace is set, in which case the input grid itself is mutated and
// returned.
func FloodFill[T grid.Value](img *grid.Grid[T], seed []int, newValue T, opts *Options) (*grid.Grid[T], error) {
	mask, err := Flood(img, seed, opts)
	if err != nil {
		return nil, err
	}
	out := img
	if opts == nil || !opts.InPlace {
		out = img.Clone()
	}
	for i, filled := range mask.Data {
		if filled {
			out.Data[i] = newValue
		}
	}
	return out, nil
}
