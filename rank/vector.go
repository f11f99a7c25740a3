package rank

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-rank/grid"
)

// VectorField is a per-pixel feature-vector output: one float64 vector of
// length Bins at every 2-D position, stored row-major with the vector axis
// fastest.
type VectorField struct {
	// Data holds Rows*Cols*Bins values.
	Data []float64
	// Rows and Cols are the spatial extents.
	Rows, Cols int
	// Bins is the vector length.
	Bins int
}

// At returns the vector at (y, x). The slice aliases the field's backing
// array.
func (f *VectorField) At(y, x int) []float64 {
	off := (y*f.Cols + x) * f.Bins
	return f.Data[off : off+f.Bins]
}

// WindowedHistogram computes the normalized local histogram as a per-pixel
// vector field. Each vector sums to 1 unless no pixels in the window were
// covered by both footprint and mask, in which case it is all zero. 2-D images
// only.
func WindowedHistogram[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*VectorField, error) {
	if img.Rank() != 2 {
		return nil, errors.Wrapf(grid.ErrDimensionMismatch,
			"windowed histogram supports 2-D images, got rank %d", img.Rank())
	}
	center, err := validate(img, fp, opts)
	if err != nil {
		return nil, err
	}
	bins := binCount(img, opts)
	h := newHistogram(bins)
	mask := opts.mask()

	rows, cols := img.Shape[0], img.Shape[1]
	field := &VectorField{
		Data: make([]float64, rows*cols*bins),
		Rows: rows,
		Cols: cols,
		Bins: bins,
	}
	p := newPlan2D(fp, center)
	scan2D(img, mask, p, h, func(y, x int) {
		if h.pop == 0 {
			return
		}
		vec := field.At(y, x)
		pop := float64(h.pop)
		for i, c := range h.counts {
			if c != 0 {
				vec[i] = float64(c) / pop
			}
		}
	})
	return field, nil
}
