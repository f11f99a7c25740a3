package rank

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nvr-ai/go-rank/grid"
)

// DefaultBinWarnThreshold is the bin count above which a performance warning
// is logged for wide-domain images.
const DefaultBinWarnThreshold = 1 << 10

var (
	logger           = zerolog.Nop()
	binWarnThreshold = DefaultBinWarnThreshold
)

// SetLogger installs the logger used for performance warnings. The default
// discards everything.
func SetLogger(l zerolog.Logger) { logger = l }

// SetBinWarnThreshold overrides the bin count that triggers the wide-domain
// performance warning.
func SetBinWarnThreshold(n int) { binWarnThreshold = n }

// Options carries the optional parameters shared by every rank filter.
type Options struct {
	// Mask restricts which image pixels contribute to local histograms. Must
	// match the image shape. Nil includes the whole image.
	Mask *grid.Mask
	// Shift offsets the footprint center per axis. The shifted center must
	// stay inside the footprint bounding box. Nil means no shift.
	Shift []int
	// Bins overrides the histogram bin count. Zero derives it from the image:
	// 256 for 8-bit pixels, max(3, image maximum)+1 for wide pixels. An
	// explicit value must exceed the image maximum.
	Bins int
}

func (o *Options) mask() *grid.Mask {
	if o == nil {
		return nil
	}
	return o.Mask
}

func (o *Options) shift() []int {
	if o == nil {
		return nil
	}
	return o.Shift
}

func (o *Options) bins() int {
	if o == nil {
		return 0
	}
	return o.Bins
}

// binCount derives the histogram size for the image. Wide-domain images get
// one bin per value up to the observed maximum; large counts are a documented
// performance cliff and logged as a warning.
func binCount[T grid.Pixel](img *grid.Grid[T], opts *Options) int {
	var bins int
	if opts != nil && opts.Bins > 0 {
		bins = opts.Bins
	} else {
		var probe T
		switch any(probe).(type) {
		case uint8:
			bins = 256
		default:
			bins = int(img.Max()) + 1
			if bins < 4 {
				bins = 4
			}
		}
	}
	if bins > binWarnThreshold {
		logger.Warn().
			Int("bins", bins).
			Int("threshold", binWarnThreshold).
			Msg("bad rank filter performance expected due to a large number of bins")
	}
	return bins
}

// validate runs every precondition shared by the rank filters. No output is
// touched unless all of them pass.
func validate[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) ([]int, error) {
	if img.Rank() != 2 && img.Rank() != 3 {
		return nil, errors.Wrapf(grid.ErrDimensionMismatch,
			"rank filters support 2-D and 3-D images, got rank %d", img.Rank())
	}
	if img.Empty() {
		return nil, grid.ErrEmptyInput
	}
	if fp.Rank() != img.Rank() {
		return nil, errors.Wrapf(grid.ErrDimensionMismatch,
			"footprint rank %d, image rank %d", fp.Rank(), img.Rank())
	}
	if m := opts.mask(); m != nil && !m.SameShape(img.Shape) {
		return nil, errors.Wrap(grid.ErrDimensionMismatch, "mask shape differs from image shape")
	}
	if b := opts.bins(); b > 0 && b <= int(img.Max()) {
		return nil, errors.Wrapf(grid.ErrDimensionMismatch,
			"bin count %d does not cover image maximum %d", b, img.Max())
	}
	center, err := fp.Center(opts.shift()...)
	if err != nil {
		return nil, err
	}
	return center, nil
}

// Apply runs one scalar rank filter and returns a freshly allocated output
// grid of the input's shape and depth.
func Apply[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, stat Statistic, opts *Options) (*grid.Grid[T], error) {
	out := grid.New[T](img.Shape...)
	if err := ApplyInto(out, img, fp, stat, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyInto runs one scalar rank filter into a caller-owned output buffer. The
// buffer must match the image shape and must not alias the image.
func ApplyInto[T grid.Pixel](out, img *grid.Grid[T], fp *grid.Footprint, stat Statistic, opts *Options) error {
	center, err := validate(img, fp, opts)
	if err != nil {
		return err
	}
	if grid.Aliases(out, img) {
		return grid.ErrInPlace
	}
	if !out.SameShape(img.Shape) {
		return errors.Wrap(grid.ErrDimensionMismatch, "output shape differs from image shape")
	}
	bins := binCount(img, opts)
	h := newHistogram(bins)
	mask := opts.mask()

	if img.Rank() == 2 {
		cols := img.Shape[1]
		p := newPlan2D(fp, center)
		scan2D(img, mask, p, h, func(y, x int) {
			i := y*cols + x
			out.Data[i] = scalarResult[T](stat, h, uint32(img.Data[i]), bins)
		})
		return nil
	}

	rows, cols := img.Shape[1], img.Shape[2]
	p := newPlan3D(fp, center)
	scan3D(img, mask, p, h, func(z, y, x int) {
		i := (z*rows+y)*cols + x
		out.Data[i] = scalarResult[T](stat, h, uint32(img.Data[i]), bins)
	})
	return nil
}

// scalarResult converts one extraction into the output pixel depth. Sum and
// Pop keep the native modular cast of the exact integer; everything else is
// clipped to the valid bin range and truncated.
func scalarResult[T grid.Pixel](stat Statistic, h *histogram, center uint32, bins int) T {
	switch stat {
	case Sum:
		return T(h.sum)
	case Pop:
		return T(h.pop)
	}
	v := stat.extract(h, center, bins)
	if v < 0 {
		return 0
	}
	if max := float64(bins - 1); v > max {
		v = max
	}
	return T(v)
}

// EntropyGrid computes the local Shannon entropy in bits as a float64 grid.
// The scalar Entropy wrapper truncates; use this form when the fractional
// bits matter.
func EntropyGrid[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[float64], error) {
	center, err := validate(img, fp, opts)
	if err != nil {
		return nil, err
	}
	bins := binCount(img, opts)
	h := newHistogram(bins)
	mask := opts.mask()
	out := grid.New[float64](img.Shape...)

	if img.Rank() == 2 {
		cols := img.Shape[1]
		p := newPlan2D(fp, center)
		scan2D(img, mask, p, h, func(y, x int) {
			i := y*cols + x
			out.Data[i] = Entropy.extract(h, uint32(img.Data[i]), bins)
		})
		return out, nil
	}

	rows, cols := img.Shape[1], img.Shape[2]
	p := newPlan3D(fp, center)
	scan3D(img, mask, p, h, func(z, y, x int) {
		i := (z*rows+y)*cols + x
		out.Data[i] = Entropy.extract(h, uint32(img.Data[i]), bins)
	})
	return out, nil
}
