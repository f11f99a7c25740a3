package rank

import (
	"github.com/nvr-ai/go-rank/grid"
)

// Named entry points, one per statistic, mirroring Apply. All of them accept
// 2-D or 3-D images and return a new grid of the input's shape and depth.

// MinimumFilter returns the local minimum.
func MinimumFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Minimum, opts)
}

// MaximumFilter returns the local maximum.
func MaximumFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Maximum, opts)
}

// MeanFilter returns the local mean.
func MeanFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Mean, opts)
}

// GeometricMeanFilter returns the local geometric mean, computed in the log
// domain so zero-valued pixels are tolerated.
func GeometricMeanFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, GeometricMean, opts)
}

// SubtractMeanFilter returns the image minus its local mean, halved and offset
// by bins/2-1 to compensate the potential underflow of the raw difference.
func SubtractMeanFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, SubtractMean, opts)
}

// MedianFilter returns the local median. A nil footprint defaults to the full
// 3^rank neighborhood.
func MedianFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	if fp == nil {
		fp = grid.Connectivity(img.Rank(), img.Rank())
	}
	return Apply(img, fp, Median, opts)
}

// ModalFilter returns the most frequent local value.
func ModalFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Modal, opts)
}

// MajorityFilter assigns each pixel the most occurring value within its
// neighborhood.
func MajorityFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Majority, opts)
}

// AutolevelFilter stretches each window's value range onto the full domain.
func AutolevelFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Autolevel, opts)
}

// EqualizeFilter equalizes each pixel against its window's cumulative
// distribution.
func EqualizeFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Equalize, opts)
}

// GradientFilter returns local maximum minus local minimum.
func GradientFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Gradient, opts)
}

// EnhanceContrastFilter snaps each pixel to the nearer of the window extrema.
func EnhanceContrastFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, EnhanceContrast, opts)
}

// PopFilter returns the number of pixels covered by both footprint and mask
// at each position. Near borders the window is truncated, so the count drops
// below the footprint cardinality.
func PopFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Pop, opts)
}

// SumFilter returns the local sum. The sum is cast to the pixel depth with
// native modular overflow; it is not saturated or corrected.
func SumFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Sum, opts)
}

// ThresholdFilter returns 1 where the pixel exceeds its local mean, else 0.
func ThresholdFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Threshold, opts)
}

// NoiseFilterFilter returns the smallest absolute difference between each
// pixel and its neighborhood. The engine needs a center-free footprint, so the
// (shifted) center member is cleared on a copy before scanning.
func NoiseFilterFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	center, err := fp.Center(opts.shift()...)
	if err != nil {
		return nil, err
	}
	cleared := fp.Clone()
	idx := 0
	acc := 1
	for i := len(cleared.Shape) - 1; i >= 0; i-- {
		idx += center[i] * acc
		acc *= cleared.Shape[i]
	}
	cleared.Data[idx] = 0
	return Apply(img, cleared, NoiseFilter, opts)
}

// OtsuFilter returns the local Otsu threshold for each pixel.
func OtsuFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Otsu, opts)
}

// EntropyFilter returns the truncated local entropy in the pixel depth. See
// EntropyGrid for the float64 form.
func EntropyFilter[T grid.Pixel](img *grid.Grid[T], fp *grid.Footprint, opts *Options) (*grid.Grid[T], error) {
	return Apply(img, fp, Entropy, opts)
}
