// Package grid - dense N-dimensional pixel grids, structuring elements and masks
// shared by the rank-filter and flood-fill engines.
package grid

// Value is the set of pixel domains the flood-fill engine accepts.
type Value interface {
	~uint8 | ~uint16 | ~int32 | ~float32 | ~float64
}

// Pixel is the set of pixel domains the rank-filter engine accepts: the two
// canonical unsigned depths produced by the normalization layer.
type Pixel interface {
	~uint8 | ~uint16
}

// Grid is a dense row-major N-dimensional array of pixels. Rank 2 and 3 are the
// common cases; the flood-fill engine accepts any rank >= 1.
type Grid[T Value] struct {
	// Data holds the pixels in row-major order (last axis fastest).
	Data []T
	// Shape is the extent of each axis.
	Shape []int
}

// New allocates a zeroed grid with the given shape. Zero-extent axes are legal;
// the resulting grid has no data.
func New[T Value](shape ...int) *Grid[T] {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return &Grid[T]{
		Data:  make([]T, n),
		Shape: append([]int(nil), shape...),
	}
}

// FromData wraps an existing row-major buffer. The buffer is not copied; the
// caller keeps ownership. len(data) must equal the product of the shape.
func FromData[T Value](data []T, shape ...int) *Grid[T] {
	return &Grid[T]{Data: data, Shape: append([]int(nil), shape...)}
}

// Rank returns the number of axes.
func (g *Grid[T]) Rank() int { return len(g.Shape) }

// Len returns the total number of pixels.
func (g *Grid[T]) Len() int { return len(g.Data) }

// Empty reports whether any axis has zero extent.
func (g *Grid[T]) Empty() bool {
	for _, s := range g.Shape {
		if s == 0 {
			return true
		}
	}
	return len(g.Shape) == 0
}

// Strides returns the row-major stride of each axis in elements.
func (g *Grid[T]) Strides() []int {
	strides := make([]int, len(g.Shape))
	acc := 1
	for i := len(g.Shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= g.Shape[i]
	}
	return strides
}

// Index converts per-axis coordinates to a linear index. Coordinates are not
// bounds checked; callers on hot paths do their own clipping.
func (g *Grid[T]) Index(coords ...int) int {
	idx := 0
	acc := 1
	for i := len(g.Shape) - 1; i >= 0; i-- {
		idx += coords[i] * acc
		acc *= g.Shape[i]
	}
	return idx
}

// At returns the pixel at the given coordinates.
func (g *Grid[T]) At(coords ...int) T { return g.Data[g.Index(coords...)] }

// Set stores a pixel at the given coordinates.
func (g *Grid[T]) Set(v T, coords ...int) { g.Data[g.Index(coords...)] = v }

// Clone returns a deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	out := New[T](g.Shape...)
	copy(out.Data, g.Data)
	return out
}

// SameShape reports whether two grids have identical extents on every axis.
func (g *Grid[T]) SameShape(shape []int) bool {
	if len(g.Shape) != len(shape) {
		return false
	}
	for i := range shape {
		if g.Shape[i] != shape[i] {
			return false
		}
	}
	return true
}

// Aliases reports whether two grids share backing memory. Used to reject
// in-place rank filtering before any work starts.
func Aliases[T Value](a, b *Grid[T]) bool {
	if a == nil || b == nil || len(a.Data) == 0 || len(b.Data) == 0 {
		return false
	}
	return &a.Data[0] == &b.Data[0]
}

// Max returns the largest pixel value, or zero for an empty grid.
func (g *Grid[T]) Max() T {
	var max T
	for _, v := range g.Data {
		if v > max {
			max = v
		}
	}
	return max
}
