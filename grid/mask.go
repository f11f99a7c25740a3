package grid

// Mask is a boolean grid. The rank-filter engine uses it to gate which pixels
// contribute to local histograms; the flood-fill engine returns one.
type Mask struct {
	// Data holds the flags in row-major order.
	Data []bool
	// Shape is the extent of each axis.
	Shape []int
}

// NewMask allocates an all-false mask with the given shape.
func NewMask(shape ...int) *Mask {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return &Mask{Data: make([]bool, n), Shape: append([]int(nil), shape...)}
}

// MaskFrom binarizes an integer grid into a mask: any nonzero value is true.
func MaskFrom[T Value](g *Grid[T]) *Mask {
	m := NewMask(g.Shape...)
	for i, v := range g.Data {
		m.Data[i] = v != 0
	}
	return m
}

// At returns the flag at the given coordinates.
func (m *Mask) At(coords ...int) bool {
	idx := 0
	acc := 1
	for i := len(m.Shape) - 1; i >= 0; i-- {
		idx += coords[i] * acc
		acc *= m.Shape[i]
	}
	return m.Data[idx]
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}
	return n
}

// SameShape reports whether the mask matches the given extents.
func (m *Mask) SameShape(shape []int) bool {
	if len(m.Shape) != len(shape) {
		return false
	}
	for i := range shape {
		if m.Shape[i] != shape[i] {
			return false
		}
	}
	return true
}
