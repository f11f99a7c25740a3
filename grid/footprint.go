package grid

import "github.com/pkg/errors"

// Footprint is a binary structuring element: a mask over a local coordinate
// window, 1 meaning "member of the neighborhood". It defines the window shape
// for rank filters and the neighbor set for flood fill.
type Footprint struct {
	// Data holds the membership flags in row-major order.
	Data []uint8
	// Shape is the extent of each axis. Same rank as the image it is used on.
	Shape []int
}

// NewFootprint binarizes arbitrary weights into a footprint: any nonzero weight
// becomes a member. len(weights) must equal the product of the shape.
func NewFootprint(weights []uint8, shape ...int) *Footprint {
	fp := &Footprint{
		Data:  make([]uint8, len(weights)),
		Shape: append([]int(nil), shape...),
	}
	for i, w := range weights {
		if w != 0 {
			fp.Data[i] = 1
		}
	}
	return fp
}

// Square returns a fully-set n x n footprint.
func Square(n int) *Footprint {
	return ones(n, n)
}

// Rect returns a fully-set h x w footprint.
func Rect(h, w int) *Footprint {
	return ones(h, w)
}

// Cube returns a fully-set n x n x n footprint.
func Cube(n int) *Footprint {
	return ones(n, n, n)
}

// Disk returns a circular footprint of the given radius: offsets whose squared
// euclidean distance from the center is at most r*r.
func Disk(r int) *Footprint {
	n := 2*r + 1
	fp := &Footprint{Data: make([]uint8, n*n), Shape: []int{n, n}}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dy, dx := y-r, x-r
			if dy*dy+dx*dx <= r*r {
				fp.Data[y*n+x] = 1
			}
		}
	}
	return fp
}

// Ball returns a spherical 3-D footprint of the given radius.
func Ball(r int) *Footprint {
	n := 2*r + 1
	fp := &Footprint{Data: make([]uint8, n*n*n), Shape: []int{n, n, n}}
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				dz, dy, dx := z-r, y-r, x-r
				if dz*dz+dy*dy+dx*dx <= r*r {
					fp.Data[(z*n+y)*n+x] = 1
				}
			}
		}
	}
	return fp
}

// Connectivity returns the 3^rank neighborhood whose offsets lie within the
// given squared distance of the center. conn=1 keeps axis neighbors only;
// conn=rank (or any larger value) is full connectivity including diagonals.
// Values outside [1, rank] are clipped.
func Connectivity(rank, conn int) *Footprint {
	if conn < 1 {
		conn = 1
	}
	if conn > rank {
		conn = rank
	}
	shape := make([]int, rank)
	n := 1
	for i := range shape {
		shape[i] = 3
		n *= 3
	}
	fp := &Footprint{Data: make([]uint8, n), Shape: shape}
	coords := make([]int, rank)
	for i := 0; i < n; i++ {
		unravel(i, shape, coords)
		dist := 0
		for _, c := range coords {
			d := c - 1
			dist += d * d
		}
		if dist <= conn {
			fp.Data[i] = 1
		}
	}
	return fp
}

// ones builds a fully-set footprint with the given shape.
func ones(shape ...int) *Footprint {
	n := 1
	for _, s := range shape {
		n *= s
	}
	fp := &Footprint{Data: make([]uint8, n), Shape: append([]int(nil), shape...)}
	for i := range fp.Data {
		fp.Data[i] = 1
	}
	return fp
}

// Rank returns the number of axes.
func (fp *Footprint) Rank() int { return len(fp.Shape) }

// Count returns the footprint cardinality (number of members).
func (fp *Footprint) Count() int {
	n := 0
	for _, v := range fp.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Member reports membership at the given window coordinates. Coordinates
// outside the bounding box are non-members.
func (fp *Footprint) Member(coords ...int) bool {
	idx := 0
	acc := 1
	for i := len(fp.Shape) - 1; i >= 0; i-- {
		if coords[i] < 0 || coords[i] >= fp.Shape[i] {
			return false
		}
		idx += coords[i] * acc
		acc *= fp.Shape[i]
	}
	return fp.Data[idx] != 0
}

// Center resolves the footprint center after applying the per-axis shift. The
// default center is extent/2 on each axis. The shifted center must stay inside
// the bounding box on every axis or ErrInvalidFootprint is returned.
func (fp *Footprint) Center(shift ...int) ([]int, error) {
	if len(shift) != 0 && len(shift) != len(fp.Shape) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"shift has %d axes, footprint has %d", len(shift), len(fp.Shape))
	}
	center := make([]int, len(fp.Shape))
	for i, ext := range fp.Shape {
		c := ext / 2
		if len(shift) != 0 {
			c += shift[i]
		}
		if c < 0 || c > ext-1 {
			return nil, errors.Wrapf(ErrInvalidFootprint,
				"axis %d: center %d outside [0, %d]", i, c, ext-1)
		}
		center[i] = c
	}
	return center, nil
}

// Clone returns a deep copy.
func (fp *Footprint) Clone() *Footprint {
	out := &Footprint{
		Data:  append([]uint8(nil), fp.Data...),
		Shape: append([]int(nil), fp.Shape...),
	}
	return out
}

// unravel converts a linear index to per-axis coordinates for the given shape.
func unravel(idx int, shape, coords []int) {
	for i := len(shape) - 1; i >= 0; i-- {
		coords[i] = idx % shape[i]
		idx /= shape[i]
	}
}
