package rank

import (
	"github.com/nvr-ai/go-rank/grid"
)

// scan2D walks the image in snake order and keeps h equal, at every emit, to
// the multiset of masked footprint-covered pixel values in the window centered
// at the emitted position. The histogram is built in full once at the origin;
// every later move is an incremental border update. Windows are truncated at
// the image border, so the population near edges is below the footprint
// cardinality.
func scan2D[T grid.Pixel](img *grid.Grid[T], mask *grid.Mask, p *plan2D, h *histogram, emit func(y, x int)) {
	rows, cols := img.Shape[0], img.Shape[1]

	include := func(y, x int) {
		if y < 0 || y >= rows || x < 0 || x >= cols {
			return
		}
		if mask != nil && !mask.Data[y*cols+x] {
			return
		}
		h.include(uint32(img.Data[y*cols+x]))
	}
	exclude := func(y, x int) {
		if y < 0 || y >= rows || x < 0 || x >= cols {
			return
		}
		if mask != nil && !mask.Data[y*cols+x] {
			return
		}
		h.exclude(uint32(img.Data[y*cols+x]))
	}

	for _, m := range p.members {
		include(m.dy, m.dx)
	}

	x := 0
	for y := 0; y < rows; y++ {
		if y > 0 {
			// Row step: drop the north border of the old row, pull in the
			// south border of the new one.
			for _, m := range p.north {
				exclude(y-1+m.dy, x+m.dx)
			}
			for _, m := range p.south {
				include(y+m.dy, x+m.dx)
			}
		}
		emit(y, x)
		if y%2 == 0 {
			for x < cols-1 {
				for _, m := range p.west {
					exclude(y+m.dy, x+m.dx)
				}
				x++
				for _, m := range p.east {
					include(y+m.dy, x+m.dx)
				}
				emit(y, x)
			}
		} else {
			for x > 0 {
				for _, m := range p.east {
					exclude(y+m.dy, x+m.dx)
				}
				x--
				for _, m := range p.west {
					include(y+m.dy, x+m.dx)
				}
				emit(y, x)
			}
		}
	}
}

// scan3D runs the snake per z-slice with a full 3-D footprint. The histogram
// is rebuilt at each slice start; within a slice the updates are the same
// border steps as in 2-D, with every footprint layer participating.
func scan3D[T grid.Pixel](img *grid.Grid[T], mask *grid.Mask, p *plan3D, h *histogram, emit func(z, y, x int)) {
	planes, rows, cols := img.Shape[0], img.Shape[1], img.Shape[2]

	include := func(z, y, x int) {
		if z < 0 || z >= planes || y < 0 || y >= rows || x < 0 || x >= cols {
			return
		}
		if mask != nil && !mask.Data[(z*rows+y)*cols+x] {
			return
		}
		h.include(uint32(img.Data[(z*rows+y)*cols+x]))
	}
	exclude := func(z, y, x int) {
		if z < 0 || z >= planes || y < 0 || y >= rows || x < 0 || x >= cols {
			return
		}
		if mask != nil && !mask.Data[(z*rows+y)*cols+x] {
			return
		}
		h.exclude(uint32(img.Data[(z*rows+y)*cols+x]))
	}

	for z := 0; z < planes; z++ {
		h.reset()
		for _, m := range p.members {
			include(z+m.dz, m.dy, m.dx)
		}
		x := 0
		for y := 0; y < rows; y++ {
			if y > 0 {
				for _, m := range p.north {
					exclude(z+m.dz, y-1+m.dy, x+m.dx)
				}
				for _, m := range p.south {
					include(z+m.dz, y+m.dy, x+m.dx)
				}
			}
			emit(z, y, x)
			if y%2 == 0 {
				for x < cols-1 {
					for _, m := range p.west {
						exclude(z+m.dz, y+m.dy, x+m.dx)
					}
					x++
					for _, m := range p.east {
						include(z+m.dz, y+m.dy, x+m.dx)
					}
					emit(z, y, x)
				}
			} else {
				for x > 0 {
					for _, m := range p.east {
						exclude(z+m.dz, y+m.dy, x+m.dx)
					}
					x--
					for _, m := range p.west {
						include(z+m.dz, y+m.dy, x+m.dx)
					}
					emit(z, y, x)
				}
			}
		}
	}
}
