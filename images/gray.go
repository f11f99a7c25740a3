// Package images - conversion between pixel grids and the Go image types,
// OpenCV Mats and gorgonia tensors. This is the normalization layer: the
// engines only ever see grids in one of the two canonical unsigned depths.
package images

import (
	"image"
	"image/color"

	"github.com/rs/zerolog"

	"github.com/nvr-ai/go-rank/grid"
)

var log = zerolog.Nop()

// SetLogger installs the logger used for precision-loss warnings. The default
// discards everything.
func SetLogger(l zerolog.Logger) { log = l }

// FromGray copies an 8-bit grayscale image into a grid.
//
// Arguments:
// - img: The source grayscale image.
//
// Returns:
// - *grid.Grid[uint8]: A (height, width) grid of the pixel values.
func FromGray(img *image.Gray) *grid.Grid[uint8] {
	b := img.Bounds()
	g := grid.New[uint8](b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(g.Data[y*b.Dx():], img.Pix[off:off+b.Dx()])
	}
	return g
}

// FromGray16 copies a 16-bit grayscale image into a wide-domain grid.
//
// Arguments:
// - img: The source 16-bit grayscale image.
//
// Returns:
// - *grid.Grid[uint16]: A (height, width) grid of the pixel values.
func FromGray16(img *image.Gray16) *grid.Grid[uint16] {
	b := img.Bounds()
	g := grid.New[uint16](b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			off := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			g.Data[y*b.Dx()+x] = uint16(img.Pix[off])<<8 | uint16(img.Pix[off+1])
		}
	}
	return g
}

// FromImage converts any image to an 8-bit grid through the grayscale color
// model. Converting from a wider or colored source loses precision; the
// conversion is logged so callers can silence it by converting manually.
//
// Arguments:
// - img: The source image.
//
// Returns:
// - *grid.Grid[uint8]: A (height, width) grid of the luma values.
func FromImage(img image.Image) *grid.Grid[uint8] {
	if gray, ok := img.(*image.Gray); ok {
		return FromGray(gray)
	}
	log.Warn().
		Str("source", colorModelName(img)).
		Msg("possible precision loss converting image to 8-bit grayscale")
	b := img.Bounds()
	g := grid.New[uint8](b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			g.Data[y*b.Dx()+x] = c.Y
		}
	}
	return g
}

// ToGray copies an 8-bit grid back into a grayscale image.
//
// Arguments:
// - g: The source 2-D grid.
//
// Returns:
// - *image.Gray: The grayscale image.
func ToGray(g *grid.Grid[uint8]) *image.Gray {
	rows, cols := g.Shape[0], g.Shape[1]
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		copy(img.Pix[y*img.Stride:], g.Data[y*cols:(y+1)*cols])
	}
	return img
}

// ToGray16 copies a wide-domain grid back into a 16-bit grayscale image.
//
// Arguments:
// - g: The source 2-D grid.
//
// Returns:
// - *image.Gray16: The 16-bit grayscale image.
func ToGray16(g *grid.Grid[uint16]) *image.Gray16 {
	rows, cols := g.Shape[0], g.Shape[1]
	img := image.NewGray16(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.SetGray16(x, y, color.Gray16{Y: g.Data[y*cols+x]})
		}
	}
	return img
}

// GrayFromFloat rescales a float64 grid onto the 8-bit range for display. The
// scale maps [0, max] to [0, 255]; a non-positive max uses the grid maximum.
func GrayFromFloat(g *grid.Grid[float64], max float64) *image.Gray {
	if max <= 0 {
		for _, v := range g.Data {
			if v > max {
				max = v
			}
		}
		if max == 0 {
			max = 1
		}
	}
	rows, cols := g.Shape[0], g.Shape[1]
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := g.Data[y*cols+x] * 255 / max
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

// MaskToGray renders a boolean mask as a black and white image.
func MaskToGray(m *grid.Mask) *image.Gray {
	rows, cols := m.Shape[0], m.Shape[1]
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if m.Data[y*cols+x] {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func colorModelName(img image.Image) string {
	switch img.(type) {
	case *image.Gray16:
		return "gray16"
	case *image.RGBA:
		return "rgba"
	case *image.NRGBA:
		return "nrgba"
	case *image.YCbCr:
		return "ycbcr"
	default:
		return "unknown"
	}
}
