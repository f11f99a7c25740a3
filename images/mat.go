package images

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-rank/grid"
)

// FromMat copies a single-channel 8-bit OpenCV Mat into a grid.
//
// Arguments:
// - mat: The source Mat. Must be CV8UC1.
//
// Returns:
// - *grid.Grid[uint8]: A (rows, cols) grid of the pixel values.
// - error: An error if the Mat is empty or not single-channel 8-bit.
func FromMat(mat gocv.Mat) (*grid.Grid[uint8], error) {
	if mat.Empty() {
		return nil, errors.Wrap(grid.ErrEmptyInput, "mat is empty")
	}
	if mat.Type() != gocv.MatTypeCV8UC1 {
		return nil, errors.Errorf("expected CV8UC1 mat, got type %d", mat.Type())
	}
	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "reading mat data")
	}
	g := grid.New[uint8](mat.Rows(), mat.Cols())
	copy(g.Data, data)
	return g, nil
}

// FromMat16 copies a single-channel 16-bit OpenCV Mat into a wide-domain grid.
//
// Arguments:
// - mat: The source Mat. Must be CV16UC1.
//
// Returns:
// - *grid.Grid[uint16]: A (rows, cols) grid of the pixel values.
// - error: An error if the Mat is empty or not single-channel 16-bit.
func FromMat16(mat gocv.Mat) (*grid.Grid[uint16], error) {
	if mat.Empty() {
		return nil, errors.Wrap(grid.ErrEmptyInput, "mat is empty")
	}
	if mat.Type() != gocv.MatTypeCV16UC1 {
		return nil, errors.Errorf("expected CV16UC1 mat, got type %d", mat.Type())
	}
	data, err := mat.DataPtrUint16()
	if err != nil {
		return nil, errors.Wrap(err, "reading mat data")
	}
	g := grid.New[uint16](mat.Rows(), mat.Cols())
	copy(g.Data, data)
	return g, nil
}

// ToMat copies an 8-bit 2-D grid into a freshly allocated CV8UC1 Mat. The
// caller owns the Mat and must Close it.
//
// Arguments:
// - g: The source 2-D grid.
//
// Returns:
// - gocv.Mat: The single-channel Mat.
// - error: An error if the copy fails.
func ToMat(g *grid.Grid[uint8]) (gocv.Mat, error) {
	mat := gocv.NewMatWithSize(g.Shape[0], g.Shape[1], gocv.MatTypeCV8UC1)
	data, err := mat.DataPtrUint8()
	if err != nil {
		mat.Close()
		return gocv.NewMat(), errors.Wrap(err, "mapping mat data")
	}
	copy(data, g.Data)
	return mat, nil
}

// ToMat16 copies a wide-domain 2-D grid into a freshly allocated CV16UC1 Mat.
// The caller owns the Mat and must Close it.
//
// Arguments:
// - g: The source 2-D grid.
//
// Returns:
// - gocv.Mat: The single-channel Mat.
// - error: An error if the copy fails.
func ToMat16(g *grid.Grid[uint16]) (gocv.Mat, error) {
	mat := gocv.NewMatWithSize(g.Shape[0], g.Shape[1], gocv.MatTypeCV16UC1)
	data, err := mat.DataPtrUint16()
	if err != nil {
		mat.Close()
		return gocv.NewMat(), errors.Wrap(err, "mapping mat data")
	}
	copy(data, g.Data)
	return mat, nil
}
