package images

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-rank/grid"
	"github.com/nvr-ai/go-rank/rank"
)

// TensorFromGrid copies a grid into a dense tensor of the same shape and
// element type, for pipelines that post-process filter outputs with tensor
// math.
func TensorFromGrid[T grid.Pixel](g *grid.Grid[T]) *tensor.Dense {
	backing := make([]T, len(g.Data))
	copy(backing, g.Data)
	return tensor.New(tensor.WithShape(g.Shape...), tensor.WithBacking(backing))
}

// GridFromTensor copies a uint8 dense tensor into a grid.
//
// Arguments:
// - t: The source tensor. Element type must be uint8.
//
// Returns:
// - *grid.Grid[uint8]: A grid with the tensor's shape.
// - error: An error if the element type differs.
func GridFromTensor(t *tensor.Dense) (*grid.Grid[uint8], error) {
	data, ok := t.Data().([]uint8)
	if !ok {
		return nil, errors.Errorf("expected uint8 tensor, got %v", t.Dtype())
	}
	g := grid.New[uint8](t.Shape()...)
	copy(g.Data, data)
	return g, nil
}

// TensorFromField copies a windowed histogram field into a rank-3 float64
// tensor shaped (rows, cols, bins), one normalized histogram per pixel.
func TensorFromField(f *rank.VectorField) *tensor.Dense {
	backing := make([]float64, len(f.Data))
	copy(backing, f.Data)
	return tensor.New(tensor.WithShape(f.Rows, f.Cols, f.Bins), tensor.WithBacking(backing))
}

// GridFromTensor16 copies a uint16 dense tensor into a wide-domain grid.
//
// Arguments:
// - t: The source tensor. Element type must be uint16.
//
// Returns:
// - *grid.Grid[uint16]: A grid with the tensor's shape.
// - error: An error if the element type differs.
func GridFromTensor16(t *tensor.Dense) (*grid.Grid[uint16], error) {
	data, ok := t.Data().([]uint16)
	if !ok {
		return nil, errors.Errorf("expected uint16 tensor, got %v", t.Dtype())
	}
	g := grid.New[uint16](t.Shape()...)
	copy(g.Data, data)
	return g, nil
}
