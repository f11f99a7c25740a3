package flood

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-rank/grid"
)

// regionsImage is the worked example used across the flood tests: three value
// regions plus two isolated corner pixels, one of which touches the main "1"
// region only diagonally.
func regionsImage() *grid.Grid[uint8] {
	return grid.FromData([]uint8{
		0, 0, 0, 0, 0, 0, 0,
		0, 1, 1, 0, 2, 2, 0,
		0, 1, 1, 0, 2, 2, 0,
		1, 0, 0, 0, 0, 0, 3,
	}, 4, 7)
}

func TestFloodFullConnectivityIncludesDiagonal(t *testing.T) {
	img := regionsImage()
	mask, err := Flood(img, []int{1, 1}, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, mask.Count())
	assert.True(t, mask.At(1, 1))
	assert.True(t, mask.At(2, 2))
	assert.True(t, mask.At(3, 0), "diagonal touch is connected at full connectivity")
	assert.False(t, mask.At(1, 4))
}

func TestFloodAxialConnectivityExcludesDiagonal(t *testing.T) {
	img := regionsImage()
	mask, err := Flood(img, []int{1, 1}, &Options{Connectivity: 1})
	require.NoError(t, err)

	assert.Equal(t, 4, mask.Count())
	assert.False(t, mask.At(3, 0), "diagonal touch is not connected at connectivity 1")
}

func TestFloodFillTolerance(t *testing.T) {
	img := regionsImage()
	tol := 1.0
	out, err := FloodFill(img, []int{0, 0}, 5, &Options{Tolerance: &tol})
	require.NoError(t, err)

	want := []uint8{
		5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 2, 2, 5,
		5, 5, 5, 5, 2, 2, 5,
		5, 5, 5, 5, 5, 5, 3,
	}
	assert.Equal(t, want, out.Data)
	assert.Equal(t, uint8(0), img.At(0, 0), "input must stay untouched")
}

func TestFloodFillInPlace(t *testing.T) {
	img := regionsImage()
	out, err := FloodFill(img, []int{1, 1}, 9, &Options{Connectivity: 1, InPlace: true})
	require.NoError(t, err)

	assert.Same(t, img, out)
	assert.Equal(t, uint8(9), img.At(2, 2))
}

func TestFloodSeedWrapsModuloExtent(t *testing.T) {
	img := regionsImage()

	// (-3, 8) wraps to (1, 1).
	mask, err := Flood(img, []int{-3, 8}, nil)
	require.NoError(t, err)
	assert.True(t, mask.At(1, 1))
	assert.Equal(t, 5, mask.Count())
}

func TestFloodEmptyAxis(t *testing.T) {
	img := grid.New[uint8](0, 5)
	mask, err := Flood(img, []int{0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, mask.Count())
	assert.Equal(t, []int{0, 5}, mask.Shape)
}

func TestFloodRankOne(t *testing.T) {
	img := grid.FromData([]uint8{7, 7, 0, 7, 7}, 5)
	mask, err := Flood(img, []int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false, false}, mask.Data)
}

func TestFloodRankThree(t *testing.T) {
	img := grid.New[uint8](3, 3, 3)
	// Two 7-voxels sharing only an edge: connected at conn>=2, not at conn=1.
	img.Set(7, 0, 0, 0)
	img.Set(7, 0, 1, 1)

	mask, err := Flood(img, []int{0, 0, 0}, &Options{Connectivity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, mask.Count())

	mask, err = Flood(img, []int{0, 0, 0}, &Options{Connectivity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, mask.Count())
}

func TestFloodToleranceSaturates(t *testing.T) {
	img := grid.FromData([]uint8{250, 255, 250, 200}, 2, 2)
	tol := 50.0

	// seed 255, window clamps to [205, 255]: the 200 stays out.
	mask, err := Flood(img, []int{0, 1}, &Options{Tolerance: &tol})
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Count())
	assert.False(t, mask.At(1, 1))
}

func TestFloodFloatGrid(t *testing.T) {
	img := grid.FromData([]float64{1.0, 1.05, 1.2, 5.0}, 1, 4)
	tol := 0.1
	mask, err := Flood(img, []int{0, 0}, &Options{Tolerance: &tol})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false}, mask.Data)
}

func TestFloodSignedGrid(t *testing.T) {
	img := grid.FromData([]int32{-5, -4, -5, 10}, 2, 2)
	tol := 1.0
	mask, err := Flood(img, []int{0, 0}, &Options{Tolerance: &tol})
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Count())
}

type labeledPixel uint8

func TestFloodNamedTypeToleranceUnsupported(t *testing.T) {
	img := grid.FromData([]labeledPixel{1, 1, 2, 2}, 2, 2)

	// Exact matching carries no numeric policy and works for named types.
	mask, err := Flood(img, []int{0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, mask.Count())

	tol := 1.0
	_, err = Flood(img, []int{0, 0}, &Options{Tolerance: &tol})
	require.Error(t, err)
	assert.True(t, errors.Is(err, grid.ErrUnsupportedType))
}

func TestFloodValidation(t *testing.T) {
	img := regionsImage()

	_, err := Flood(img, []int{1}, nil)
	assert.True(t, errors.Is(err, grid.ErrDimensionMismatch))

	_, err = Flood(img, []int{1, 1}, &Options{Footprint: grid.Cube(3)})
	assert.True(t, errors.Is(err, grid.ErrDimensionMismatch))

	_, err = Flood(img, []int{1, 1}, &Options{Footprint: grid.Square(5)})
	assert.True(t, errors.Is(err, grid.ErrInvalidFootprint))

	_, err = Flood(grid.New[uint8](), []int{}, nil)
	assert.True(t, errors.Is(err, grid.ErrEmptyInput))
}

func TestFloodCustomFootprint(t *testing.T) {
	// Horizontal-only adjacency: each row floods independently.
	fp := grid.NewFootprint([]uint8{1, 1, 1}, 1, 3)
	img := grid.FromData([]uint8{
		4, 4, 4,
		4, 4, 4,
	}, 2, 3)
	mask, err := Flood(img, []int{0, 0}, &Options{Footprint: fp})
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Count())
	assert.False(t, mask.At(1, 0))
}

// naiveFlood is a coordinate-space BFS reference for exact matching.
func naiveFlood(img *grid.Grid[uint8], seedY, seedX, conn int) *grid.Mask {
	rows, cols := img.Shape[0], img.Shape[1]
	mask := grid.NewMask(img.Shape...)
	target := img.At(seedY, seedX)
	queue := [][2]int{{seedY, seedX}}
	mask.Data[seedY*cols+seedX] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dy == 0 && dx == 0 {
					continue
				}
				if dy*dy+dx*dx > conn {
					continue
				}
				ny, nx := c[0]+dy, c[1]+dx
				if ny < 0 || ny >= rows || nx < 0 || nx >= cols {
					continue
				}
				i := ny*cols + nx
				if !mask.Data[i] && img.Data[i] == target {
					mask.Data[i] = true
					queue = append(queue, [2]int{ny, nx})
				}
			}
		}
	}
	return mask
}

func TestFloodMatchesNaiveBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	img := grid.New[uint8](15, 18)
	for i := range img.Data {
		img.Data[i] = uint8(rng.Intn(3)) // few labels, large regions
	}

	for _, conn := range []int{1, 2} {
		for trial := 0; trial < 8; trial++ {
			seedY, seedX := rng.Intn(15), rng.Intn(18)
			got, err := Flood(img, []int{seedY, seedX}, &Options{Connectivity: conn})
			require.NoError(t, err)
			want := naiveFlood(img, seedY, seedX, conn)
			assert.Equal(t, want.Data, got.Data, "conn=%d seed=(%d,%d)", conn, seedY, seedX)
		}
	}
}
