package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-rank/grid"
)

func TestGrayRoundTrip(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(y*10 + x)})
		}
	}

	g := FromGray(src)
	require.Equal(t, []int{3, 4}, g.Shape)
	assert.Equal(t, uint8(21), g.At(2, 1))

	back := ToGray(g)
	assert.Equal(t, src.Pix, back.Pix)
}

func TestGray16RoundTrip(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 3, 2))
	src.SetGray16(2, 1, color.Gray16{Y: 40000})
	src.SetGray16(0, 0, color.Gray16{Y: 7})

	g := FromGray16(src)
	require.Equal(t, []int{2, 3}, g.Shape)
	assert.Equal(t, uint16(40000), g.At(1, 2))
	assert.Equal(t, uint16(7), g.At(0, 0))

	back := ToGray16(g)
	assert.Equal(t, src.Pix, back.Pix)
}

func TestFromImageColorSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	g := FromImage(src)
	require.Equal(t, []int{2, 2}, g.Shape)
	assert.Equal(t, uint8(255), g.At(0, 0))
	assert.Equal(t, uint8(0), g.At(1, 1))
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 7, 8, 9))
	src.SetRGBA(5, 7, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	g := FromImage(src)
	require.Equal(t, []int{2, 3}, g.Shape)
	assert.Equal(t, uint8(255), g.At(0, 0))
}

func TestGrayFromFloat(t *testing.T) {
	g := grid.FromData([]float64{0, 1, 2, 4}, 2, 2)

	img := GrayFromFloat(g, 0) // autoscale against max 4
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(127), img.GrayAt(0, 1).Y)

	clamped := GrayFromFloat(g, 2)
	assert.Equal(t, uint8(255), clamped.GrayAt(1, 1).Y)
}

func TestMaskToGray(t *testing.T) {
	m := grid.NewMask(2, 2)
	m.Data[1] = true
	img := MaskToGray(m)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 0).Y)
}
