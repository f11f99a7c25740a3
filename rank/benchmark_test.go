package rank

import (
	"testing"

	"github.com/nvr-ai/go-rank/grid"
)

func benchImage(b *testing.B, rows, cols int) *grid.Grid[uint8] {
	b.Helper()
	img := grid.New[uint8](rows, cols)
	for i := range img.Data {
		img.Data[i] = uint8(i * 31)
	}
	return img
}

func BenchmarkMedianFilter(b *testing.B) {
	img := benchImage(b, 256, 256)
	fp := grid.Disk(5)
	out := grid.New[uint8](img.Shape...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ApplyInto(out, img, fp, Median, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMeanFilter(b *testing.B) {
	img := benchImage(b, 256, 256)
	fp := grid.Disk(5)
	out := grid.New[uint8](img.Shape...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ApplyInto(out, img, fp, Mean, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOtsuFilter(b *testing.B) {
	img := benchImage(b, 128, 128)
	fp := grid.Square(5)
	out := grid.New[uint8](img.Shape...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ApplyInto(out, img, fp, Otsu, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEntropyGrid(b *testing.B) {
	img := benchImage(b, 128, 128)
	fp := grid.Disk(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EntropyGrid(img, fp, nil); err != nil {
			b.Fatal(err)
		}
	}
}
