// Package rank - sliding-window rank and statistics filters over dense 2-D/3-D
// unsigned-integer grids.
//
// The filters maintain a local histogram while the footprint window slides
// across the image in a boustrophedon (snake) path: only the pixels entering
// and leaving the window touch the histogram, so the per-pixel update cost is
// proportional to the footprint border, not the footprint area. The window is
// clipped at the image border; no padding value is ever histogrammed.
package rank

// histogram is the incremental local-histogram state. It is owned by exactly
// one scan for its duration; include and exclude are called once per pixel
// entering or leaving the window per step.
type histogram struct {
	// counts maps bin index to the number of window pixels holding that value.
	counts []uint32
	// pop is the total included population.
	pop uint32
	// sum is the running sum of included values. Overflow-free for any image
	// that fits in memory: 2^16 bins times 2^32 counts fits in 64 bits.
	sum uint64
}

func newHistogram(bins int) *histogram {
	return &histogram{counts: make([]uint32, bins)}
}

func (h *histogram) include(bin uint32) {
	h.counts[bin]++
	h.pop++
	h.sum += uint64(bin)
}

func (h *histogram) exclude(bin uint32) {
	h.counts[bin]--
	h.pop--
	h.sum -= uint64(bin)
}

func (h *histogram) reset() {
	for i := range h.counts {
		h.counts[i] = 0
	}
	h.pop = 0
	h.sum = 0
}
