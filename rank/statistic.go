package rank

import (
	"math"

	"github.com/pkg/errors"
)

// Statistic selects the reduction derived from the local histogram at each
// window position. Every statistic is a pure function of the histogram state,
// the center pixel value and the bin count; the scan driver is shared.
type Statistic int

const (
	// Minimum is the smallest value inside the window.
	Minimum Statistic = iota
	// Maximum is the largest value inside the window.
	Maximum
	// Mean is the truncated arithmetic mean of the window.
	Mean
	// GeometricMean is exp(mean of log(v+1)) - 1, the log-domain form that
	// tolerates zero-valued pixels.
	GeometricMean
	// SubtractMean is (pixel - mean)/2 + bins/2 - 1, the halved and offset
	// difference that compensates potential underflow.
	SubtractMean
	// Median is the first bin whose cumulative count reaches ceil(pop/2).
	Median
	// Modal is the most frequent value; ties resolve to the lowest bin.
	Modal
	// Autolevel stretches the window range onto the full value range.
	Autolevel
	// Equalize maps the pixel through the window's cumulative distribution.
	Equalize
	// Gradient is Maximum - Minimum.
	Gradient
	// EnhanceContrast snaps the pixel to whichever of the window extrema it is
	// closer to; ties favor the maximum.
	EnhanceContrast
	// Pop is the number of pixels covered by both footprint and mask.
	Pop
	// Sum is the window sum with native modular overflow.
	Sum
	// Threshold is 1 when the pixel exceeds the window mean, else 0.
	Threshold
	// NoiseFilter is the smallest absolute difference between the pixel and
	// any neighborhood value; the footprint must not contain the center.
	NoiseFilter
	// Entropy is the Shannon entropy of the window distribution in bits.
	Entropy
	// Otsu is the threshold maximizing inter-class variance in the window.
	Otsu
	// Majority is the most frequent value, an alias of Modal.
	Majority
)

var statisticNames = map[Statistic]string{
	Minimum:         "minimum",
	Maximum:         "maximum",
	Mean:            "mean",
	GeometricMean:   "geometric_mean",
	SubtractMean:    "subtract_mean",
	Median:          "median",
	Modal:           "modal",
	Autolevel:       "autolevel",
	Equalize:        "equalize",
	Gradient:        "gradient",
	EnhanceContrast: "enhance_contrast",
	Pop:             "pop",
	Sum:             "sum",
	Threshold:       "threshold",
	NoiseFilter:     "noise_filter",
	Entropy:         "entropy",
	Otsu:            "otsu",
	Majority:        "majority",
}

func (s Statistic) String() string {
	if name, ok := statisticNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStatistic resolves a statistic by its canonical name.
func ParseStatistic(name string) (Statistic, error) {
	for s, n := range statisticNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errors.Errorf("unknown statistic %q", name)
}

// extract derives the statistic from the current histogram state. Numeric edge
// cases (empty window, max == min) are defined outputs, never errors.
func (s Statistic) extract(h *histogram, center uint32, bins int) float64 {
	switch s {
	case Minimum:
		if h.pop == 0 {
			return 0
		}
		return float64(h.min())
	case Maximum:
		if h.pop == 0 {
			return 0
		}
		return float64(h.max())
	case Mean:
		if h.pop == 0 {
			return 0
		}
		return float64(h.sum) / float64(h.pop)
	case GeometricMean:
		if h.pop == 0 {
			return 0
		}
		logSum := 0.0
		for i, c := range h.counts {
			if c != 0 {
				logSum += float64(c) * math.Log(float64(i)+1)
			}
		}
		return math.Exp(logSum/float64(h.pop)) - 1
	case SubtractMean:
		if h.pop == 0 {
			return 0
		}
		mean := float64(h.sum) / float64(h.pop)
		return (float64(center)-mean)/2 + float64(bins)/2 - 1
	case Median:
		if h.pop == 0 {
			return 0
		}
		target := (h.pop + 1) / 2
		var cum uint32
		for i, c := range h.counts {
			cum += c
			if cum >= target {
				return float64(i)
			}
		}
		return 0
	case Modal, Majority:
		if h.pop == 0 {
			return 0
		}
		best, bestCount := 0, uint32(0)
		for i, c := range h.counts {
			if c > bestCount {
				best, bestCount = i, c
			}
		}
		return float64(best)
	case Autolevel:
		if h.pop == 0 {
			return 0
		}
		lo, hi := h.min(), h.max()
		if hi == lo {
			return float64(center)
		}
		// The center can sit outside [lo, hi] when a mask or a center-free
		// footprint keeps it out of the window, so stay in float.
		return (float64(center) - float64(lo)) * float64(bins-1) / float64(hi-lo)
	case Equalize:
		if h.pop == 0 {
			return 0
		}
		var cum uint32
		for i := uint32(0); i <= center; i++ {
			cum += h.counts[i]
		}
		return float64(bins-1) * float64(cum) / float64(h.pop)
	case Gradient:
		if h.pop == 0 {
			return 0
		}
		return float64(h.max() - h.min())
	case EnhanceContrast:
		if h.pop == 0 {
			return 0
		}
		lo, hi := h.min(), h.max()
		if float64(hi)-float64(center) <= float64(center)-float64(lo) {
			return float64(hi)
		}
		return float64(lo)
	case Pop:
		return float64(h.pop)
	case Sum:
		// The driver applies the modular cast; here the exact sum.
		return float64(h.sum)
	case Threshold:
		if h.pop == 0 {
			return 0
		}
		if float64(center) > float64(h.sum)/float64(h.pop) {
			return 1
		}
		return 0
	case NoiseFilter:
		if h.pop == 0 {
			return 0
		}
		best := math.MaxFloat64
		for i, c := range h.counts {
			if c == 0 {
				continue
			}
			d := math.Abs(float64(i) - float64(center))
			if d < best {
				best = d
			}
		}
		return best
	case Entropy:
		if h.pop == 0 {
			return 0
		}
		e := 0.0
		pop := float64(h.pop)
		for _, c := range h.counts {
			if c != 0 {
				p := float64(c) / pop
				e -= p * math.Log2(p)
			}
		}
		return e
	case Otsu:
		return float64(h.otsu())
	}
	return 0
}

// min returns the smallest nonzero bin. Callers guard pop > 0.
func (h *histogram) min() uint32 {
	for i, c := range h.counts {
		if c != 0 {
			return uint32(i)
		}
	}
	return 0
}

// max returns the largest nonzero bin. Callers guard pop > 0.
func (h *histogram) max() uint32 {
	for i := len(h.counts) - 1; i >= 0; i-- {
		if h.counts[i] != 0 {
			return uint32(i)
		}
	}
	return 0
}

// otsu exhaustively scans every candidate threshold and returns the one
// maximizing the inter-class variance w0*w1*(mu0-mu1)^2. Linear in the bin
// count per pixel; a known performance cliff for wide-domain images, kept by
// contract rather than approximated.
func (h *histogram) otsu() uint32 {
	if h.pop == 0 {
		return 0
	}
	var (
		bestT   uint32
		bestVar float64
		p0      float64
		sum0    float64
	)
	total := float64(h.pop)
	totalSum := float64(h.sum)
	for t, c := range h.counts {
		p0 += float64(c)
		sum0 += float64(t) * float64(c)
		p1 := total - p0
		if p0 == 0 || p1 == 0 {
			continue
		}
		mu0 := sum0 / p0
		mu1 := (totalSum - sum0) / p1
		d := mu0 - mu1
		v := p0 * p1 * d * d
		if v > bestVar {
			bestVar = v
			bestT = uint32(t)
		}
	}
	return bestT
}
