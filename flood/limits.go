package flood

import (
	"math"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-rank/grid"
)

// valueLimits is the numeric policy for tolerance arithmetic: the representable
// range of the pixel domain, used to saturate the tolerance bounds so
// seed +/- tolerance can never overflow the type.
func valueLimits[T grid.Value]() (lo, hi float64, err error) {
	var probe T
	switch any(probe).(type) {
	case uint8:
		return 0, math.MaxUint8, nil
	case uint16:
		return 0, math.MaxUint16, nil
	case int32:
		return math.MinInt32, math.MaxInt32, nil
	case float32:
		return -math.MaxFloat32, math.MaxFloat32, nil
	case float64:
		return -math.MaxFloat64, math.MaxFloat64, nil
	default:
		// Named pixel types do not carry a registered range. Convert the image
		// to the plain underlying type before flooding with a tolerance.
		return 0, 0, errors.Wrapf(grid.ErrUnsupportedType,
			"%T has no registered value range, convert to its plain underlying type", probe)
	}
}

// toleranceBounds clamps the inclusive membership window around the seed value
// to the domain's representable range.
func toleranceBounds[T grid.Value](seed T, tol float64) (low, high float64, err error) {
	lo, hi, err := valueLimits[T]()
	if err != nil {
		return 0, 0, err
	}
	low = float64(seed) - tol
	if low < lo {
		low = lo
	}
	high = float64(seed) + tol
	if high > hi {
		high = hi
	}
	return low, high, nil
}
