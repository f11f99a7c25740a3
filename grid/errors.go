package grid

import "github.com/pkg/errors"

// Validation failures shared by both engines. All of them are detected before
// any output buffer is written.
var (
	// ErrInvalidFootprint means the footprint center, after applying the
	// per-axis shift, falls outside the footprint bounding box.
	ErrInvalidFootprint = errors.New("footprint center outside footprint bounds")

	// ErrDimensionMismatch means the footprint or mask rank does not match the
	// image rank, or a shape differs where identical shapes are required.
	ErrDimensionMismatch = errors.New("image and neighborhood dimensions do not match")

	// ErrInPlace means the output buffer aliases the input image. Rank filters
	// cannot run in place.
	ErrInPlace = errors.New("cannot perform rank operation in place")

	// ErrUnsupportedType means tolerance arithmetic was requested on a value
	// domain without reliable range handling. Convert the image to one of the
	// plain supported types (uint8, uint16, int32, float32, float64) first.
	ErrUnsupportedType = errors.New("unsupported value type for tolerance arithmetic")

	// ErrEmptyInput means an axis has zero extent where the operation requires
	// pixels. Flood fill treats this as a defined degenerate success instead.
	ErrEmptyInput = errors.New("image has a zero-extent axis")
)
