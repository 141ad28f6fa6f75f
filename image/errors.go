package image

import (
	"errors"
)

// Error classes. Call sites wrap these with %w plus detail, so callers can
// classify a failure with errors.Is while still seeing the cause.
var (
	ErrorFormat  = errors.New("Invalid or unsupported Image Format")
	ErrDecode    = errors.New("image decode failed")
	ErrDimension = errors.New("invalid image dimension")
	ErrEncode    = errors.New("image encode failed")
)
