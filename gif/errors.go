package gif

import "errors"

var (
	// ErrNoFrames is returned by Encode when no frames were added
	ErrNoFrames = errors.New("gif: no frames added")

	// ErrInvalidFrame is returned when a frame buffer does not match the
	// encoder's width*height*4 RGBA8 layout
	ErrInvalidFrame = errors.New("gif: frame buffer size mismatch")

	// ErrInvalidDimensions is returned when width or height is outside 1..65535
	ErrInvalidDimensions = errors.New("gif: dimensions must be in 1..65535")
)
