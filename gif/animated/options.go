package animated

import (
	"fmt"

	"github.com/cocosip/go-gif-codec/codec"
)

// Options contains animated GIF encoding options
type Options struct {
	// LoopCount is the animation repeat count (0 = loop forever, the default)
	LoopCount int
}

// NewOptions returns the default animated GIF options
func NewOptions() *Options {
	return &Options{
		LoopCount: 0,
	}
}

// WithLoopCount sets the loop count and returns the options for chaining
func (o *Options) WithLoopCount(n int) *Options {
	o.LoopCount = n
	return o
}

// Validate checks if the options are valid
func (o *Options) Validate() error {
	if o.LoopCount < 0 || o.LoopCount > 0xFFFF {
		return fmt.Errorf("%w: loop count %d outside 0..65535", codec.ErrInvalidParameter, o.LoopCount)
	}
	return nil
}
