// Package animated provides the animated GIF codec implementation.
package animated

import (
	"fmt"

	"github.com/cocosip/go-gif-codec/codec"
	"github.com/cocosip/go-gif-codec/gif"
)

var _ codec.Codec = (*Codec)(nil)

const (
	codecName = "gif-animated"
	mediaType = "image/gif"
)

// Codec implements the animated GIF codec.
// Media type: image/gif
type Codec struct{}

// NewCodec creates a new animated GIF codec
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns the codec name
func (c *Codec) Name() string {
	return codecName
}

// UID returns the codec's media type identifier
func (c *Codec) UID() string {
	return mediaType
}

// Encode encodes RGBA8 frames to an animated GIF
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	if err := c.validateEncodeInputs(params); err != nil {
		return nil, err
	}
	opts := c.extractOptions(params.Options)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid GIF options: %w", err)
	}

	enc := gif.NewEncoder(params.Width, params.Height, gif.WithLoopCount(opts.LoopCount))
	for i, frame := range params.Frames {
		delayMS := codec.DefaultDelayMS
		if len(params.DelaysMS) > 0 {
			delayMS = params.DelaysMS[i]
		}
		if err := enc.AddFrame(frame, delayMS); err != nil {
			return nil, fmt.Errorf("GIF encode failed for frame %d: %w", i, err)
		}
	}
	return enc.Encode()
}

func (c *Codec) validateEncodeInputs(params codec.EncodeParams) error {
	if params.Width < 1 || params.Height < 1 {
		return fmt.Errorf("%w: %dx%d", codec.ErrInvalidDimensions, params.Width, params.Height)
	}
	if len(params.DelaysMS) > 0 && len(params.DelaysMS) != len(params.Frames) {
		return fmt.Errorf("%w: %d delays for %d frames",
			codec.ErrInvalidParameter, len(params.DelaysMS), len(params.Frames))
	}
	return nil
}

func (c *Codec) extractOptions(options codec.Options) *Options {
	if options == nil {
		return NewOptions()
	}
	if o, ok := options.(*Options); ok {
		return o
	}
	return NewOptions()
}

// Decode decodes an animated GIF to uncompressed RGBA8 frames
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", codec.ErrInvalidParameter)
	}
	anim, err := gif.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("GIF decode failed: %w", err)
	}
	return &codec.DecodeResult{
		Frames:    anim.Frames,
		Width:     anim.Width,
		Height:    anim.Height,
		DelaysMS:  anim.DelaysMS,
		LoopCount: anim.LoopCount,
	}, nil
}

// RegisterAnimatedGIFCodec registers the animated GIF codec with the global registry
func RegisterAnimatedGIFCodec() {
	codec.Register(NewCodec())
}

func init() {
	RegisterAnimatedGIFCodec()
}
