package gif

import (
	"fmt"

	"golang.org/x/image/draw"
)

// Encoder assembles an animated GIF from a sequence of fixed-size RGBA8
// frames. Frames are quantized against the shared global palette as they
// are added and compressed during Encode; the whole pipeline is synchronous
// and single-goroutine.
//
// Frames must be added in their final display order. Encode is repeatable:
// for the same frame sequence it deterministically returns the same bytes.
type Encoder struct {
	width     int
	height    int
	palette   *Palette
	loopCount uint16
	scaler    draw.Scaler
	frames    []frame
}

// frame holds the quantized index buffer and display delay for one frame.
type frame struct {
	indices []byte
	delayCS uint16
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLoopCount sets the animation loop count written to the looping
// extension. 0 (the default) means repeat forever. Values outside 0..65535
// are capped at the field's range.
func WithLoopCount(n int) Option {
	return func(e *Encoder) {
		if n < 0 {
			n = 0
		}
		if n > 0xFFFF {
			n = 0xFFFF
		}
		e.loopCount = uint16(n)
	}
}

// WithResampler sets the scaler AddImage uses when a source image does not
// match the encoder's dimensions. The default is draw.NearestNeighbor.
func WithResampler(s draw.Scaler) Option {
	return func(e *Encoder) {
		e.scaler = s
	}
}

// NewEncoder creates an encoder for frames of the given fixed dimensions.
func NewEncoder(width, height int, opts ...Option) *Encoder {
	e := &Encoder{
		width:   width,
		height:  height,
		palette: NewPalette(),
		scaler:  draw.NearestNeighbor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Width returns the fixed frame width in pixels.
func (e *Encoder) Width() int { return e.width }

// Height returns the fixed frame height in pixels.
func (e *Encoder) Height() int { return e.height }

// FrameCount returns the number of frames added so far.
func (e *Encoder) FrameCount() int { return len(e.frames) }

// AddFrame appends one frame. rgba must hold exactly width*height RGBA8
// samples in row-major order; anything else fails with ErrInvalidFrame
// (the buffer is validated defensively rather than trusted). delayMS is
// the display delay in milliseconds, stored in hundredths of a second by
// integer division. The buffer is only read; the encoder keeps no
// reference to it after AddFrame returns.
func (e *Encoder) AddFrame(rgba []byte, delayMS int) error {
	if err := e.validateDimensions(); err != nil {
		return err
	}
	pixels := e.width * e.height
	if len(rgba) != pixels*4 {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidFrame, len(rgba), pixels*4)
	}
	e.frames = append(e.frames, frame{
		indices: e.palette.quantize(rgba, pixels),
		delayCS: delayToCentiseconds(delayMS),
	})
	return nil
}

// Encode produces the complete file for all frames added so far. With zero
// frames it fails with ErrNoFrames and returns no bytes; the operation is
// atomic either way.
func (e *Encoder) Encode() ([]byte, error) {
	if err := e.validateDimensions(); err != nil {
		return nil, err
	}
	if len(e.frames) == 0 {
		return nil, ErrNoFrames
	}

	w := &containerWriter{}
	w.writeLogicalScreen(e.width, e.height, e.palette)
	w.writeLoopExtension(e.loopCount)

	for i, f := range e.frames {
		compressed := compressFrame(f.indices)
		w.writeGraphicControl(f.delayCS)
		w.writeImageDescriptor(e.width, e.height)
		w.writeImageData(compressed)
		Logger().Debug("frame encoded",
			"frame", i, "pixels", len(f.indices), "compressed", len(compressed))
	}

	w.writeTrailer()

	out := w.bytes()
	Logger().Debug("animation encoded",
		"frames", len(e.frames), "width", e.width, "height", e.height, "bytes", len(out))
	return out, nil
}

func (e *Encoder) validateDimensions() error {
	if e.width < 1 || e.width > 0xFFFF || e.height < 1 || e.height > 0xFFFF {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, e.width, e.height)
	}
	return nil
}

// delayToCentiseconds converts milliseconds to the wire delay unit of
// hundredths of a second, truncating. Delays past the 16-bit field are
// capped rather than wrapped.
func delayToCentiseconds(delayMS int) uint16 {
	if delayMS < 0 {
		return 0
	}
	cs := delayMS / 10
	if cs > 0xFFFF {
		return 0xFFFF
	}
	return uint16(cs)
}
