// Package dicomexport renders multi-frame DICOM pixel data (cine loops) as
// animated GIF.
package dicomexport

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/go-gif-codec/gif"
)

// Options contains parameters for cine-loop export
type Options struct {
	// FrameRate is the playback rate in frames per second (default 10).
	// The per-frame delay is 1000/FrameRate milliseconds.
	FrameRate int

	// LoopCount is the animation repeat count (0 = loop forever)
	LoopCount int
}

// DefaultOptions returns the default export options
func DefaultOptions() *Options {
	return &Options{
		FrameRate: 10,
		LoopCount: 0,
	}
}

// Validate checks if the options are valid
func (o *Options) Validate() error {
	if o.FrameRate < 1 || o.FrameRate > 100 {
		return fmt.Errorf("frame rate must be in 1..100, got %d", o.FrameRate)
	}
	if o.LoopCount < 0 || o.LoopCount > 0xFFFF {
		return fmt.Errorf("loop count must be in 0..65535, got %d", o.LoopCount)
	}
	return nil
}

// Export encodes all frames of the given pixel data as an animated GIF.
// Supported inputs are uncompressed 8-bit unsigned MONOCHROME (1 sample per
// pixel) and RGB (3 samples per pixel) frames; anything else is rejected
// before any frame is read. A nil opts uses DefaultOptions.
func Export(pixelData imagetypes.PixelData, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid export options: %w", err)
	}

	frameInfo, samples, err := validateExportInputs(pixelData)
	if err != nil {
		return nil, err
	}

	width := int(frameInfo.Width)
	height := int(frameInfo.Height)
	delayMS := 1000 / opts.FrameRate

	enc := gif.NewEncoder(width, height, gif.WithLoopCount(opts.LoopCount))
	frameCount := pixelData.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := pixelData.GetFrame(frameIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}
		if len(frameData) < width*height*samples {
			return nil, fmt.Errorf("frame %d pixel data truncated: got %d bytes, want %d",
				frameIndex, len(frameData), width*height*samples)
		}
		rgba := expandToRGBA(frameData, width*height, samples)
		if err := enc.AddFrame(rgba, delayMS); err != nil {
			return nil, fmt.Errorf("GIF encode failed for frame %d: %w", frameIndex, err)
		}
	}

	return enc.Encode()
}

func validateExportInputs(pixelData imagetypes.PixelData) (*imagetypes.FrameInfo, int, error) {
	if pixelData == nil {
		return nil, 0, fmt.Errorf("source PixelData cannot be nil")
	}
	if pixelData.IsEncapsulated() {
		return nil, 0, fmt.Errorf("encapsulated pixel data must be decoded before export")
	}
	frameInfo := pixelData.GetFrameInfo()
	if frameInfo == nil {
		return nil, 0, fmt.Errorf("failed to get frame info from source pixel data")
	}
	if int(frameInfo.BitsAllocated) != 8 || int(frameInfo.BitsStored) != 8 {
		return nil, 0, fmt.Errorf("only 8-bit pixel data is supported, got %d bits stored / %d allocated",
			int(frameInfo.BitsStored), int(frameInfo.BitsAllocated))
	}
	if frameInfo.PixelRepresentation != 0 {
		return nil, 0, fmt.Errorf("signed pixel data is not supported")
	}
	samples := int(frameInfo.SamplesPerPixel)
	if samples != 1 && samples != 3 {
		return nil, 0, fmt.Errorf("unsupported samples per pixel: %d (want 1 or 3)", samples)
	}
	if pixelData.FrameCount() == 0 {
		return nil, 0, fmt.Errorf("source pixel data is empty (no frames)")
	}
	return frameInfo, samples, nil
}

// expandToRGBA widens grayscale or interleaved RGB samples to RGBA8 with
// opaque alpha.
func expandToRGBA(data []byte, pixels, samples int) []byte {
	rgba := make([]byte, pixels*4)
	if samples == 1 {
		for i := 0; i < pixels; i++ {
			v := data[i]
			o := i * 4
			rgba[o+0] = v
			rgba[o+1] = v
			rgba[o+2] = v
			rgba[o+3] = 0xFF
		}
		return rgba
	}
	for i := 0; i < pixels; i++ {
		s := i * 3
		o := i * 4
		rgba[o+0] = data[s+0]
		rgba[o+1] = data[s+1]
		rgba[o+2] = data[s+2]
		rgba[o+3] = 0xFF
	}
	return rgba
}
