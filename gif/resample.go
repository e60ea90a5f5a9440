package gif

import (
	"image"

	"golang.org/x/image/draw"
)

// AddImage appends one frame sourced from any image.Image. The image is
// converted to RGBA8 and, if its dimensions differ from the encoder's,
// scaled with the configured resampler (see WithResampler) before
// quantization. delayMS is the display delay in milliseconds.
func (e *Encoder) AddImage(img image.Image, delayMS int) error {
	if err := e.validateDimensions(); err != nil {
		return err
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	if b.Dx() == e.width && b.Dy() == e.height {
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	} else {
		e.scaler.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return e.AddFrame(dst.Pix, delayMS)
}
