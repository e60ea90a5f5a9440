package gif

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	stdgif "image/gif"
)

// Animation is the decoded form of an animated GIF: full RGBA8 frames in
// display order plus per-frame delays.
type Animation struct {
	Width  int
	Height int

	// Frames holds one width*height*4 RGBA8 buffer per frame, each frame
	// composed onto the previous one per its disposal method.
	Frames [][]byte

	// DelaysMS holds the display delay of each frame in milliseconds.
	DelaysMS []int

	// LoopCount follows image/gif semantics: 0 loops forever, -1 shows the
	// animation once (no looping extension present).
	LoopCount int
}

// Decode parses an animated GIF into RGBA8 frames. It is the inverse used
// by round-trip tests and by the codec Decode operation.
func Decode(data []byte) (*Animation, error) {
	g, err := stdgif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gif: decode: %w", err)
	}

	width := g.Config.Width
	height := g.Config.Height
	anim := &Animation{
		Width:     width,
		Height:    height,
		Frames:    make([][]byte, 0, len(g.Image)),
		DelaysMS:  make([]int, 0, len(g.Image)),
		LoopCount: g.LoopCount,
	}

	// Frames with disposal "none" accumulate onto a persistent canvas.
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, pm := range g.Image {
		draw.Draw(canvas, pm.Bounds(), pm, pm.Bounds().Min, draw.Over)
		buf := make([]byte, len(canvas.Pix))
		copy(buf, canvas.Pix)
		anim.Frames = append(anim.Frames, buf)
		anim.DelaysMS = append(anim.DelaysMS, g.Delay[i]*10)
	}
	return anim, nil
}
