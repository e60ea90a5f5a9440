package animated_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cocosip/go-gif-codec/codec"
	"github.com/cocosip/go-gif-codec/gif"
	"github.com/cocosip/go-gif-codec/gif/animated"
)

func TestCodecRegistration(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
	}{
		{"Get by name", "gif-animated", true},
		{"Get by media type", "image/gif", true},
		{"Get non-existent codec", "non-existent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Fatalf("Get(%q) unexpected error: %v", tt.key, err)
				}
				if c.UID() != "image/gif" {
					t.Errorf("Get(%q).UID() = %q, want %q", tt.key, c.UID(), "image/gif")
				}
				if c.Name() != "gif-animated" {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), "gif-animated")
				}
			} else {
				if !errors.Is(err, codec.ErrCodecNotFound) {
					t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
				}
			}
		})
	}
}

func TestListIncludesAnimatedGIF(t *testing.T) {
	found := false
	for _, c := range codec.List() {
		if c.UID() == "image/gif" {
			found = true
		}
	}
	if !found {
		t.Error("List() did not include the animated GIF codec")
	}
}

func solid(w, h int, r, g, b byte) []byte {
	buf := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		buf[i*4+0] = r
		buf[i*4+1] = g
		buf[i*4+2] = b
		buf[i*4+3] = 0xFF
	}
	return buf
}

func TestCodecEncodeDecode(t *testing.T) {
	c, err := codec.Get("gif-animated")
	if err != nil {
		t.Fatalf("failed to get codec: %v", err)
	}

	width, height := 5, 4
	params := codec.EncodeParams{
		Frames:   [][]byte{solid(width, height, 255, 0, 0), solid(width, height, 0, 0, 255)},
		Width:    width,
		Height:   height,
		DelaysMS: []int{40, 60},
	}

	compressed, err := c.Encode(params)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	t.Logf("Compressed size: %d bytes", len(compressed))

	result, err := c.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Width != width || result.Height != height {
		t.Errorf("decoded size = %dx%d, want %dx%d", result.Width, result.Height, width, height)
	}
	if len(result.Frames) != 2 {
		t.Fatalf("decoded %d frames, want 2", len(result.Frames))
	}
	if result.DelaysMS[0] != 40 || result.DelaysMS[1] != 60 {
		t.Errorf("delays = %v, want [40 60]", result.DelaysMS)
	}
	if result.LoopCount != 0 {
		t.Errorf("loop count = %d, want 0", result.LoopCount)
	}

	// Both colors are exact palette entries and must survive the trip.
	if !bytes.Equal(result.Frames[0][:4], []byte{255, 0, 0, 255}) {
		t.Errorf("frame 0 pixel = %v, want red", result.Frames[0][:4])
	}
	if !bytes.Equal(result.Frames[1][:4], []byte{0, 0, 255, 255}) {
		t.Errorf("frame 1 pixel = %v, want blue", result.Frames[1][:4])
	}
}

func TestCodecEncodeNoFrames(t *testing.T) {
	c := animated.NewCodec()
	_, err := c.Encode(codec.EncodeParams{Width: 2, Height: 2})
	if !errors.Is(err, gif.ErrNoFrames) {
		t.Errorf("err = %v, want gif.ErrNoFrames", err)
	}
}

func TestCodecEncodeValidation(t *testing.T) {
	c := animated.NewCodec()

	_, err := c.Encode(codec.EncodeParams{Width: 0, Height: 2})
	if !errors.Is(err, codec.ErrInvalidDimensions) {
		t.Errorf("zero width: err = %v, want ErrInvalidDimensions", err)
	}

	_, err = c.Encode(codec.EncodeParams{
		Frames:   [][]byte{solid(2, 2, 0, 0, 0)},
		Width:    2,
		Height:   2,
		DelaysMS: []int{10, 20},
	})
	if !errors.Is(err, codec.ErrInvalidParameter) {
		t.Errorf("delay count mismatch: err = %v, want ErrInvalidParameter", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := animated.NewOptions().Validate(); err != nil {
		t.Errorf("default options invalid: %v", err)
	}
	if err := animated.NewOptions().WithLoopCount(-1).Validate(); err == nil {
		t.Error("negative loop count accepted")
	}
	if err := animated.NewOptions().WithLoopCount(0x10000).Validate(); err == nil {
		t.Error("oversized loop count accepted")
	}
}

func TestCodecDefaultDelay(t *testing.T) {
	c := animated.NewCodec()
	out, err := c.Encode(codec.EncodeParams{
		Frames: [][]byte{solid(2, 2, 0, 0, 0)},
		Width:  2,
		Height: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if result.DelaysMS[0] != codec.DefaultDelayMS {
		t.Errorf("delay = %dms, want DefaultDelayMS (%d)", result.DelaysMS[0], codec.DefaultDelayMS)
	}
}
