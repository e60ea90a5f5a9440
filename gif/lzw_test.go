package gif

import (
	"bytes"
	"compress/lzw"
	"io"
	"math/rand"
	"testing"
)

// decodeGIFLZW is a reference GIF-variant LZW decoder: clear code resets the
// dictionary to base symbols, EOI terminates, deferred clear codes are
// tolerated. It fails the test if any code exceeds the 12-bit range or the
// dictionary grows past 4096 entries.
func decodeGIFLZW(t *testing.T, data []byte) []byte {
	t.Helper()

	prefix := make([]int, maxDictSize)
	suffix := make([]byte, maxDictSize)

	var (
		out   []byte
		acc   uint32
		nbits uint
		pos   int
	)
	width := uint(minCodeSize + 1)
	readCode := func() int {
		for nbits < width {
			if pos >= len(data) {
				return -1
			}
			acc |= uint32(data[pos]) << nbits
			nbits += 8
			pos++
		}
		c := int(acc & (1<<width - 1))
		acc >>= width
		nbits -= width
		return c
	}
	expand := func(code int) []byte {
		var s []byte
		for code >= firstCode {
			s = append(s, suffix[code])
			code = prefix[code]
		}
		s = append(s, byte(code))
		for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
			s[i], s[j] = s[j], s[i]
		}
		return s
	}

	nextCode := firstCode
	prev := -1
	for {
		code := readCode()
		if code < 0 {
			t.Fatal("bitstream ended before EOI code")
		}
		if width > maxCodeWidth {
			t.Fatalf("code width %d exceeds 12 bits", width)
		}
		switch {
		case code == clearCode:
			nextCode = firstCode
			width = minCodeSize + 1
			prev = -1
			continue
		case code == eoiCode:
			return out
		case code >= maxDictSize:
			t.Fatalf("code %d exceeds 12-bit range", code)
		}

		var entry []byte
		switch {
		case code < nextCode:
			entry = expand(code)
		case code == nextCode && prev >= 0:
			entry = expand(prev)
			entry = append(entry, entry[0])
		default:
			t.Fatalf("invalid code %d (next assignable is %d)", code, nextCode)
		}
		out = append(out, entry...)

		if prev >= 0 && nextCode < maxDictSize {
			prefix[nextCode] = prev
			suffix[nextCode] = entry[0]
			nextCode++
			if nextCode == 1<<width && width < maxCodeWidth {
				width++
			}
		}
		prev = code
	}
}

func TestCompressFrameRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	random := func(n int) []byte {
		s := make([]byte, n)
		rng.Read(s)
		return s
	}
	repeated := func(n int, v byte) []byte {
		s := make([]byte, n)
		for i := range s {
			s[i] = v
		}
		return s
	}

	tests := []struct {
		name    string
		indices []byte
	}{
		{"empty", nil},
		{"single symbol", []byte{42}},
		{"four red pixels", []byte{180, 180, 180, 180}},
		{"two symbols", []byte{0, 255}},
		{"short run", repeated(100, 7)},
		{"alternating", bytes.Repeat([]byte{1, 2}, 500)},
		{"random small", random(257)},
		{"random medium", random(10_000)},
		// Long high-entropy input fills the dictionary and exercises the
		// deferred-clear behavior past 4096 entries.
		{"random large", random(300_000)},
		{"long uniform run", repeated(200_000, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed := compressFrame(tt.indices)
			got := decodeGIFLZW(t, compressed)
			if !bytes.Equal(got, tt.indices) {
				t.Fatalf("round trip mismatch: got %d symbols, want %d", len(got), len(tt.indices))
			}
		})
	}
}

// The packed bitstream must also be readable by the standard library's
// GIF-flavored LZW reader, which is what image/gif uses.
func TestCompressFrameStdlibCompatible(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	indices := make([]byte, 50_000)
	rng.Read(indices)

	compressed := compressFrame(indices)
	r := lzw.NewReader(bytes.NewReader(compressed), lzw.LSB, minCodeSize)
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("stdlib lzw decode: %v", err)
	}
	if !bytes.Equal(got, indices) {
		t.Fatalf("stdlib round trip mismatch: got %d symbols, want %d", len(got), len(indices))
	}
}

func TestCompressFrameKnownStream(t *testing.T) {
	// [180,180,180,180] compresses to codes 256,180,258,180,257 at 9 bits.
	compressed := compressFrame([]byte{180, 180, 180, 180})
	codes := []uint32{clearCode, 180, firstCode, 180, eoiCode}

	var want bitWriter
	for _, c := range codes {
		want.writeCode(c, minCodeSize+1)
	}
	if !bytes.Equal(compressed, want.close()) {
		t.Fatalf("compressed stream = %x, want %x", compressed, want.out)
	}
}

func TestBitWriterPacking(t *testing.T) {
	// Two 9-bit codes: 0x1FF then 0x001 pack to ff 03 00 LSB-first.
	var w bitWriter
	w.writeCode(0x1FF, 9)
	w.writeCode(0x001, 9)
	got := w.close()
	want := []byte{0xFF, 0x03, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("packed bytes = %x, want %x", got, want)
	}
}
