// Package gif implements an animated GIF89a encoder with a fixed global
// palette, GIF-variant LZW compression and byte-exact container assembly.
package gif

import "math"

// PaletteSize is the number of entries in the global color table.
const PaletteSize = 256

// Palette is an ordered table of exactly 256 RGB triples. It is built once
// and shared read-only across all frames of an encode.
type Palette [PaletteSize][3]uint8

// NewPalette builds the fixed global palette: a 6x6x6 color cube (216
// entries, red varying slowest, so index = r*36 + g*6 + b) followed by a
// 40-step grayscale ramp filling the remaining slots. The result is
// bit-identical on every invocation.
func NewPalette() *Palette {
	var p Palette
	i := 0
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = [3]uint8{uint8(r * 51), uint8(g * 51), uint8(b * 51)}
				i++
			}
		}
	}
	for ; i < PaletteSize; i++ {
		v := uint8(math.Round(float64(i-216) * 6.375))
		p[i] = [3]uint8{v, v, v}
	}
	return &p
}

// NearestIndex returns the palette index closest to the given color under
// squared Euclidean distance in RGB space. Indices are scanned in ascending
// order and the first minimum wins, so the lowest index is returned on ties;
// this rule keeps output byte-reproducible and must not change.
//
// Components outside [0,255] are clamped before the scan. In-range input
// (anything sourced from an RGBA8 buffer) never hits the clamp.
func (p *Palette) NearestIndex(r, g, b int) uint8 {
	r, g, b = clamp8(r), clamp8(g), clamp8(b)
	best := 0
	bestDist := math.MaxInt
	for i, c := range p {
		dr := r - int(c[0])
		dg := g - int(c[1])
		db := b - int(c[2])
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

// quantize maps a row-major RGBA8 buffer to a buffer of palette indices.
// Alpha is ignored; the format has no translucency.
func (p *Palette) quantize(rgba []byte, pixels int) []byte {
	indices := make([]byte, pixels)
	for i := 0; i < pixels; i++ {
		o := i * 4
		indices[i] = p.NearestIndex(int(rgba[o]), int(rgba[o+1]), int(rgba[o+2]))
	}
	return indices
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
