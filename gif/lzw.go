package gif

// GIF-variant LZW: variable-width codes over the 256-symbol palette
// alphabet, packed least-significant-bit first.
const (
	minCodeSize  = 8                // bits needed for the base symbols
	clearCode    = 1 << minCodeSize // 256: reset dictionary to base symbols
	eoiCode      = clearCode + 1    // 257: end of information
	firstCode    = eoiCode + 1      // 258: first dynamically assigned code
	maxDictSize  = 4096             // dictionary never grows past this
	maxCodeWidth = 12               // code width never grows past this
)

// bitWriter packs variable-width codes LSB-first into a byte slice. Whenever
// the accumulator holds at least 8 bits the low byte is flushed; a trailing
// partial byte is flushed by close.
type bitWriter struct {
	out []byte
	acc uint32
	n   uint
}

func (w *bitWriter) writeCode(code uint32, width uint) {
	w.acc |= code << w.n
	w.n += width
	for w.n >= 8 {
		w.out = append(w.out, byte(w.acc))
		w.acc >>= 8
		w.n -= 8
	}
}

func (w *bitWriter) close() []byte {
	if w.n > 0 {
		w.out = append(w.out, byte(w.acc))
		w.acc = 0
		w.n = 0
	}
	return w.out
}

// compressFrame LZW-compresses one frame's palette indices into a packed
// bitstream. All state is frame-scoped: the dictionary, code width and next
// code are rebuilt from scratch for every frame.
//
// The dictionary is keyed by (prefix code, appended symbol): every known
// string is a known string plus one symbol, so the pair identifies it
// without concatenating index sequences.
//
// Once the dictionary reaches 4096 entries the encoder keeps emitting
// 12-bit codes without inserting new entries and without a fresh clear
// code. GIF89a allows this (a "deferred" clear code) and reproducing it
// keeps output byte-identical to existing fixtures; see DESIGN.md.
func compressFrame(indices []byte) []byte {
	bw := &bitWriter{out: make([]byte, 0, len(indices)/2+16)}
	codeWidth := uint(minCodeSize + 1)
	bw.writeCode(clearCode, codeWidth)

	dict := make(map[uint32]uint32, maxDictSize)
	nextCode := uint32(firstCode)

	// current is the code of the longest matched prefix; -1 means empty.
	current := int32(-1)
	for _, sym := range indices {
		if current < 0 {
			current = int32(sym)
			continue
		}
		key := uint32(current)<<8 | uint32(sym)
		if code, ok := dict[key]; ok {
			current = int32(code)
			continue
		}
		bw.writeCode(uint32(current), codeWidth)
		if nextCode < maxDictSize {
			dict[key] = nextCode
			nextCode++
			if nextCode > 1<<codeWidth && codeWidth < maxCodeWidth {
				codeWidth++
			}
		}
		current = int32(sym)
	}

	if current >= 0 {
		bw.writeCode(uint32(current), codeWidth)
	}
	bw.writeCode(eoiCode, codeWidth)
	return bw.close()
}
