package gif

import "bytes"

// GIF89a block introducers and labels
// Reference: GIF89a specification, CompuServe 1990
const (
	blockExtension      = 0x21 // extension introducer
	blockImageSeparator = 0x2C // image descriptor follows
	blockTrailer        = 0x3B // end of file

	labelGraphicControl = 0xF9
	labelApplication    = 0xFF
)

// header is the 6-byte signature/version marker.
var header = []byte("GIF89a")

// netscapeID is the application identifier of the looping extension.
var netscapeID = []byte("NETSCAPE2.0")

// containerWriter assembles the block-structured container. The underlying
// buffer is append-only: once a byte is written it is never touched again.
type containerWriter struct {
	buf bytes.Buffer
}

func (w *containerWriter) writeByte(b byte) {
	w.buf.WriteByte(b)
}

// writeUint16 writes a 16-bit field little-endian, as the format requires
// for all widths, heights, offsets, delays and loop counts.
func (w *containerWriter) writeUint16(v uint16) {
	w.buf.WriteByte(byte(v))
	w.buf.WriteByte(byte(v >> 8))
}

// writeLogicalScreen writes the signature, the logical screen descriptor
// and the 768-byte global color table.
func (w *containerWriter) writeLogicalScreen(width, height int, palette *Palette) {
	w.buf.Write(header)

	w.writeUint16(uint16(width))
	w.writeUint16(uint16(height))
	// Global color table present, 8 bits of color resolution, 256 entries.
	w.writeByte(0xF7)
	w.writeByte(0x00) // background color index
	w.writeByte(0x00) // pixel aspect ratio

	for _, c := range palette {
		w.buf.Write(c[:])
	}
}

// writeLoopExtension writes the 19-byte NETSCAPE2.0 application extension.
// A loop count of 0 means repeat forever.
func (w *containerWriter) writeLoopExtension(loopCount uint16) {
	w.writeByte(blockExtension)
	w.writeByte(labelApplication)
	w.writeByte(byte(len(netscapeID)))
	w.buf.Write(netscapeID)
	w.writeByte(0x03) // sub-block size
	w.writeByte(0x01) // sub-block id: loop count follows
	w.writeUint16(loopCount)
	w.writeByte(0x00) // block terminator
}

// writeGraphicControl writes the per-frame graphic control extension.
// The delay is in hundredths of a second. Disposal is always 0 (no special
// disposal) and no transparent color is declared.
func (w *containerWriter) writeGraphicControl(delayCS uint16) {
	w.writeByte(blockExtension)
	w.writeByte(labelGraphicControl)
	w.writeByte(0x04) // block size
	w.writeByte(0x00) // disposal method, no user input, no transparency
	w.writeUint16(delayCS)
	w.writeByte(0x00) // transparent color index (unused)
	w.writeByte(0x00) // block terminator
}

// writeImageDescriptor writes a full-screen image descriptor with no local
// color table.
func (w *containerWriter) writeImageDescriptor(width, height int) {
	w.writeByte(blockImageSeparator)
	w.writeUint16(0) // left
	w.writeUint16(0) // top
	w.writeUint16(uint16(width))
	w.writeUint16(uint16(height))
	w.writeByte(0x00) // no local color table, not interlaced
}

// writeImageData writes the LZW minimum code size byte followed by the
// compressed payload split into length-prefixed sub-blocks of at most 255
// bytes, closed by a zero-length terminator.
func (w *containerWriter) writeImageData(compressed []byte) {
	w.writeByte(minCodeSize)
	for len(compressed) > 0 {
		n := len(compressed)
		if n > 255 {
			n = 255
		}
		w.writeByte(byte(n))
		w.buf.Write(compressed[:n])
		compressed = compressed[n:]
	}
	w.writeByte(0x00)
}

func (w *containerWriter) writeTrailer() {
	w.writeByte(blockTrailer)
}

func (w *containerWriter) bytes() []byte {
	return w.buf.Bytes()
}
