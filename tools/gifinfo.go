// gifinfo prints the block structure of a GIF file.
// Usage: go run gifinfo.go <file.gif>
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: gifinfo <file.gif>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	if err := dump(data); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func u16(data []byte, off int) int {
	return int(data[off]) | int(data[off+1])<<8
}

func dump(data []byte) error {
	if len(data) < 13 {
		return fmt.Errorf("file too short (%d bytes)", len(data))
	}
	fmt.Printf("Signature:      %s\n", data[:6])
	width := u16(data, 6)
	height := u16(data, 8)
	flags := data[10]
	fmt.Printf("Logical screen: %dx%d\n", width, height)
	fmt.Printf("Screen flags:   %#02x\n", flags)
	pos := 13

	if flags&0x80 != 0 {
		size := 2 << (flags & 0x07)
		fmt.Printf("Global colors:  %d (%d bytes)\n", size, size*3)
		pos += size * 3
	}

	frame := 0
	for pos < len(data) {
		switch data[pos] {
		case 0x21: // extension
			label := data[pos+1]
			pos += 2
			switch label {
			case 0xF9:
				fmt.Printf("Frame %d: graphic control, delay %d cs, disposal %d\n",
					frame, u16(data, pos+2), (data[pos+1]>>2)&0x07)
			case 0xFF:
				n := int(data[pos])
				fmt.Printf("Application extension: %s\n", data[pos+1:pos+1+n])
			case 0xFE:
				fmt.Println("Comment extension")
			default:
				fmt.Printf("Extension %#02x\n", label)
			}
			pos += skipSubBlocks(data, pos)
		case 0x2C: // image descriptor
			fmt.Printf("Frame %d: image %dx%d at (%d,%d), flags %#02x, min code size %d\n",
				frame, u16(data, pos+5), u16(data, pos+7),
				u16(data, pos+1), u16(data, pos+3), data[pos+9], data[pos+10])
			pos += 11
			n := skipSubBlocks(data, pos)
			fmt.Printf("Frame %d: %d sub-block bytes of compressed data\n", frame, n-1)
			pos += n
			frame++
		case 0x3B:
			fmt.Printf("Trailer at offset %d (%d frames, %d bytes total)\n", pos, frame, len(data))
			return nil
		default:
			return fmt.Errorf("unknown block %#02x at offset %d", data[pos], pos)
		}
	}
	return fmt.Errorf("missing trailer")
}

// skipSubBlocks returns the total length of a sub-block chain including its
// zero terminator, starting at pos.
func skipSubBlocks(data []byte, pos int) int {
	n := 0
	for data[pos+n] != 0 {
		n += int(data[pos+n]) + 1
	}
	return n + 1
}
