package vga

import (
	"fmt"
	"strings"
)

// FrameSize is the marshaled size of a frame: two bytes per cell.
const FrameSize = Width * Height * 2

// Frame is a point-in-time copy of the whole grid, captured the way the
// display hardware reads it: cell by cell through the region. Frames are
// what viewers render and what the snapshot store persists.
type Frame [Height][Width]Cell

// CaptureFrame reads every cell of r into a new frame.
func CaptureFrame(r Region) *Frame {
	var f Frame
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			f[row][col] = cellFromWord(r.Load(row*Width + col))
		}
	}
	return &f
}

// String renders the frame as plain text, one line per row, with bytes
// outside printable ASCII shown as '.'.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for row := 0; row < Height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.Row(row))
	}
	return sb.String()
}

// Row returns one row's characters as a plain string, with bytes outside
// printable ASCII shown as '.'.
func (f *Frame) Row(row int) string {
	line := make([]byte, Width)
	for col := 0; col < Width; col++ {
		b := f[row][col].Char
		if b < 0x20 || b > 0x7E {
			b = '.'
		}
		line[col] = b
	}
	return string(line)
}

// MarshalBinary encodes the frame in the on-device layout: row-major
// cells, character byte then attribute byte. It cannot fail.
func (f *Frame) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, FrameSize)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			c := f[row][col]
			data = append(data, c.Char, byte(c.Attr))
		}
	}
	return data, nil
}

// UnmarshalBinary decodes a frame from the on-device layout.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) != FrameSize {
		return fmt.Errorf("vga: frame data is %d bytes, want %d", len(data), FrameSize)
	}
	for i := 0; i < FrameSize; i += 2 {
		cell := i / 2
		f[cell/Width][cell%Width] = Cell{Char: data[i], Attr: Attr(data[i+1])}
	}
	return nil
}
