package vga

// Attr is the packed attribute byte of a character cell: background
// color in the high nibble, foreground color in the low nibble. Built
// once from two palette colors, never mutated.
type Attr uint8

// NewAttr packs a foreground/background color pair into an attribute.
func NewAttr(fg, bg Color) Attr {
	return Attr(bg)<<4 | Attr(fg)
}

// Foreground returns the foreground color.
func (a Attr) Foreground() Color {
	return Color(a & 0x0F)
}

// Background returns the background color.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

// DefaultAttr is the console's initial pen: yellow on black.
var DefaultAttr = NewAttr(Yellow, Black)
