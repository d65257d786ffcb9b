// Package vga implements a text-mode display driver: the packed
// character/attribute cell format, the 80x25 grid overlaid on device
// memory, and a locked global console with wrapping and scrolling output.
// It contains pure driver logic with no dependencies beyond the standard
// library; memory backends live in internal/mem and on-screen rendering
// in internal/platform/tui.
package vga

import "fmt"

// Color is one of the 16 colors of the text-mode palette.
// The value is the hardware color code and fits in 4 bits.
type Color uint8

// The standard text-mode palette, in hardware order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// colorNames is indexed by color code; the strings double as the
// accepted spellings for ParseColor.
var colorNames = [16]string{
	"black", "blue", "green", "cyan",
	"red", "magenta", "brown", "lightgray",
	"darkgray", "lightblue", "lightgreen", "lightcyan",
	"lightred", "pink", "yellow", "white",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a palette color by name.
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("vga: unknown color %q", name)
}
