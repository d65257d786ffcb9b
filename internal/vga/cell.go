package vga

// Cell is one character cell exactly as the device stores it: the
// displayable byte followed by its attribute byte, two bytes total.
type Cell struct {
	Char byte
	Attr Attr
}

// word returns the cell as the 16-bit value held in device memory:
// character in the low byte, attribute in the high byte.
func (c Cell) word() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

// cellFromWord unpacks a device memory word into a Cell.
func cellFromWord(w uint16) Cell {
	return Cell{Char: byte(w), Attr: Attr(w >> 8)}
}
