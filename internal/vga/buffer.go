package vga

// Text-mode geometry and the physical base of the text window.
const (
	// Width and Height are the fixed dimensions of the character grid.
	Width  = 80
	Height = 25

	// BufferAddr is the physical address of the text-mode frame buffer.
	BufferAddr uintptr = 0xB8000
)

// Region is the device memory a TextBuffer overlays: one 16-bit word per
// cell, addressed by cell index, row-major with row 0 first. Every access
// crosses this interface as an explicit call, so no read or write of
// device memory can be elided, merged, or reordered by the compiler;
// whatever sits behind the interface observes each store as it happens.
type Region interface {
	// Load reads the word at cell index i.
	Load(i int) uint16
	// Store writes the word at cell index i.
	Store(i int, w uint16)
}

// CursorSetter is implemented by regions that track the hardware cursor
// location register, a linear cell index. The index may equal
// Width*Height when the cursor sits past a full bottom row.
type CursorSetter interface {
	SetCursor(pos int)
}

// TextBuffer is the Height x Width grid of Cells overlaid on a memory
// region. It is exclusively owned by its Writer for the buffer's
// lifetime; the display side reads the same memory through the Region,
// never through this type.
type TextBuffer struct {
	region Region
}

// NewTextBuffer overlays a text buffer on r. The region must hold at
// least Width*Height words; the caller guarantees sizing and exclusive
// write ownership.
func NewTextBuffer(r Region) *TextBuffer {
	return &TextBuffer{region: r}
}

// Set writes the cell at (row, col). Callers keep indices in range;
// the writer's wrap and scroll logic never produces one that is not.
func (b *TextBuffer) Set(row, col int, c Cell) {
	b.region.Store(row*Width+col, c.word())
}

// At reads the cell at (row, col). Callers keep indices in range.
func (b *TextBuffer) At(row, col int) Cell {
	return cellFromWord(b.region.Load(row*Width + col))
}

// Clear blanks every cell with a space in the given attribute.
func (b *TextBuffer) Clear(a Attr) {
	blank := Cell{Char: ' ', Attr: a}
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			b.Set(row, col, blank)
		}
	}
}
