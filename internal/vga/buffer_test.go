package vga

import "testing"

func TestBufferSetAt(t *testing.T) {
	region := newRecordRegion()
	buf := NewTextBuffer(region)

	cell := Cell{Char: 'A', Attr: NewAttr(White, Blue)}
	buf.Set(3, 7, cell)

	if got := buf.At(3, 7); got != cell {
		t.Errorf("At(3, 7) = %+v, expected %+v", got, cell)
	}
}

func TestBufferDeviceWordLayout(t *testing.T) {
	region := newRecordRegion()
	buf := NewTextBuffer(region)

	// Character in the low byte, attribute in the high byte.
	buf.Set(0, 0, Cell{Char: 'A', Attr: 0x1F})
	if got := region.words[0]; got != 0x1F41 {
		t.Errorf("Device word = %#04x, expected 0x1f41", got)
	}
}

func TestBufferRowMajorIndexing(t *testing.T) {
	region := newRecordRegion()
	buf := NewTextBuffer(region)

	buf.Set(1, 0, Cell{Char: 'B', Attr: DefaultAttr})
	if got := cellFromWord(region.words[Width]).Char; got != 'B' {
		t.Errorf("Cell (1, 0) landed at the wrong index, word[%d] char = %q", Width, got)
	}

	buf.Set(2, 5, Cell{Char: 'C', Attr: DefaultAttr})
	if got := cellFromWord(region.words[2*Width+5]).Char; got != 'C' {
		t.Errorf("Cell (2, 5) landed at the wrong index")
	}
}

func TestBufferClear(t *testing.T) {
	region := newRecordRegion()
	buf := NewTextBuffer(region)

	buf.Set(0, 0, Cell{Char: 'X', Attr: DefaultAttr})
	buf.Set(Height-1, Width-1, Cell{Char: 'Y', Attr: DefaultAttr})

	pen := NewAttr(Green, Black)
	buf.Clear(pen)

	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			cell := buf.At(row, col)
			if cell.Char != ' ' || cell.Attr != pen {
				t.Fatalf("Cell (%d, %d) = %+v after Clear, expected blank with attr %#02x", row, col, cell, pen)
			}
		}
	}
}
