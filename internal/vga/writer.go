package vga

// Substitute is the glyph stored in place of any byte that is neither
// printable ASCII nor a newline; the device font renders it as a solid
// block. Substitution is silent: no input is ever rejected.
const Substitute byte = 0xFE

// Writer emits bytes into the bottom row of a text buffer, wrapping and
// scrolling as it goes. It owns the buffer and the cursor column.
// Writer itself is not safe for concurrent use; the global console
// serializes access with its lock.
type Writer struct {
	column int
	attr   Attr
	buf    *TextBuffer
}

// NewWriter returns a writer over buf with the default pen.
func NewWriter(buf *TextBuffer) *Writer {
	return &Writer{attr: DefaultAttr, buf: buf}
}

// WriteChar emits one byte verbatim. A newline scrolls the grid and
// returns the cursor to column 0; any other byte lands at the cursor in
// the bottom row, wrapping onto a fresh row first if the current one is
// full. It cannot fail.
func (w *Writer) WriteChar(b byte) {
	if b == '\n' {
		w.newLine()
		w.syncCursor()
		return
	}
	if w.column >= Width {
		w.newLine()
	}
	w.buf.Set(Height-1, w.column, Cell{Char: b, Attr: w.attr})
	w.column++
	w.syncCursor()
}

// Write emits p with the undisplayable-byte substitution applied.
// It implements io.Writer and never returns an error, so fmt can drive
// the console directly.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		w.emit(b)
	}
	return len(p), nil
}

// WriteString emits s with the undisplayable-byte substitution applied.
// It implements io.StringWriter and never returns an error.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		w.emit(s[i])
	}
	return len(s), nil
}

// emit routes one byte of caller input through WriteChar, substituting
// the placeholder for anything outside printable ASCII that is not a
// newline.
func (w *Writer) emit(b byte) {
	if b == '\n' || (b >= 0x20 && b <= 0x7E) {
		w.WriteChar(b)
		return
	}
	w.WriteChar(Substitute)
}

// SetAttr changes the pen used for subsequent output and for the blanks
// a scroll writes into the bottom row.
func (w *Writer) SetAttr(a Attr) {
	w.attr = a
}

// Column returns the cursor column in the bottom row. It equals Width
// when the row is full and the next byte will wrap.
func (w *Writer) Column() int {
	return w.column
}

// Clear blanks the whole grid with the current pen and homes the cursor.
func (w *Writer) Clear() {
	w.buf.Clear(w.attr)
	w.column = 0
	w.syncCursor()
}

// newLine shifts every row up by one, blanks the bottom row, and returns
// the cursor to column 0. The top row's previous content is discarded;
// there is no scrollback.
func (w *Writer) newLine() {
	for row := 1; row < Height; row++ {
		for col := 0; col < Width; col++ {
			w.buf.Set(row-1, col, w.buf.At(row, col))
		}
	}
	w.clearRow(Height - 1)
	w.column = 0
}

// clearRow blanks one row with the current pen.
func (w *Writer) clearRow(row int) {
	blank := Cell{Char: ' ', Attr: w.attr}
	for col := 0; col < Width; col++ {
		w.buf.Set(row, col, blank)
	}
}

// syncCursor pushes the cursor position to regions that track the
// hardware cursor register.
func (w *Writer) syncCursor() {
	if cs, ok := w.buf.region.(CursorSetter); ok {
		cs.SetCursor((Height-1)*Width + w.column)
	}
}
