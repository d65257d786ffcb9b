package vga

import (
	"errors"
	"fmt"
	"sync"
)

// The process-wide console: one writer, constructed on the first output
// call, shared by every call site, guarded by a single lock. The lock is
// a plain mutex because the Go scheduler can park waiters; a busy-wait
// discipline buys nothing here. Code running under the lock (for
// example a region store observer) must not call back into these entry
// points, or it will deadlock on its own goroutine.
var console struct {
	sync.Mutex
	writer *Writer
	region Region
}

// Bind sets the memory region the console writes to. It must happen
// before the first output call; once the writer exists the binding is
// fixed for the life of the process.
func Bind(r Region) error {
	console.Lock()
	defer console.Unlock()
	if console.writer != nil {
		return errors.New("vga: console already initialized")
	}
	console.region = r
	return nil
}

// locked returns the console writer, constructing it exactly once on
// first use. Callers hold the console lock. When no region was bound
// the writer lands on a process-local stand-in, so output always has
// somewhere to go.
func locked() *Writer {
	if console.writer == nil {
		if console.region == nil {
			console.region = make(wordRegion, Width*Height)
		}
		console.writer = NewWriter(NewTextBuffer(console.region))
	}
	return console.writer
}

// Print writes to the console in the manner of fmt.Print.
func Print(a ...any) {
	console.Lock()
	defer console.Unlock()
	fmt.Fprint(locked(), a...)
}

// Println writes to the console in the manner of fmt.Println.
func Println(a ...any) {
	console.Lock()
	defer console.Unlock()
	fmt.Fprintln(locked(), a...)
}

// Printf writes to the console in the manner of fmt.Printf.
func Printf(format string, a ...any) {
	console.Lock()
	defer console.Unlock()
	fmt.Fprintf(locked(), format, a...)
}

// SetColor changes the console pen for subsequent output.
func SetColor(fg, bg Color) {
	console.Lock()
	defer console.Unlock()
	locked().SetAttr(NewAttr(fg, bg))
}

// Clear blanks the console with the current pen and homes the cursor.
func Clear() {
	console.Lock()
	defer console.Unlock()
	locked().Clear()
}

// wordRegion is the plain in-process region the console falls back to
// when no device region is bound before first output.
type wordRegion []uint16

func (r wordRegion) Load(i int) uint16     { return r[i] }
func (r wordRegion) Store(i int, w uint16) { r[i] = w }
