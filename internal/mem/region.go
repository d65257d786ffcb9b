// Package mem provides the memory regions the display driver writes to:
// an emulated device region for demos, servers, and tests, and a
// /dev/mem binding for the real text-mode window on Linux.
package mem

import (
	"sync"

	"github.com/pkoval/vgacons/internal/vga"
)

// StoreFunc observes one word store into a BusRegion.
type StoreFunc func(i int, w uint16)

// BusRegion is emulated device memory: a word array behind a lock, with
// observers fired after every store. It plays the video hardware's role
// in-process; the driver writing through it cannot tell the difference.
type BusRegion struct {
	mu      sync.RWMutex
	words   []uint16
	onStore []StoreFunc
	cursor  int
}

var (
	_ vga.Region       = (*BusRegion)(nil)
	_ vga.CursorSetter = (*BusRegion)(nil)
)

// NewBusRegion allocates an emulated region of n words.
func NewBusRegion(n int) *BusRegion {
	return &BusRegion{words: make([]uint16, n), cursor: -1}
}

// NewTextRegion allocates an emulated region sized for the text window.
func NewTextRegion() *BusRegion {
	return NewBusRegion(vga.Width * vga.Height)
}

// Load returns the word at index i.
func (r *BusRegion) Load(i int) uint16 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.words[i]
}

// Store writes the word at index i, then fires the store observers on
// the calling goroutine. Observers must not write back into the region
// or into the console that owns it.
func (r *BusRegion) Store(i int, w uint16) {
	r.mu.Lock()
	r.words[i] = w
	r.mu.Unlock()
	for _, fn := range r.onStore {
		fn(i, w)
	}
}

// OnStore registers fn to run after every store. Registration is not
// synchronized with stores; register observers before output begins.
func (r *BusRegion) OnStore(fn StoreFunc) {
	r.onStore = append(r.onStore, fn)
}

// Words returns the region size in words.
func (r *BusRegion) Words() int {
	return len(r.words)
}

// SetCursor records the emulated cursor location register.
func (r *BusRegion) SetCursor(pos int) {
	r.mu.Lock()
	r.cursor = pos
	r.mu.Unlock()
}

// Cursor returns the emulated cursor location register, or -1 if the
// cursor has never been set.
func (r *BusRegion) Cursor() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cursor
}
