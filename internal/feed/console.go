package feed

import (
	"context"
	"time"

	"github.com/pkoval/vgacons/internal/vga"
)

// Console is the print surface a source writes through. It matches the
// driver's public output functions so sources never touch the buffer or
// the lock directly.
type Console interface {
	Printf(format string, args ...any)
	Println(args ...any)
	SetColor(fg, bg vga.Color)
}

type globalConsole struct{}

func (globalConsole) Printf(format string, args ...any) { vga.Printf(format, args...) }
func (globalConsole) Println(args ...any)               { vga.Println(args...) }
func (globalConsole) SetColor(fg, bg vga.Color)         { vga.SetColor(fg, bg) }

// Global returns a Console backed by the process-wide driver.
func Global() Console { return globalConsole{} }

// pause sleeps for d or until the context is cancelled.
// Returns false when the context ended the wait.
func pause(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
