package feed

import (
	"context"
	"time"

	"github.com/pkoval/vgacons/internal/vga"
)

// Counter prints an endlessly incrementing tick line. It never finishes
// on its own; cancel the context to stop it.
type Counter struct {
	interval time.Duration
}

// NewCounter creates a tick counter source with the default pacing.
func NewCounter() *Counter {
	return &Counter{interval: 250 * time.Millisecond}
}

// ID returns the unique identifier for this source.
func (c *Counter) ID() string {
	return "counter"
}

// Title returns the display name for this source.
func (c *Counter) Title() string {
	return "Tick Counter"
}

// Run prints ticks until the context is cancelled.
func (c *Counter) Run(ctx context.Context, con Console) error {
	con.SetColor(vga.LightCyan, vga.Black)
	con.Println("tick counter started")

	for n := 1; ; n++ {
		if !pause(ctx, c.interval) {
			return ctx.Err()
		}

		// Highlight every tenth tick
		if n%10 == 0 {
			con.SetColor(vga.Yellow, vga.Black)
			con.Printf("tick %d\n", n)
			con.SetColor(vga.LightCyan, vga.Black)
		} else {
			con.Printf("tick %d\n", n)
		}
	}
}

// Register the source with the registry
func init() {
	Register("counter", func() Source {
		return NewCounter()
	})
}
