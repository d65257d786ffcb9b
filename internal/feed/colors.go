package feed

import (
	"context"
	"time"

	"github.com/pkoval/vgacons/internal/vga"
)

// Colors walks the palette: one labeled line per foreground, then a
// swatch grid covering every foreground/background pair.
type Colors struct {
	delay time.Duration
}

// NewColors creates a palette test source with the default pacing.
func NewColors() *Colors {
	return &Colors{delay: 80 * time.Millisecond}
}

// ID returns the unique identifier for this source.
func (c *Colors) ID() string {
	return "colors"
}

// Title returns the display name for this source.
func (c *Colors) Title() string {
	return "Palette Test"
}

// Run writes the palette exercise and returns when it is done.
func (c *Colors) Run(ctx context.Context, con Console) error {
	con.SetColor(vga.White, vga.Black)
	con.Println("palette test: 16 foregrounds, then all 256 pairs")

	for fg := vga.Black; fg <= vga.White; fg++ {
		if !pause(ctx, c.delay) {
			return ctx.Err()
		}
		con.SetColor(fg, vga.Black)
		con.Printf("%2d %s\n", int(fg), fg)
	}

	for bg := vga.Black; bg <= vga.White; bg++ {
		if !pause(ctx, c.delay) {
			return ctx.Err()
		}
		con.SetColor(vga.LightGray, vga.Black)
		con.Printf("bg %-10s ", bg)
		for fg := vga.Black; fg <= vga.White; fg++ {
			con.SetColor(fg, bg)
			con.Printf("%X", int(fg))
		}
		con.Println()
	}

	con.SetColor(vga.DefaultAttr.Foreground(), vga.DefaultAttr.Background())
	con.Println("palette test done")
	return nil
}

// Register the source with the registry
func init() {
	Register("colors", func() Source {
		return NewColors()
	})
}
