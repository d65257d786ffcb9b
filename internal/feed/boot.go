package feed

import (
	"context"
	"time"

	"github.com/pkoval/vgacons/internal/vga"
)

// bootScript is replayed line by line. Status selects the tag color.
var bootScript = []struct {
	status string
	text   string
}{
	{"ok", "Mapped text buffer at 0xB8000"},
	{"ok", "Attribute controller online, 16-color palette"},
	{"ok", "Hardware cursor tracking enabled"},
	{"ok", "Console writer bound, output on bottom row"},
	{"warn", "Blink bit treated as bright background"},
	{"ok", "Line discipline: wrap at column 80, scroll on newline"},
	{"ok", "Code page 437 glyphs loaded"},
	{"warn", "No scrollback, single page only"},
	{"ok", "Probing serial fallback... not present, staying on text mode"},
	{"ok", "Input queue initialized"},
	{"ok", "This is a deliberately long status line that does not fit into a single row of the display and must wrap onto the next one"},
	{"ok", "Timer interrupt hooked at 100 Hz"},
	{"fail", "Floppy controller did not respond"},
	{"ok", "Continuing without removable media"},
	{"ok", "All subsystems up"},
}

// Boot replays a scripted boot log with a fixed delay between lines.
type Boot struct {
	delay time.Duration
}

// NewBoot creates a boot log source with the default pacing.
func NewBoot() *Boot {
	return &Boot{delay: 120 * time.Millisecond}
}

// ID returns the unique identifier for this source.
func (b *Boot) ID() string {
	return "boot"
}

// Title returns the display name for this source.
func (b *Boot) Title() string {
	return "Boot Log"
}

// Run replays the script and returns when it is done.
func (b *Boot) Run(ctx context.Context, con Console) error {
	con.SetColor(vga.White, vga.Black)
	con.Println("vgacons: starting display driver")

	for _, ln := range bootScript {
		if !pause(ctx, b.delay) {
			return ctx.Err()
		}

		switch ln.status {
		case "warn":
			con.SetColor(vga.Yellow, vga.Black)
			con.Printf("[ WARN ] ")
		case "fail":
			con.SetColor(vga.LightRed, vga.Black)
			con.Printf("[ FAIL ] ")
		default:
			con.SetColor(vga.LightGreen, vga.Black)
			con.Printf("[  OK  ] ")
		}

		con.SetColor(vga.LightGray, vga.Black)
		con.Println(ln.text)
	}

	if !pause(ctx, b.delay) {
		return ctx.Err()
	}
	con.SetColor(vga.Yellow, vga.Black)
	con.Println("Boot complete.")
	return nil
}

// Register the source with the registry
func init() {
	Register("boot", func() Source {
		return NewBoot()
	})
}
