package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkoval/vgacons/internal/vga"
)

// glyph maps a stored byte to a display rune. Printable bytes render as
// themselves; everything else (including the driver's 0xFE substitute)
// renders as a block.
func glyph(b byte) rune {
	if b >= 0x20 && b <= 0x7E {
		return rune(b)
	}
	return '■'
}

// RenderFrame converts a captured frame to a styled string for display.
// Groups adjacent cells with the same attribute to minimize ANSI escape
// sequences. cursor is a linear cell index to draw inverted, or negative
// for no cursor.
func RenderFrame(f *vga.Frame, th Theme, cursor int) string {
	styles := make(map[vga.Attr]lipgloss.Style)
	styleFor := func(a vga.Attr) lipgloss.Style {
		s, ok := styles[a]
		if !ok {
			s = lipgloss.NewStyle().
				Foreground(th.Palette[a.Foreground()]).
				Background(th.Palette[a.Background()])
			styles[a] = s
		}
		return s
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(vga.Width*vga.Height*2 + vga.Height)

	for y := range vga.Height {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < vga.Width {
			cell := f[y][x]

			// The cursor cell breaks its run and renders inverted
			if y*vga.Width+x == cursor {
				sb.WriteString(styleFor(cell.Attr).Reverse(true).Render(string(glyph(cell.Char))))
				x++
				continue
			}

			// Collect consecutive cells with the same attribute
			start := cell.Attr
			var run strings.Builder
			for x < vga.Width {
				cell = f[y][x]
				if cell.Attr != start || y*vga.Width+x == cursor {
					break
				}
				run.WriteRune(glyph(cell.Char))
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
