package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the 16 hardware color codes to terminal colors.
// The palette is indexed by color code, so Palette[vga.Yellow] is
// whatever this theme shows for hardware yellow.
type Theme struct {
	Name    string
	Palette [16]lipgloss.Color
}

// ClassicTheme approximates the CGA palette with the 16 ANSI colors.
func ClassicTheme() Theme {
	return Theme{
		Name: "classic",
		Palette: [16]lipgloss.Color{
			"0",  // black
			"4",  // blue
			"2",  // green
			"6",  // cyan
			"1",  // red
			"5",  // magenta
			"3",  // brown (dark yellow)
			"7",  // light gray
			"8",  // dark gray
			"12", // light blue
			"10", // light green
			"14", // light cyan
			"9",  // light red
			"13", // pink
			"11", // yellow
			"15", // white
		},
	}
}

// AmberTheme renders everything in amber phosphor tiers by brightness.
func AmberTheme() Theme {
	return Theme{
		Name: "amber",
		Palette: [16]lipgloss.Color{
			"233", // black
			"94",  // blue
			"136", // green
			"136", // cyan
			"130", // red
			"130", // magenta
			"136", // brown
			"178", // light gray
			"94",  // dark gray
			"208", // light blue
			"214", // light green
			"214", // light cyan
			"208", // light red
			"214", // pink
			"220", // yellow
			"223", // white
		},
	}
}

// GreenTheme renders everything in green phosphor tiers by brightness.
func GreenTheme() Theme {
	return Theme{
		Name: "green",
		Palette: [16]lipgloss.Color{
			"232", // black
			"22",  // blue
			"28",  // green
			"28",  // cyan
			"22",  // red
			"22",  // magenta
			"28",  // brown
			"34",  // light gray
			"22",  // dark gray
			"40",  // light blue
			"46",  // light green
			"46",  // light cyan
			"40",  // light red
			"40",  // pink
			"82",  // yellow
			"120", // white
		},
	}
}

// Themes returns the built-in themes in cycle order.
func Themes() []Theme {
	return []Theme{ClassicTheme(), AmberTheme(), GreenTheme()}
}

// ThemeByName returns the named theme, falling back to classic.
func ThemeByName(name string) Theme {
	for _, t := range Themes() {
		if t.Name == name {
			return t
		}
	}
	return ClassicTheme()
}

// Swatch renders a one-line sample of the palette, two blocks per color.
func (t Theme) Swatch() string {
	var b strings.Builder
	for _, c := range t.Palette {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("██"))
	}
	return b.String()
}
