package tui

import (
	"strings"
	"testing"

	"github.com/pkoval/vgacons/internal/vga"
)

func TestThemeByName(t *testing.T) {
	if th := ThemeByName("amber"); th.Name != "amber" {
		t.Errorf("ThemeByName(\"amber\").Name = %q, expected %q", th.Name, "amber")
	}
	if th := ThemeByName("green"); th.Name != "green" {
		t.Errorf("ThemeByName(\"green\").Name = %q, expected %q", th.Name, "green")
	}

	// Unknown names fall back to classic
	if th := ThemeByName("plasma"); th.Name != "classic" {
		t.Errorf("Expected fallback to classic, got %q", th.Name)
	}
	if th := ThemeByName(""); th.Name != "classic" {
		t.Errorf("Expected fallback to classic for empty name, got %q", th.Name)
	}
}

func TestThemesCycleOrder(t *testing.T) {
	themes := Themes()
	want := []string{"classic", "amber", "green"}

	if len(themes) != len(want) {
		t.Fatalf("Expected %d themes, got %d", len(want), len(themes))
	}
	for i, name := range want {
		if themes[i].Name != name {
			t.Errorf("Themes()[%d].Name = %q, expected %q", i, themes[i].Name, name)
		}
	}
}

func TestClassicPaletteCodes(t *testing.T) {
	p := ClassicTheme().Palette

	if p[vga.Black] != "0" {
		t.Errorf("classic black = %q, expected %q", p[vga.Black], "0")
	}
	if p[vga.Yellow] != "11" {
		t.Errorf("classic yellow = %q, expected %q", p[vga.Yellow], "11")
	}
	if p[vga.White] != "15" {
		t.Errorf("classic white = %q, expected %q", p[vga.White], "15")
	}
	if p[vga.LightBlue] != "12" {
		t.Errorf("classic lightblue = %q, expected %q", p[vga.LightBlue], "12")
	}
}

func TestSwatchWidth(t *testing.T) {
	// Two blocks per palette entry, regardless of color profile
	s := ClassicTheme().Swatch()
	if n := strings.Count(s, "█"); n != 32 {
		t.Errorf("Swatch has %d blocks, expected 32", n)
	}
}
