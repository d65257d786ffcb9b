package vga

import "testing"

func TestNewAttrPacking(t *testing.T) {
	if got := NewAttr(Yellow, Black); got != 0x0E {
		t.Errorf("NewAttr(Yellow, Black) = %#02x, expected 0x0e", got)
	}
	if got := NewAttr(White, Blue); got != 0x1F {
		t.Errorf("NewAttr(White, Blue) = %#02x, expected 0x1f", got)
	}
	if got := NewAttr(Black, White); got != 0xF0 {
		t.Errorf("NewAttr(Black, White) = %#02x, expected 0xf0", got)
	}
}

func TestAttrUnpacking(t *testing.T) {
	a := NewAttr(LightCyan, Red)

	if a.Foreground() != LightCyan {
		t.Errorf("Foreground() = %v, expected lightcyan", a.Foreground())
	}
	if a.Background() != Red {
		t.Errorf("Background() = %v, expected red", a.Background())
	}
}

func TestColorCodes(t *testing.T) {
	// The palette codes are a hardware contract.
	codes := map[Color]uint8{
		Black: 0, Blue: 1, Green: 2, Cyan: 3,
		Red: 4, Magenta: 5, Brown: 6, LightGray: 7,
		DarkGray: 8, LightBlue: 9, LightGreen: 10, LightCyan: 11,
		LightRed: 12, Pink: 13, Yellow: 14, White: 15,
	}
	for c, code := range codes {
		if uint8(c) != code {
			t.Errorf("Color %v = %d, expected %d", c, uint8(c), code)
		}
		if uint8(c) > 0x0F {
			t.Errorf("Color %v does not fit in 4 bits", c)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("lightgreen")
	if err != nil {
		t.Fatalf("ParseColor(lightgreen) failed: %v", err)
	}
	if c != LightGreen {
		t.Errorf("ParseColor(lightgreen) = %v, expected lightgreen", c)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("ParseColor should reject unknown color names")
	}
}

func TestColorString(t *testing.T) {
	if Yellow.String() != "yellow" {
		t.Errorf("Yellow.String() = %q, expected \"yellow\"", Yellow.String())
	}

	// Every name round-trips through ParseColor.
	for c := Black; c <= White; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), parsed, c)
		}
	}
}
