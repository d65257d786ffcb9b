package vga

import (
	"strings"
	"testing"
)

func TestCaptureFrame(t *testing.T) {
	w, region := newTestWriter()
	w.WriteString("HELLO\n")
	w.WriteString("WORLD")

	f := CaptureFrame(region)

	if !strings.HasPrefix(f.Row(Height-1), "WORLD") {
		t.Errorf("Bottom row = %q, expected to start with WORLD", f.Row(Height-1))
	}
	if !strings.HasPrefix(f.Row(Height-2), "HELLO") {
		t.Errorf("Row above bottom = %q, expected to start with HELLO", f.Row(Height-2))
	}
	if got := f[Height-1][0].Attr; got != DefaultAttr {
		t.Errorf("Captured attr = %#02x, expected %#02x", got, DefaultAttr)
	}
}

func TestFrameString(t *testing.T) {
	w, region := newTestWriter()
	w.WriteString("hi")
	w.buf.Set(Height-1, 3, Cell{Char: 0x01, Attr: DefaultAttr})

	f := CaptureFrame(region)
	s := f.String()

	lines := strings.Split(s, "\n")
	if len(lines) != Height {
		t.Fatalf("String() has %d lines, expected %d", len(lines), Height)
	}
	if len(lines[0]) != Width {
		t.Errorf("Line length = %d, expected %d", len(lines[0]), Width)
	}
	// Unset cells read as NUL and render as dots.
	if !strings.HasPrefix(lines[Height-1], "hi..") {
		t.Errorf("Bottom line = %q, expected to start with \"hi..\"", lines[Height-1])
	}
}

func TestFrameBinaryRoundTrip(t *testing.T) {
	w, region := newTestWriter()
	w.SetAttr(NewAttr(LightBlue, Red))
	w.WriteString("snapshot")

	f := CaptureFrame(region)

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() failed: %v", err)
	}
	if len(data) != FrameSize {
		t.Fatalf("MarshalBinary() produced %d bytes, expected %d", len(data), FrameSize)
	}

	// On-device layout: character byte then attribute byte, row-major.
	first := (Height - 1) * Width * 2
	if data[first] != 's' {
		t.Errorf("Bottom row first char byte = %#02x, expected 's'", data[first])
	}
	if Attr(data[first+1]) != NewAttr(LightBlue, Red) {
		t.Errorf("Bottom row first attr byte = %#02x, expected %#02x", data[first+1], NewAttr(LightBlue, Red))
	}

	var decoded Frame
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() failed: %v", err)
	}
	if decoded != *f {
		t.Error("Decoded frame differs from the original")
	}
}

func TestFrameUnmarshalRejectsBadLength(t *testing.T) {
	var f Frame
	if err := f.UnmarshalBinary(make([]byte, 10)); err == nil {
		t.Error("UnmarshalBinary should reject short data")
	}
}
