package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pkoval/vgacons/internal/vga"
)

type penPair struct{ fg, bg vga.Color }

// fakeConsole records everything a source prints.
type fakeConsole struct {
	buf  strings.Builder
	pens []penPair
}

func (c *fakeConsole) Printf(format string, args ...any) { fmt.Fprintf(&c.buf, format, args...) }
func (c *fakeConsole) Println(args ...any)               { fmt.Fprintln(&c.buf, args...) }
func (c *fakeConsole) SetColor(fg, bg vga.Color)         { c.pens = append(c.pens, penPair{fg, bg}) }

func TestRegistryListsBuiltinSources(t *testing.T) {
	infos := List()
	if len(infos) != 4 {
		t.Fatalf("Expected 4 registered sources, got %d", len(infos))
	}

	want := []string{"boot", "colors", "counter", "stdin"}
	for i, id := range want {
		if infos[i].ID != id {
			t.Errorf("List()[%d].ID = %q, expected %q", i, infos[i].ID, id)
		}
	}

	if !Exists("boot") {
		t.Error("Exists(\"boot\") = false, expected true")
	}
	if Exists("warp") {
		t.Error("Exists(\"warp\") = true for unregistered ID")
	}
}

func TestCreateSource(t *testing.T) {
	src, err := Create("counter")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if src.ID() != "counter" {
		t.Errorf("Created source ID = %q, expected %q", src.ID(), "counter")
	}

	if _, err := Create("warp"); err == nil {
		t.Error("Expected error creating unregistered source")
	}
}

func TestBootScriptCompletes(t *testing.T) {
	con := &fakeConsole{}
	b := &Boot{} // zero delay

	if err := b.Run(context.Background(), con); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := con.buf.String()
	if !strings.Contains(out, "Mapped text buffer at 0xB8000") {
		t.Error("Boot output missing the buffer map line")
	}
	if !strings.Contains(out, "[  OK  ]") || !strings.Contains(out, "[ FAIL ]") {
		t.Error("Boot output missing status tags")
	}
	if !strings.HasSuffix(out, "Boot complete.\n") {
		t.Error("Boot output should end with the completion line")
	}

	if len(con.pens) == 0 || con.pens[0] != (penPair{vga.White, vga.Black}) {
		t.Errorf("First pen = %v, expected white on black", con.pens)
	}
}

func TestCounterStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	con := &fakeConsole{}
	c := &Counter{interval: time.Minute}

	err := c.Run(ctx, con)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}

	out := con.buf.String()
	if !strings.Contains(out, "tick counter started") {
		t.Error("Counter should print its header before the first wait")
	}
	if strings.Contains(out, "tick 1") {
		t.Error("Cancelled counter should not produce ticks")
	}
}

func TestColorsCoversEveryPair(t *testing.T) {
	con := &fakeConsole{}
	c := &Colors{} // zero delay

	if err := c.Run(context.Background(), con); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	distinct := make(map[penPair]bool)
	for _, p := range con.pens {
		distinct[p] = true
	}
	if len(distinct) != 256 {
		t.Errorf("Expected 256 distinct color pairs, got %d", len(distinct))
	}

	out := con.buf.String()
	if !strings.Contains(out, "15 white") {
		t.Error("Foreground pass missing the white line")
	}
	if !strings.Contains(out, "bg lightgreen") {
		t.Error("Grid pass missing the lightgreen background row")
	}
}

func TestStdinMirrorsLines(t *testing.T) {
	con := &fakeConsole{}
	s := &Stdin{r: strings.NewReader("hello\nworld\n")}

	if err := s.Run(context.Background(), con); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if con.buf.String() != "hello\nworld\n" {
		t.Errorf("Mirrored output = %q, expected %q", con.buf.String(), "hello\nworld\n")
	}
}

// slowReader never yields data, standing in for a quiet terminal.
type slowReader struct{}

func (slowReader) Read(p []byte) (int, error) {
	time.Sleep(time.Hour)
	return 0, nil
}

func TestStdinStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	con := &fakeConsole{}
	s := &Stdin{r: slowReader{}}

	err := s.Run(ctx, con)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if con.buf.String() != "" {
		t.Errorf("Cancelled mirror produced output %q", con.buf.String())
	}
}
