package vga

import (
	"strings"
	"sync"
	"testing"
)

var (
	consoleOnce   sync.Once
	consoleRegion *recordRegion
)

// consoleTarget binds the global console to a recording region, once for
// the whole test binary. The console is process-wide state, so every
// console test shares the same binding.
func consoleTarget() *recordRegion {
	consoleOnce.Do(func() {
		consoleRegion = newRecordRegion()
		if err := Bind(consoleRegion); err != nil {
			panic(err)
		}
	})
	return consoleRegion
}

func TestConsolePrintFlow(t *testing.T) {
	region := consoleTarget()
	Clear()

	Print("boot")
	Printf(" %d%%", 42)
	Println()

	f := CaptureFrame(region)
	if !strings.HasPrefix(f.Row(Height-2), "boot 42%") {
		t.Errorf("Row above bottom = %q, expected to start with \"boot 42%%\"", f.Row(Height-2))
	}
	if got := strings.TrimRight(f.Row(Height-1), " "); got != "" {
		t.Errorf("Bottom row = %q, expected blank after the trailing newline", got)
	}
}

func TestConsoleSetColor(t *testing.T) {
	region := consoleTarget()
	Clear()

	SetColor(LightGreen, Black)
	Print("ok")

	f := CaptureFrame(region)
	cell := f[Height-1][0]
	if cell.Char != 'o' {
		t.Errorf("Bottom row first cell = %q, expected 'o'", cell.Char)
	}
	if cell.Attr != NewAttr(LightGreen, Black) {
		t.Errorf("Cell attr = %#02x, expected %#02x", cell.Attr, NewAttr(LightGreen, Black))
	}

	SetColor(Yellow, Black)
}

func TestConsoleRebindFails(t *testing.T) {
	consoleTarget()
	Print("")

	if err := Bind(newRecordRegion()); err == nil {
		t.Error("Bind should fail once the console writer exists")
	}
}

func TestConsoleConcurrentWrites(t *testing.T) {
	region := consoleTarget()
	Clear()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				Println("goroutine", n, "line", j)
			}
		}(i)
	}
	wg.Wait()

	// The lock serializes whole calls, so no visible row mixes output
	// from two goroutines.
	f := CaptureFrame(region)
	for row := 0; row < Height; row++ {
		line := strings.TrimRight(f.Row(row), " ")
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "goroutine ") {
			t.Errorf("Row %d = %q, expected one whole printed line", row, line)
		}
	}
}
