package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoval/vgacons/internal/mem"
	"github.com/pkoval/vgacons/internal/platform/tui"
	"github.com/pkoval/vgacons/internal/storage"
	"github.com/pkoval/vgacons/internal/vga"
)

var flagOnce bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Watch the machine's text console",
	Long: `Map the VGA text buffer at physical address 0xB8000 through /dev/mem
and watch the machine's console live.

Reading /dev/mem requires root, and the kernel must allow access to the
legacy video range (CONFIG_STRICT_DEVMEM permits it by default). On
machines without a text-mode console the buffer reads as zeroes.

With --once a single frame is printed to stdout as plain text instead
of opening the viewer.

Examples:
  sudo vgacons view
  sudo vgacons view --once
  sudo vgacons view --refresh 10`,
	Run: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagOnce, "once", false, "Print one frame to stdout and exit")
}

func runView(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	dev, err := mem.MapPhys(vga.BufferAddr, vga.Width*vga.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error mapping text buffer: %v\n", err)
		fmt.Fprintln(os.Stderr, "Reading /dev/mem usually requires root.")
		os.Exit(1)
	}
	defer dev.Close()

	if flagOnce {
		fmt.Println(vga.CaptureFrame(dev).String())
		return
	}

	// Open snapshot storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open snapshots database: %v\n", err)
		// Continue without storage - viewing still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunViewer(dev, store, tui.ViewerOptions{
		Theme:       cfg.Display.Theme,
		RefreshRate: cfg.Display.RefreshRate,
		ShowCursor:  cfg.Display.ShowCursor,
		Width:       width,
		Height:      height,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
