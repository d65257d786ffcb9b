package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoval/vgacons/internal/config"
	"github.com/pkoval/vgacons/internal/feed"
	"github.com/pkoval/vgacons/internal/mem"
	"github.com/pkoval/vgacons/internal/platform/tui"
	"github.com/pkoval/vgacons/internal/storage"
	"github.com/pkoval/vgacons/internal/vga"
)

var (
	flagFeed      string
	flagListFeeds bool
	flagDemoHW    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demo feed on the display",
	Long: `Run a feed source against an in-process emulated text buffer and
watch it live in the terminal viewer.

With --hw the feed writes to the machine's real text console instead,
through /dev/mem, moving the hardware cursor as it goes. That needs
root and a console in text mode.

Viewer controls:
  P          - Pause/resume capture
  T          - Cycle palette theme
  C          - Toggle cursor
  S          - Save current frame as a snapshot
  Q/Ctrl+C   - Quit

The stdin feed mirrors piped input onto the display:
  dmesg | vgacons demo --feed stdin

Examples:
  vgacons demo
  vgacons demo --feed counter
  vgacons demo --feed colors --refresh 60
  vgacons demo --list
  sudo vgacons demo --feed boot --hw`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagFeed, "feed", "boot", "Feed source to run")
	demoCmd.Flags().BoolVar(&flagListFeeds, "list", false, "List available feed sources")
	demoCmd.Flags().BoolVar(&flagDemoHW, "hw", false, "Drive the real text console via /dev/mem")
}

func runDemo(_ *cobra.Command, _ []string) {
	if flagListFeeds {
		listFeeds()
		return
	}

	// Check if feed exists
	if !feed.Exists(flagFeed) {
		fmt.Fprintf(os.Stderr, "Error: unknown feed %q\n", flagFeed)
		fmt.Fprintln(os.Stderr, "Run 'vgacons demo --list' to see available feeds.")
		os.Exit(1)
	}

	cfg := loadConfig()

	var err error
	if flagDemoHW {
		err = runHardwareSession(flagFeed, cfg)
	} else {
		err = runDemoSession(flagFeed, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listFeeds() {
	sources := feed.List()

	if len(sources) == 0 {
		fmt.Println("No feeds available.")
		return
	}

	fmt.Println("Available feeds:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print feeds
	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'vgacons demo --feed <id>' to watch one.")
}

// demoRegion is the emulated text buffer shared by demo runs. The console
// driver binds once per process, so repeated runs from the home menu reuse
// the same region.
var demoRegion *mem.BusRegion

func demoTarget() (*mem.BusRegion, error) {
	if demoRegion != nil {
		return demoRegion, nil
	}
	region := mem.NewTextRegion()
	if err := vga.Bind(region); err != nil {
		return nil, err
	}
	demoRegion = region
	return demoRegion, nil
}

// runDemoSession drives one feed into the emulated display and shows it
// in the viewer until the user quits.
func runDemoSession(feedID string, cfg config.Config) error {
	src, err := feed.Create(feedID)
	if err != nil {
		return err
	}

	region, err := demoTarget()
	if err != nil {
		return err
	}

	return watchFeed(src, feedID, region, cfg)
}

// runHardwareSession drives one feed into the machine's real text console
// and mirrors it in the viewer.
func runHardwareSession(feedID string, cfg config.Config) error {
	src, err := feed.Create(feedID)
	if err != nil {
		return err
	}

	dev, err := mem.MapPhys(vga.BufferAddr, vga.Width*vga.Height)
	if err != nil {
		return err
	}
	defer dev.Close()

	if ports, portErr := mem.OpenPorts(); portErr == nil {
		dev.AttachPorts(ports)
		defer ports.Close()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: hardware cursor disabled: %v\n", portErr)
	}

	if err := vga.Bind(dev); err != nil {
		return err
	}

	return watchFeed(src, feedID, dev, cfg)
}

// watchFeed starts the feed writing through the console and opens the
// viewer over the region; the feed is cancelled when the viewer exits.
func watchFeed(src feed.Source, feedID string, region vga.Region, cfg config.Config) error {
	fg, bg, err := cfg.Pen()
	if err != nil {
		return err
	}
	vga.SetColor(fg, bg)
	vga.Clear()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := src.Run(ctx, feed.Global()); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Warning: feed %s stopped: %v\n", feedID, err)
		}
	}()

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

	return tui.RunViewer(region, store, tui.ViewerOptions{
		Theme:       cfg.Display.Theme,
		RefreshRate: cfg.Display.RefreshRate,
		ShowCursor:  cfg.Display.ShowCursor,
		Width:       width,
		Height:      height,
	})
}
