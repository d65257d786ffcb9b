package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkoval/vgacons/internal/feed"
	"github.com/pkoval/vgacons/internal/mem"
	"github.com/pkoval/vgacons/internal/storage"
	"github.com/pkoval/vgacons/internal/vga"
)

var (
	flagDumpSave  bool
	flagDumpLabel string
	flagDumpFeed  string
	flagDumpHW    bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Capture one frame and print it as text",
	Long: `Capture a single frame and print it to stdout, one line per row.

By default the frame comes from running a feed to completion on an
emulated display. Pick a feed that finishes: boot, colors, or stdin
with piped input. With --hw the frame is read from the machine's real
text console instead (requires root).

With --save the captured frame is also stored as a snapshot; the label
defaults to the frame's origin.

Examples:
  vgacons dump
  vgacons dump --feed colors
  dmesg | vgacons dump --feed stdin --save
  sudo vgacons dump --hw --save --label console-before-reboot`,
	Run: runDump,
}

func init() {
	dumpCmd.Flags().BoolVar(&flagDumpSave, "save", false, "Store the captured frame as a snapshot")
	dumpCmd.Flags().StringVar(&flagDumpLabel, "label", "", "Snapshot label (default: frame origin)")
	dumpCmd.Flags().StringVar(&flagDumpFeed, "feed", "boot", "Feed source to run before capturing")
	dumpCmd.Flags().BoolVar(&flagDumpHW, "hw", false, "Capture from the real text console via /dev/mem")
}

func runDump(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	var frame *vga.Frame
	origin := flagDumpFeed

	if flagDumpHW {
		origin = "console"
		dev, err := mem.MapPhys(vga.BufferAddr, vga.Width*vga.Height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error mapping text buffer: %v\n", err)
			fmt.Fprintln(os.Stderr, "Reading /dev/mem usually requires root.")
			os.Exit(1)
		}
		frame = vga.CaptureFrame(dev)
		dev.Close()
	} else {
		src, err := feed.Create(flagDumpFeed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'vgacons demo --list' to see available feeds.")
			os.Exit(1)
		}

		region, err := demoTarget()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fg, bg, err := cfg.Pen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		vga.SetColor(fg, bg)
		vga.Clear()

		if err := src.Run(context.Background(), feed.Global()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: feed stopped early: %v\n", err)
		}
		frame = vga.CaptureFrame(region)
	}

	fmt.Println(frame.String())

	if !flagDumpSave {
		return
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshots database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	label := flagDumpLabel
	if label == "" {
		label = origin
	}
	id, err := store.SaveSnapshot(label, frame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		os.Exit(1)
	}
	// Keep stdout clean for the frame text
	fmt.Fprintf(os.Stderr, "Saved snapshot %d (%s)\n", id, label)
}
