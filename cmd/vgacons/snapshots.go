package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoval/vgacons/internal/platform/tui"
	"github.com/pkoval/vgacons/internal/storage"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots [clear | show [id]]",
	Short: "Browse stored snapshots",
	Long: `Open the snapshot browser: a table of stored frames to preview or
delete.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Preview snapshot
  D            - Delete snapshot
  Esc/B        - Back
  Q            - Quit

With 'show' the snapshot is printed to stdout as plain text instead;
without an id the most recent one is shown. With 'clear' all snapshots
are deleted.

Examples:
  vgacons snapshots
  vgacons snapshots show
  vgacons snapshots show 12
  vgacons snapshots clear
  vgacons snapshots --db ./frames.db`,
	Args: cobra.MaximumNArgs(2),
	Run:  runSnapshots,
}

func runSnapshots(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	if len(args) > 0 {
		switch args[0] {
		case "clear":
			clearSnapshots(cfg.Storage.Path)
		case "show":
			var id int64
			if len(args) == 2 {
				parsed, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: snapshot id %q is not a number\n", args[1])
					os.Exit(1)
				}
				id = parsed
			}
			showSnapshot(cfg.Storage.Path, id)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", args[0])
			os.Exit(1)
		}
		return
	}

	// Open snapshot storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open snapshots database: %v\n", err)
		// Continue without storage - the browser shows an empty state
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	_, browseErr := tui.RunBrowser(store, tui.ThemeByName(cfg.Display.Theme), width, height)
	if store != nil {
		store.Close()
	}
	if browseErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", browseErr)
		os.Exit(1)
	}
}

// showSnapshot prints one stored frame as plain text. id 0 selects the
// most recent snapshot.
func showSnapshot(dbPath string, id int64) {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshots database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entry *storage.SnapshotEntry
	if id > 0 {
		entry, err = store.Snapshot(id)
	} else {
		entry, err = store.LatestSnapshot()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if entry == nil {
		if id > 0 {
			fmt.Fprintf(os.Stderr, "Error: no snapshot with id %d\n", id)
		} else {
			fmt.Fprintln(os.Stderr, "Error: no snapshots stored yet")
		}
		os.Exit(1)
	}

	frame, err := entry.Frame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Snapshot %d (%s), saved %s\n", entry.ID, entry.Label, entry.CreatedAt.Format("Jan 02 15:04:05"))
	fmt.Println(frame.String())
}

func clearSnapshots(dbPath string) {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshots database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearSnapshots(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All snapshots cleared.")
}
