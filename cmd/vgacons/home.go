package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkoval/vgacons/internal/platform/tui"
	"github.com/pkoval/vgacons/internal/storage"
)

// runHome is the root command: an interactive menu looping between demo
// feeds and the snapshot browser until the user quits.
func runHome(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Menu loop
	for {
		result, err := tui.RunHome(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		switch result.Choice {
		case tui.ChoiceQuit:
			return

		case tui.ChoiceSnapshots:
			store, err := storage.Open(cfg.Storage.Path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not open snapshots database: %v\n", err)
				store = nil
			}
			goBack, sbErr := tui.RunBrowser(store, tui.ThemeByName(cfg.Display.Theme), width, height)
			if store != nil {
				store.Close()
			}
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return // User quit from the browser
			}

		case tui.ChoiceDemo:
			if err := runDemoSession(result.FeedID, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			// Loop back to menu
		}
	}
}
