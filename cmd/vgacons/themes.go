package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkoval/vgacons/internal/platform/tui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List display themes",
	Long: `Shows the built-in palette themes with a swatch of their 16 colors.

Set the default with 'theme: <name>' under 'display' in the config,
or cycle themes with T inside the viewer.`,
	Run: runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := tui.Themes()

	fmt.Println("Available themes:")
	fmt.Println()

	for _, t := range themes {
		fmt.Printf("  %-10s %s\n", t.Name, t.Swatch())
	}

	fmt.Println()
	fmt.Println("The swatch shows hardware colors 0 (black) through 15 (white).")
}
