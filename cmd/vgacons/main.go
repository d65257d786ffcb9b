// vgacons is a VGA text-mode console driver with a terminal viewer.
//
// Usage:
//
//	vgacons                  - Interactive home menu
//	vgacons demo             - Run a demo feed on an emulated display
//	vgacons view             - Watch the machine's real text console
//	vgacons dump             - Capture one frame and print it
//	vgacons snapshots        - Browse stored snapshots
//	vgacons themes           - List display themes
//	vgacons serve            - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.vgacons/config.yaml)
//	--db <path>      - Snapshots database path (overrides config)
//	--refresh <fps>  - Viewer refresh rate (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkoval/vgacons/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagRefresh int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vgacons",
	Short: "VGA text console - watch a 25x80 text-mode display in your terminal",
	Long: `vgacons drives a VGA text-mode display (25x80 cells, 16 colors) and
shows it live in your terminal.

The display is either an in-process emulated buffer fed by demo sources
or the machine's real text console mapped from physical memory.

Available commands:
  demo       - Run a demo feed on an emulated display
  view       - Watch the machine's real text console (needs /dev/mem)
  dump       - Capture one frame and print it as text
  snapshots  - Browse, preview and delete stored snapshots
  themes     - List display themes
  serve      - Start SSH server for remote viewing

Examples:
  vgacons
  vgacons demo --feed boot
  vgacons view --once
  vgacons dump --save --label baseline
  vgacons serve --ssh :2222`,
	Run: runHome,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: ~/.vgacons/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to snapshots database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRefresh, "refresh", 0, "Viewer refresh rate in frames per second (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration: the YAML config file
// plus any command-line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagRefresh > 0 {
		cfg.Display.RefreshRate = flagRefresh
	}
	return cfg
}
