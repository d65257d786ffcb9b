package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkoval/vgacons/internal/feed"
	"github.com/pkoval/vgacons/internal/platform/tui"
	"github.com/pkoval/vgacons/internal/vga"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeFeed   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the vgacons SSH server",
	Long: `Start an SSH server that shows the display to remote viewers.

One feed drives a shared emulated display; every SSH session gets its
own viewer over it with independent theme, pause and cursor state.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.vgacons/host_key

Examples:
  vgacons serve                          # Listen on :23235 with auto-generated key
  vgacons serve --ssh :2222              # Listen on port 2222
  vgacons serve --feed boot              # Drive the display with the boot feed
  vgacons serve --host-key ./my_host_key # Use specific host key

Viewers can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address, host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeFeed, "feed", "counter", "Feed source driving the display")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	// Check if feed exists
	if !feed.Exists(flagServeFeed) {
		fmt.Fprintf(os.Stderr, "Error: unknown feed %q\n", flagServeFeed)
		fmt.Fprintln(os.Stderr, "Run 'vgacons demo --list' to see available feeds.")
		os.Exit(1)
	}

	cfg := loadConfig()

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeout) * time.Minute,
		Theme:       cfg.Display.Theme,
		RefreshRate: cfg.Display.RefreshRate,
		ShowCursor:  cfg.Display.ShowCursor,
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	src, err := feed.Create(flagServeFeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := src.Run(ctx, feed.Global()); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Warning: feed %s stopped: %v\n", flagServeFeed, err)
		}
	}()

	server, err := tui.NewSSHServer(region, srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting vgacons SSH server on %s\n", srvCfg.Address)
	fmt.Printf("Driving the display with feed %q\n", flagServeFeed)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
