// Package main implements the xtile binary: a dynamic tiling X11 window
// manager. It wires a live X11 connection, the default compile-time
// binding table, and the window manager core (internal/wm) together and
// runs the single-threaded event loop until ActionQuit or a fatal X
// error.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xtile-wm/xtile/internal/config"
	"github.com/xtile-wm/xtile/internal/spawn"
	"github.com/xtile-wm/xtile/internal/wm"
	"github.com/xtile-wm/xtile/internal/xconn"
	"github.com/xtile-wm/xtile/internal/xlog"
)

// Version information, set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	logLevel string
	modKey   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xtile",
		Short: "A dynamic tiling window manager for X11",
		Long: `xtile is a dynamic tiling window manager for X11.

It manages windows across 9 virtual workspaces, tiling every non-floating
client into one special pane plus an equal-height stack, with mouse-driven
move/resize of floating windows and a fixed compile-time keybinding table
(see internal/config for the full table; there is no runtime config file).`,
		Example: `  # Run as the X session's window manager
  xtile

  # Run with verbose logging
  xtile --log-level debug`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&logLevel, "log-level", "info",
		"Log level: panic, fatal, error, warn, info, debug, trace")
	rootCmd.Flags().StringVar(&modKey, "mod-key", "",
		"Override the compile-time modifier key for quick testing: mod1, mod4, control, shift")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	if err := xlog.SetLevel(logLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if modKey != "" {
		mods, ok := config.ParseModKey(modKey)
		if !ok {
			return fmt.Errorf("invalid --mod-key %q: expected mod1, mod4, control, or shift", modKey)
		}
		config.SetModKey(mods)
	}

	if err := spawn.ReapChildren(); err != nil {
		xlog.Fatalf("installing SIGCHLD disposition: %v", err)
	}

	conn, err := xconn.Dial()
	if err != nil {
		xlog.Fatalf("connecting to X display: %v", err)
	}
	defer conn.Close()

	ctx, err := wm.New(conn, config.DefaultBindings())
	if err != nil {
		xlog.Fatalf("initializing window manager: %v", err)
	}

	xlog.WithField("screen", fmt.Sprintf("%dx%d", ctx.ScreenWidth, ctx.ScreenHeight)).
		Info("xtile starting")

	return ctx.Run()
}
