// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/config.go
// Summary: Command-line configuration for the terminal core.
// Usage: Parsed once in cmd/pixelterm/main.go and threaded through wiring.
// Notes: Stdlib flag, matching cmd/texel-server/main.go; no third-party
// CLI framework is imported anywhere in the retrieved pack.

package config

import "flag"

// Config holds the process-level settings the core's collaborators need
// at startup. None of this is read by the core itself (spec.md §6:
// "Environment: none read by the core"); it exists purely to wire up
// the PTY, renderer, and glyph cache from cmd/pixelterm.
type Config struct {
	Shell        string
	Term         string
	FontPattern  string
	FontSize     int
	ScreenWidth  int
	ScreenHeight int
	LogPath      string
}

// Parse builds a Config from args (typically os.Args[1:]), applying the
// spec's defaults for anything not overridden.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pixelterm", flag.ContinueOnError)
	cfg := &Config{}

	fs.StringVar(&cfg.Shell, "shell", "/bin/sh", "shell to spawn inside the PTY")
	fs.StringVar(&cfg.Term, "term", "xterm-256color", "TERM value exported to the child shell")
	fs.StringVar(&cfg.FontPattern, "font", ":mono", "font-config pattern used to discover the monospace font")
	fs.IntVar(&cfg.FontSize, "font-size", 16, "font size in points")
	fs.IntVar(&cfg.ScreenWidth, "width", 640, "screen width in pixels")
	fs.IntVar(&cfg.ScreenHeight, "height", 384, "screen height in pixels")
	fs.StringVar(&cfg.LogPath, "log", "", "file to log to (default: stderr)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
