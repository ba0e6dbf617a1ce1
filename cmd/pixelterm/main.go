// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/pixelterm/main.go
// Summary: Entry point: flag parsing, collaborator wiring, run loop.
// Usage: Executed directly to open a PTY-backed terminal session.
// Notes: Owns process lifetime; every other package stays free of os.Exit.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/pixelterm/internal/config"
	"github.com/framegrace/pixelterm/internal/glyphcache"
	"github.com/framegrace/pixelterm/internal/ioloop"
	"github.com/framegrace/pixelterm/internal/ptyproc"
	"github.com/framegrace/pixelterm/internal/render/tcellrender"
	"github.com/framegrace/pixelterm/internal/screen"
	"github.com/framegrace/pixelterm/internal/termerr"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// A nil return covers both a QUIT event and the child shell exiting:
	// both end the session gracefully.
	if err := run(cfg); err != nil {
		log.Printf("pixelterm: %v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	cols := cfg.ScreenWidth / screen.CellWidth
	rows := cfg.ScreenHeight / screen.CellHeight

	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: new screen: %v", termerr.ResourceFailure, err)
	}
	if err := tcellScreen.Init(); err != nil {
		return fmt.Errorf("%w: init screen: %v", termerr.ResourceFailure, err)
	}
	defer tcellScreen.Fini()
	tcellScreen.EnableMouse()
	defer tcellScreen.DisableMouse()

	proc, err := ptyproc.Start(cfg.Shell, cfg.Term, cols, rows)
	if err != nil {
		return fmt.Errorf("%w: start shell: %v", termerr.ResourceFailure, err)
	}
	defer proc.Close()

	cache := glyphcache.New(tcellrender.Font{}, tcellrender.Uploader{})
	renderer := tcellrender.New(tcellScreen)
	scr := screen.New(cache, renderer)

	loop := ioloop.New(proc, tcellScreen, scr)
	return loop.Run()
}
