// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ioloop/loop.go
// Summary: Single-threaded cooperative frame loop (spec §4.4).
// Usage: Constructed once by cmd/pixelterm and run for the session's
// lifetime.
// Notes: Event draining and PTY reads are both bounded per frame so one
// noisy source never starves the other; grounded on
// internal/devshell/runner.go's PollEvent loop and
// texel/desktop_engine_core.go's wheel-to-scroll mapping.

package ioloop

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sys/unix"

	"github.com/framegrace/pixelterm/internal/ansiblock"
	"github.com/framegrace/pixelterm/internal/screen"
	"github.com/framegrace/pixelterm/internal/termerr"
	"github.com/framegrace/pixelterm/internal/writequeue"
)

// keyQuit mirrors the teacher's Ctrl+Q window-close binding (texel/screen.go),
// standing in for spec.md's abstract QUIT input event.
const keyQuit = tcell.KeyCtrlQ

const (
	maxEventsPerFrame = 100
	maxReadPerFrame   = 256
	framePeriod       = 20 * time.Millisecond
)

// PTY is the subset of ptyproc.Process the loop needs: a non-blocking
// reader for shell output, a non-blocking writer for the write queue, and
// a way to tell the shell the terminal changed size.
type PTY interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Resize(cols, rows int) error
}

// Loop ties the parser, screen model, write queue, and tcell event
// stream together into spec.md §4.4's frame loop.
type Loop struct {
	pty         PTY
	tcellScreen tcell.Screen
	stream      *ansiblock.BlockStream
	scr         *screen.Screen
	queue       *writequeue.Queue
}

// New builds a loop over an already-started PTY and an already-Init'd
// tcell screen.
func New(pty PTY, tcellScreen tcell.Screen, scr *screen.Screen) *Loop {
	return &Loop{
		pty:         pty,
		tcellScreen: tcellScreen,
		stream:      ansiblock.NewBlockStream(),
		scr:         scr,
		queue:       writequeue.New(pty),
	}
}

// Run drives frames until a QUIT event, the child shell exits, or an
// unrecoverable I/O error occurs. A nil return means a graceful end
// (QUIT or child exit); a non-nil return is termerr.IOFatal-wrapped.
func (l *Loop) Run() error {
	l.scr.Redraw()

	readBuf := make([]byte, maxReadPerFrame)
	for {
		redraw, quit, err := l.drainEvents()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if redraw {
			l.scr.Redraw()
		}

		done, err := l.readPTY(readBuf)
		if err != nil {
			if errors.Is(err, termerr.ChildExited) {
				return nil
			}
			return err
		}
		if done {
			return nil
		}

		time.Sleep(framePeriod)
	}
}

// drainEvents processes up to maxEventsPerFrame tcell events.
func (l *Loop) drainEvents() (redraw, quit bool, err error) {
	for i := 0; i < maxEventsPerFrame; i++ {
		if !l.tcellScreen.HasPendingEvent() {
			break
		}
		ev := l.tcellScreen.PollEvent()
		q, r, sendErr := l.handleEvent(ev)
		if sendErr != nil {
			return redraw, false, fmt.Errorf("send to pty: %w: %w", termerr.IOFatal, sendErr)
		}
		if q {
			return redraw, true, nil
		}
		if r {
			redraw = true
		}
	}
	return redraw, false, nil
}

func (l *Loop) handleEvent(ev tcell.Event) (quit, redraw bool, err error) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		switch tev.Key() {
		case keyQuit:
			return true, false, nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			err = l.queue.Send([]byte{'\b'})
		case tcell.KeyEnter:
			err = l.queue.Send([]byte{'\n'})
		case tcell.KeyRune:
			err = l.queue.Send([]byte(string(tev.Rune())))
		}
	case *tcell.EventMouse:
		if dy := wheelDelta(tev.Buttons()); dy != 0 {
			line, cell := l.scr.Start()
			l.scr.SetStart(line+dy, cell)
			redraw = true
		}
	case *tcell.EventResize:
		cols, rows := tev.Size()
		err = l.pty.Resize(cols, rows)
		redraw = true
	}
	return quit, redraw, err
}

func wheelDelta(mask tcell.ButtonMask) int {
	dy := 0
	if mask&tcell.WheelUp != 0 {
		dy--
	}
	if mask&tcell.WheelDown != 0 {
		dy++
	}
	return dy
}

// readPTY performs one bounded, non-blocking read and applies whatever
// Blocks it produces. done is true when the session should end; a done
// read that failed with EIO returns termerr.ChildExited, which Run
// treats as a graceful end rather than a fatal error.
func (l *Loop) readPTY(buf []byte) (done bool, err error) {
	n, readErr := l.pty.Read(buf)
	switch {
	case readErr == unix.EAGAIN || readErr == unix.EWOULDBLOCK:
		return false, nil
	case readErr == unix.EIO:
		return true, termerr.ChildExited
	case readErr != nil:
		return false, fmt.Errorf("pty read: %w: %v", termerr.IOFatal, readErr)
	}

	if n == 0 {
		return false, nil
	}

	blocks := l.stream.Consume(buf[:n])
	if len(blocks) == 0 {
		return false, nil
	}
	for _, b := range blocks {
		l.scr.Apply(b)
	}
	l.tcellScreen.Show()
	return false, nil
}
