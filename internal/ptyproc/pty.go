// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ptyproc/pty.go
// Summary: PTY allocation and child shell spawn.
// Usage: Started and closed by cmd/pixelterm; read, written and resized by
// internal/ioloop for the lifetime of one session.
// Notes: Close is idempotent, mirroring the RAII-shaped fd ownership in
// original_source/pty_utils.hpp and the teacher's PTYApp.Stop. Reads and
// writes go through golang.org/x/sys/unix directly on the raw fd rather
// than *os.File, because os.File.Read blocks the calling goroutine on
// the runtime's netpoller instead of surfacing EAGAIN - the I/O loop and
// write queue need the real non-blocking syscall result.
package ptyproc

import (
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// Process owns a PTY master fd and the child shell attached to its slave
// end.
type Process struct {
	master *os.File
	fd     int
	cmd    *exec.Cmd

	closeOnce sync.Once
	closeErr  error
}

// Start spawns shell as a child process attached to a freshly allocated
// PTY sized cols x rows, with TERM set to term.
func Start(shell, term string, cols, rows int) (*Process, error) {
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM="+term)

	master, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}
	fd := int(master.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		master.Close()
		cmd.Process.Kill()
		return nil, err
	}

	return &Process{master: master, fd: fd, cmd: cmd}, nil
}

// Read performs one non-blocking read of up to len(b) bytes from the PTY
// master. It returns unix.EAGAIN/unix.EWOULDBLOCK verbatim when no data
// is ready; the I/O loop is responsible for treating that as zero bytes.
func (p *Process) Read(b []byte) (int, error) {
	return unix.Read(p.fd, b)
}

// Write performs one non-blocking write of b, returning unix.EAGAIN/
// unix.EWOULDBLOCK verbatim when the fd's buffer is full; the write
// queue is responsible for treating that as zero bytes.
func (p *Process) Write(b []byte) (int, error) {
	return unix.Write(p.fd, b)
}

// Resize updates the PTY's window size, e.g. on a terminal resize event.
func (p *Process) Resize(cols, rows int) error {
	return pty.Setsize(p.master, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

// Wait blocks until the child shell exits and returns its error, if any.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}

// Close releases the PTY master and signals the child to terminate. Safe
// to call more than once; only the first call has effect.
func (p *Process) Close() error {
	p.closeOnce.Do(func() {
		if p.cmd.Process != nil {
			p.cmd.Process.Signal(syscall.SIGTERM)
		}
		p.closeErr = p.master.Close()
	})
	return p.closeErr
}
