// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termerr/termerr.go
// Summary: Sentinel error kinds for the session lifecycle.
// Usage: Wrapped with fmt.Errorf("...: %w", ...) and matched with errors.Is.

package termerr

import "errors"

// ParseMalformed marks input the parser recovered from by substituting a
// sentinel block; it is never surfaced past internal/ansiblock.
var ParseMalformed = errors.New("malformed input recovered with a sentinel block")

// WouldBlock marks a non-blocking I/O call that had nothing to do this
// tick; the caller retries next frame.
var WouldBlock = errors.New("operation would block")

// ChildExited marks EIO on a PTY read: the child shell closed its end.
// The session should end gracefully.
var ChildExited = errors.New("child shell exited")

// IOFatal marks any other read/write/syscall failure. The session
// terminates with a nonzero exit code.
var IOFatal = errors.New("fatal I/O error")

// ResourceFailure marks a startup failure in font discovery, renderer
// initialization, or glyph rasterization/upload. Initialization fails
// and the error is returned to the caller.
var ResourceFailure = errors.New("resource initialization failed")
