// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/writequeue/writequeue.go
// Summary: Bounded-time outbound buffering over a non-blocking writer.
// Usage: Owned by internal/ioloop; fed keyboard bytes, drained into the PTY.
// Notes: One Send performs at most one write syscall and never loops
// until the queue drains - that bound is the whole point of this type.

package writequeue

import "golang.org/x/sys/unix"

// Writer is the non-blocking write primitive this queue drains into. It
// must return unix.EAGAIN/unix.EWOULDBLOCK verbatim rather than blocking.
type Writer interface {
	Write(b []byte) (int, error)
}

// Queue buffers bytes that couldn't be written immediately to a
// non-blocking Writer.
type Queue struct {
	w      Writer
	buffer []byte
}

// New returns an empty queue draining into w.
func New(w Writer) *Queue {
	return &Queue{w: w}
}

// Pending reports how many buffered bytes are still waiting to be
// written.
func (q *Queue) Pending() int {
	return len(q.buffer)
}

// Send appends text to the queue (if anything was already buffered) and
// attempts exactly one write of whatever is now at the front. On a
// partial write, the unwritten remainder stays buffered for the next
// Send call.
func (q *Queue) Send(text []byte) error {
	if len(q.buffer) == 0 {
		n, err := q.writeNonBlocking(text)
		if err != nil {
			return err
		}
		if n < len(text) {
			q.buffer = append(q.buffer, text[n:]...)
		}
		return nil
	}

	q.buffer = append(q.buffer, text...)
	n, err := q.writeNonBlocking(q.buffer)
	if err != nil {
		return err
	}
	q.buffer = q.buffer[n:]
	return nil
}

// writeNonBlocking performs exactly one write syscall, translating
// EAGAIN/EWOULDBLOCK into "zero bytes written, no error" per spec.
func (q *Queue) writeNonBlocking(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n, err := q.w.Write(b)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
