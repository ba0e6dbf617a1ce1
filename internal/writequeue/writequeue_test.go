// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package writequeue

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

type fakeWriter struct {
	accepts int // max bytes to accept per call, -1 for unlimited
	eagain  bool
	failErr error
	written []byte
	calls   int
}

func (f *fakeWriter) Write(b []byte) (int, error) {
	f.calls++
	if f.failErr != nil {
		return 0, f.failErr
	}
	if f.eagain {
		return 0, unix.EAGAIN
	}
	n := len(b)
	if f.accepts >= 0 && n > f.accepts {
		n = f.accepts
	}
	f.written = append(f.written, b[:n]...)
	return n, nil
}

func TestSendFullyWritesWhenQueueEmpty(t *testing.T) {
	w := &fakeWriter{accepts: -1}
	q := New(w)

	if err := q.Send([]byte("hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(w.written) != "hello" {
		t.Fatalf("got %q, want %q", w.written, "hello")
	}
	if q.Pending() != 0 {
		t.Fatalf("expected nothing queued, got %d bytes", q.Pending())
	}
	if w.calls != 1 {
		t.Fatalf("expected exactly one write syscall, got %d", w.calls)
	}
}

func TestSendBuffersPartialWrite(t *testing.T) {
	w := &fakeWriter{accepts: 2}
	q := New(w)

	if err := q.Send([]byte("hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(w.written) != "he" {
		t.Fatalf("got %q, want %q", w.written, "he")
	}
	if q.Pending() != 3 {
		t.Fatalf("expected 3 bytes still queued, got %d", q.Pending())
	}
}

func TestSendDrainsBufferedBytesBeforeNewOnes(t *testing.T) {
	w := &fakeWriter{accepts: 2}
	q := New(w)

	q.Send([]byte("hello")) // buffers "llo"
	w.accepts = -1
	if err := q.Send([]byte("!")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(w.written) != "hello!" {
		t.Fatalf("got %q, want %q", w.written, "hello!")
	}
	if q.Pending() != 0 {
		t.Fatalf("expected queue drained, got %d bytes pending", q.Pending())
	}
}

func TestSendTreatsEAGAINAsZeroBytesWritten(t *testing.T) {
	w := &fakeWriter{eagain: true}
	q := New(w)

	if err := q.Send([]byte("x")); err != nil {
		t.Fatalf("expected EAGAIN to be swallowed, got error: %v", err)
	}
	if q.Pending() != 1 {
		t.Fatalf("expected the byte to remain queued, got %d", q.Pending())
	}
}

func TestSendPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	w := &fakeWriter{failErr: boom}
	q := New(w)

	if err := q.Send([]byte("x")); !errors.Is(err, boom) {
		t.Fatalf("expected the underlying error to propagate, got %v", err)
	}
}

func TestSendPerformsAtMostOneWriteSyscall(t *testing.T) {
	w := &fakeWriter{accepts: -1}
	q := New(w)
	q.Send([]byte("abc"))
	if w.calls > 1 {
		t.Fatalf("expected at most one write syscall per Send, got %d", w.calls)
	}
}
