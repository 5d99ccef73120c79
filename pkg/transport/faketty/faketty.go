// Package faketty provides a scripted io.ReadWriter stand-in for a serial
// port, used by transport/zwave/cc tests to drive the exact byte sequences
// from the end-to-end scenarios without an attached dongle.
//
// Its Read semantics mirror go.bug.st/serial.Port: when no scripted bytes
// are available yet, Read returns (0, nil), the same "timed out waiting for
// data" signal a real port gives when SetReadTimeout has elapsed, rather
// than an io.EOF a caller might mistake for a closed stream.
//
// Replies are turn-based, not a single flat buffer: on real hardware the
// dongle has sent nothing at the moment a write goes out, so Transport's
// pre-write drain sees an empty stream, and the dongle's ACK/Response (and
// any unsolicited frames riding along with it) only become readable once
// the write actually happens. TTY models this by releasing the next reply
// segment on each frame Write rather than making every scripted byte
// readable from the start. A single-byte Write (the host's ACK/NAK for a
// frame it just read) releases nothing and leaves unread reply bytes in
// place.
package faketty

import (
	"bytes"
	"io"
)

// TTY replays one reply segment per Write call and records every Write.
type TTY struct {
	replies [][]byte
	next    int
	pending *bytes.Reader
	Written []byte
}

// New returns a TTY whose Nth multi-byte Write call releases replies[N-1]
// for subsequent Reads. A TTY with no replies (or before its first Write)
// always reads as empty, exactly like a dongle that hasn't spoken yet.
func New(replies ...[]byte) *TTY {
	return &TTY{pending: bytes.NewReader(nil), replies: replies}
}

func (t *TTY) Read(p []byte) (int, error) {
	if t.pending == nil || t.pending.Len() == 0 {
		return 0, nil
	}
	return t.pending.Read(p)
}

func (t *TTY) Write(p []byte) (int, error) {
	t.Written = append(t.Written, p...)
	if len(p) == 1 {
		return len(p), nil
	}
	if t.next < len(t.replies) {
		t.pending = bytes.NewReader(t.replies[t.next])
		t.next++
	} else {
		t.pending = bytes.NewReader(nil)
	}
	return len(p), nil
}

var _ io.ReadWriter = (*TTY)(nil)
