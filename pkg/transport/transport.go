// Package transport owns the raw byte stream to the Z-Wave controller
// dongle: the per-byte read timeout and retry discipline, the ACK/NAK
// handshake on every parsed SOF frame, and the FIFO queue of unsolicited
// Request frames drained opportunistically before each write/read.
package transport

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/librescoot/zwave-driver/pkg/frame"
	"github.com/librescoot/zwave-driver/pkg/telemetry"
	"github.com/librescoot/zwave-driver/pkg/zerr"
)

// defaultRetries bounds how many times a single byte read is retried after
// a timeout before the caller gives up on that read. Matches spec.md's
// default top-level retry count of 10.
const defaultRetries = 10

// Option configures a Transport.
type Option func(*Transport)

// WithReadTimeout records the per-byte read timeout. Transport does not
// apply it to the underlying stream: a read that times out is recognized
// only by the stream returning zero bytes, so production callers using
// go.bug.st/serial set Port.SetReadTimeout to the same value themselves.
func WithReadTimeout(d time.Duration) Option {
	return func(t *Transport) { t.byteTimeout = d }
}

// WithRetries overrides the number of timed-out byte reads tolerated
// before a read is abandoned.
func WithRetries(n int) Option {
	return func(t *Transport) { t.retries = n }
}

// WithLogger attaches a telemetry.Logger; a nil logger still logs, without
// a prefix, at Info level and above.
func WithLogger(l *telemetry.Logger) Option {
	return func(t *Transport) { t.log = l }
}

// Transport serializes all access to a single duplex byte stream.
type Transport struct {
	rw          io.ReadWriter
	mu          sync.Mutex
	byteTimeout time.Duration
	retries     int
	log         *telemetry.Logger

	unsolicited [][]byte
}

// New wraps rw (a go.bug.st/serial Port in production, faketty.TTY in
// tests) with framing, retry, and queueing behavior.
func New(rw io.ReadWriter, opts ...Option) *Transport {
	t := &Transport{
		rw:          rw,
		byteTimeout: 100 * time.Millisecond,
		retries:     defaultRetries,
		log:         telemetry.New("transport", telemetry.LevelInfo),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

const opRead = "transport.ReadFrame"
const opWrite = "transport.WriteFrame"
const opDrain = "transport.Drain"

// readByteRetried reads a single byte, retrying on a zero-byte ("timed
// out") result up to t.retries times. ok is false only when every retry
// timed out; err is non-nil only on a genuine stream error.
func (t *Transport) readByteRetried(ctx context.Context) (byte, bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	buf := make([]byte, 1)
	for attempt := 0; attempt <= t.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, false, zerr.Wrap(zerr.IO, opRead, err)
		}
		n, err := t.rw.Read(buf)
		if err != nil {
			return 0, false, zerr.Wrap(zerr.IO, opRead, err)
		}
		if n == 1 {
			return buf[0], true, nil
		}
		if attempt > 0 {
			t.log.Warnf("retrying byte read (attempt %d/%d)", attempt+1, t.retries+1)
		}
	}
	return 0, false, nil
}

// readExact reads n bytes that are expected to already be in flight (mid
// frame): a timed-out retry budget running out here is a hard IO error,
// unlike the opportunistic first-byte read.
func (t *Transport) readExact(ctx context.Context, n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	for len(buf) < n {
		b, ok, err := t.readByteRetried(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, zerr.New(zerr.IO, opRead, "timed out mid-frame")
		}
		buf = append(buf, b)
	}
	return buf, nil
}

func (t *Transport) writeRaw(b []byte) error {
	t.log.Debugf("TX raw: %s", telemetry.HexDump(b))
	if _, err := t.rw.Write(b); err != nil {
		return zerr.Wrap(zerr.IO, opWrite, err)
	}
	return nil
}

// readOneFrame reads and parses a single frame. ok is false when the
// opportunistic first-byte read timed out with no data available at all.
// A parsed SOF frame triggers an ACK back to the dongle; a frame that
// fails to parse triggers a NAK and is returned as an error.
func (t *Transport) readOneFrame(ctx context.Context) (frame.Frame, bool, error) {
	hb, ok, err := t.readByteRetried(ctx)
	if err != nil {
		return frame.Frame{}, false, err
	}
	if !ok {
		return frame.Frame{}, false, nil
	}

	if hb != byte(frame.SOF) {
		f, err := frame.Decode([]byte{hb})
		if err != nil {
			t.log.Errorf("unknown header byte 0x%02x", hb)
			return frame.Frame{}, false, err
		}
		return f, true, nil
	}

	lenByte, err := t.readExact(ctx, 1)
	if err != nil {
		return frame.Frame{}, false, err
	}
	rest, err := t.readExact(ctx, int(lenByte[0]))
	if err != nil {
		return frame.Frame{}, false, err
	}

	buf := make([]byte, 0, 2+len(rest))
	buf = append(buf, hb)
	buf = append(buf, lenByte...)
	buf = append(buf, rest...)

	t.log.Debugf("RX raw: %s", telemetry.HexDump(buf))

	f, decErr := frame.Decode(buf)
	if decErr != nil {
		t.log.Errorf("frame decode failed: %v", decErr)
		_ = t.writeRaw(frame.EncodeHeader(frame.NAK))
		return frame.Frame{}, false, decErr
	}
	if err := t.writeRaw(frame.EncodeHeader(frame.ACK)); err != nil {
		return frame.Frame{}, false, err
	}
	return f, true, nil
}

// Drain opportunistically reads whatever frames are immediately available
// and pushes every SOF Request payload onto the unsolicited queue. A
// timeout ends the drain without error.
func (t *Transport) Drain(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.drainLocked(ctx)
}

func (t *Transport) drainLocked(ctx context.Context) error {
	for {
		f, ok, err := t.readOneFrame(ctx)
		if err != nil {
			return zerr.Wrap(zerr.IO, opDrain, err)
		}
		if !ok {
			return nil
		}
		if f.IsSOF() && f.Type == frame.Request {
			t.unsolicited = append(t.unsolicited, append([]byte(nil), f.Payload...))
			t.log.Infof("queued unsolicited frame function=%v len=%d", f.Function, len(f.Payload))
		}
	}
}

// ReadFrame drains any pending unsolicited traffic and returns the oldest
// queued Request payload, if any.
func (t *Transport) ReadFrame(ctx context.Context) ([]byte, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.drainLocked(ctx); err != nil {
		return nil, false, err
	}
	if len(t.unsolicited) == 0 {
		return nil, false, nil
	}
	payload := t.unsolicited[0]
	t.unsolicited = t.unsolicited[1:]
	return payload, true, nil
}

// Request sends a SOF Request frame and waits for the two-step handshake:
// a header-only ACK, then a SOF Response frame whose function matches.
// The caller (the transaction engine) is responsible for validating the
// shape of the returned payload, since acceptance-byte conventions differ
// by function (a bare [0x01] for SendData, a 34-byte node bitmap for
// DiscoveryNodes, and so on). Any interleaved unsolicited Request frames
// seen while waiting are queued, not discarded.
func (t *Transport) Request(ctx context.Context, function frame.Function, payload []byte) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.drainLocked(ctx)

	raw := frame.Encode(frame.Request, function, payload)
	t.log.Infof("TX function=%v len=%d", function, len(payload))
	if err := t.writeRaw(raw); err != nil {
		return nil, err
	}

	hb, ok, err := t.readByteRetried(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case ok && hb == byte(frame.CAN):
		t.log.Errorf("write canceled by link (CAN)")
		return nil, zerr.Wrap(zerr.IO, opWrite, zerr.ErrCAN)
	case ok && hb == byte(frame.NAK):
		t.log.Errorf("write rejected by link (NAK)")
		return nil, zerr.Wrap(zerr.IO, opWrite, zerr.ErrNAK)
	case !ok || hb != byte(frame.ACK):
		t.log.Errorf("write not ACKed (header=0x%02x ok=%v)", hb, ok)
		return nil, zerr.New(zerr.IO, opWrite, "link did not ACK write")
	}

	for {
		resp, ok, err := t.readOneFrame(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, zerr.New(zerr.IO, opWrite, "timed out waiting for API response")
		}
		if resp.IsSOF() && resp.Type == frame.Request {
			t.unsolicited = append(t.unsolicited, append([]byte(nil), resp.Payload...))
			continue
		}
		if !resp.IsSOF() || resp.Type != frame.Response || resp.Function != function {
			return nil, zerr.New(zerr.IO, opWrite, "unexpected response to write")
		}
		t.log.Infof("response received function=%v len=%d", function, len(resp.Payload))
		return resp.Payload, nil
	}
}
