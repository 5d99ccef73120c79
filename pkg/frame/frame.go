// Package frame implements the Z-Wave serial framing codec: the
// SOF/ACK/NAK/CAN handshake bytes and the length+checksum envelope that
// wraps every Request/Response exchanged with the controller dongle.
//
// Encode and Decode are pure and stateless; they perform no I/O. The
// transport package is responsible for reading/writing the bytes they
// produce and consume.
package frame

import "github.com/librescoot/zwave-driver/pkg/zerr"

// Header is one of the four single-byte framing headers.
type Header byte

const (
	SOF Header = 0x01 // Start of Frame
	ACK Header = 0x06 // Message accepted
	NAK Header = 0x15 // Message not accepted
	CAN Header = 0x18 // Cancel / resend request
)

func (h Header) String() string {
	switch h {
	case SOF:
		return "SOF"
	case ACK:
		return "ACK"
	case NAK:
		return "NAK"
	case CAN:
		return "CAN"
	default:
		return "unknown"
	}
}

func headerFromByte(b byte) (Header, bool) {
	switch Header(b) {
	case SOF, ACK, NAK, CAN:
		return Header(b), true
	default:
		return 0, false
	}
}

// Type distinguishes a Request from a Response within a SOF frame.
type Type byte

const (
	Request  Type = 0x00
	Response Type = 0x01
)

func typeFromByte(b byte) (Type, bool) {
	switch Type(b) {
	case Request, Response:
		return Type(b), true
	default:
		return 0, false
	}
}

// Frame is a single parsed serial frame. For header-only frames (ACK, NAK,
// CAN) only Header is meaningful.
type Frame struct {
	Header   Header
	Type     Type
	Function Function
	Payload  []byte
}

// IsSOF reports whether f carries a structured type/function/payload.
func (f Frame) IsSOF() bool { return f.Header == SOF }

// Encode serializes a SOF frame: header, length, type, function, payload,
// checksum.
func Encode(typ Type, function Function, payload []byte) []byte {
	buf := make([]byte, 0, 4+len(payload)+1)
	buf = append(buf, byte(SOF), byte(len(payload)+3), byte(typ), byte(function))
	buf = append(buf, payload...)
	buf = append(buf, Checksum(buf))
	return buf
}

// EncodeHeader serializes a header-only frame (ACK, NAK, or CAN) as its
// single byte.
func EncodeHeader(h Header) []byte {
	return []byte{byte(h)}
}

// Checksum computes the XOR checksum over buf, seeded with 0xFF and skipping
// buf[0] (the header byte is never part of the checksum). buf must start at
// the header byte and run through (but not include) the checksum byte
// itself when encoding, or through the last payload byte when verifying.
func Checksum(buf []byte) byte {
	cs := byte(0xFF)
	for i := 1; i < len(buf); i++ {
		cs ^= buf[i]
	}
	return cs
}

const op = "frame.Decode"

// Decode parses a raw byte slice into a Frame. It fails with UnknownZWave on
// any structural violation: empty input, unknown header, short SOF frame,
// length mismatch, checksum mismatch, or an unrecognized type/function byte.
func Decode(data []byte) (Frame, error) {
	if len(data) == 0 {
		return Frame{}, zerr.New(zerr.UnknownZWave, op, "empty frame")
	}

	header, ok := headerFromByte(data[0])
	if !ok {
		return Frame{}, zerr.Newf(zerr.UnknownZWave, op, "unknown header byte 0x%02x", data[0])
	}

	if header != SOF {
		return Frame{Header: header}, nil
	}

	if len(data) < 5 {
		return Frame{}, zerr.New(zerr.UnknownZWave, op, "SOF frame shorter than 5 bytes")
	}

	if data[1] != byte(len(data)-2) {
		return Frame{}, zerr.New(zerr.UnknownZWave, op, "length byte does not match frame size")
	}

	if got := Checksum(data[:len(data)-1]); got != data[len(data)-1] {
		return Frame{}, zerr.Newf(zerr.UnknownZWave, op, "checksum mismatch: got 0x%02x want 0x%02x", got, data[len(data)-1])
	}

	typ, ok := typeFromByte(data[2])
	if !ok {
		return Frame{}, zerr.Newf(zerr.UnknownZWave, op, "unknown frame type byte 0x%02x", data[2])
	}

	function, ok := FunctionFromByte(data[3])
	if !ok {
		return Frame{}, zerr.Newf(zerr.UnknownZWave, op, "unknown function byte 0x%02x", data[3])
	}

	payload := append([]byte(nil), data[4:len(data)-1]...)

	return Frame{Header: header, Type: typ, Function: function, Payload: payload}, nil
}
