package transport

import (
	"bytes"
	"context"
	"testing"

	"github.com/librescoot/zwave-driver/pkg/frame"
	"github.com/librescoot/zwave-driver/pkg/transport/faketty"
)

func TestRequestAcceptedS1(t *testing.T) {
	// S1: basic_set(node=3, 0xFF): host emits the Set frame, fake replies
	// ACK then an API Response accepting function SendData.
	script := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})...)
	tty := faketty.New(script)
	tr := New(tty)

	payload := []byte{0x03, 0x03, 0x20, 0x01, 0xFF, 0x04, 0x01}
	resp, err := tr.Request(context.Background(), frame.FunctionSendData, payload)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if !bytes.Equal(resp, []byte{0x01}) {
		t.Fatalf("response = %x, want [0x01]", resp)
	}

	// The request frame, then the host's ACK for the parsed Response.
	want := append(frame.Encode(frame.Request, frame.FunctionSendData, payload), byte(frame.ACK))
	if !bytes.Equal(tty.Written, want) {
		t.Fatalf("written = %x, want %x", tty.Written, want)
	}
}

func TestRequestUnsolicitedThenAccepted(t *testing.T) {
	// S2: an unsolicited Request frame arrives between the ACK and the
	// API Response and must be queued rather than mistaken for the response.
	unsolicited := frame.Encode(frame.Request, frame.FunctionApplicationCommandHandler, []byte{0x03, 0x25, 0x03, 0xFF})
	accepted := frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})
	script := append([]byte{byte(frame.ACK)}, append(unsolicited, accepted...)...)

	tr := New(faketty.New(script))
	resp, err := tr.Request(context.Background(), frame.FunctionSendData, []byte{0x03, 0x02, 0x25, 0x02, 0x02})
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if !bytes.Equal(resp, []byte{0x01}) {
		t.Fatalf("response = %x, want [0x01]", resp)
	}

	payload, ok, err := tr.ReadFrame(context.Background())
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !ok {
		t.Fatal("ReadFrame: no queued unsolicited frame")
	}
	if !bytes.Equal(payload, []byte{0x03, 0x25, 0x03, 0xFF}) {
		t.Fatalf("payload = %x", payload)
	}
}

func TestRequestDiscoveryNodesNoAcceptanceByte(t *testing.T) {
	// DiscoveryNodes replies with a 34-byte structured bitmap, not a bare
	// [0x01] acceptance byte; Request must hand that payload back untouched
	// for the caller to validate.
	bitmap := make([]byte, 34)
	bitmap[2] = 0x1D
	script := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionDiscoveryNodes, bitmap)...)

	tr := New(faketty.New(script))
	resp, err := tr.Request(context.Background(), frame.FunctionDiscoveryNodes, nil)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if !bytes.Equal(resp, bitmap) {
		t.Fatalf("response = %x, want %x", resp, bitmap)
	}
}

func TestRequestCANIsIOError(t *testing.T) {
	// S6: a CAN header instead of ACK surfaces as an IO error.
	tr := New(faketty.New([]byte{byte(frame.CAN)}))
	_, err := tr.Request(context.Background(), frame.FunctionSendData, []byte{0x03})
	if err == nil {
		t.Fatal("Request succeeded after CAN, want error")
	}
}

func TestDrainEndsOnTimeoutWithoutError(t *testing.T) {
	tr := New(faketty.New(), WithRetries(0))
	if err := tr.Drain(context.Background()); err != nil {
		t.Fatalf("Drain on empty stream: %v", err)
	}
}
