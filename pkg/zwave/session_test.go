package zwave

import (
	"bytes"
	"context"
	"testing"

	"github.com/librescoot/zwave-driver/pkg/frame"
	"github.com/librescoot/zwave-driver/pkg/transport"
	"github.com/librescoot/zwave-driver/pkg/transport/faketty"
	"github.com/librescoot/zwave-driver/pkg/zwave/cc"
)

func TestWriteS1BasicSet(t *testing.T) {
	// S1: basic_set(node=3, 0xFF): host emits the Set frame, fake replies
	// ACK then an API Response accepting function SendData.
	script := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})...)
	tty := faketty.New(script)
	session := NewSession(transport.New(tty))

	id, err := session.Write(context.Background(), cc.BasicSet(3, 0xFF))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want 1", id)
	}

	wantPayload := append(cc.BasicSet(3, 0xFF), 0x04, 0x01)
	// The SendData frame, then the host's ACK for the parsed Response.
	want := append(frame.Encode(frame.Request, frame.FunctionSendData, wantPayload), byte(frame.ACK))
	if !bytes.Equal(tty.Written, want) {
		t.Fatalf("written = %x, want %x", tty.Written, want)
	}
}

func TestWriteS6CANDoesNotAdvanceCounter(t *testing.T) {
	// S6: write followed by CAN surfaces as an error and must not advance
	// the message-id counter.
	session := NewSession(transport.New(faketty.New([]byte{byte(frame.CAN)})))

	if _, err := session.Write(context.Background(), cc.BasicSet(3, 0xFF)); err == nil {
		t.Fatal("Write succeeded after CAN, want error")
	}
	if session.peekMsgID() != 1 {
		t.Fatalf("peekMsgID = %d after failed write, want 1 (unchanged)", session.peekMsgID())
	}

	accept := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})...)
	session2 := NewSession(transport.New(faketty.New(accept)))
	id, err := session2.Write(context.Background(), cc.BasicSet(3, 0xFF))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if id != 1 {
		t.Fatalf("id after a fresh session's first successful write = %d, want 1", id)
	}
}

func TestMsgIDAllocatorWrapsSkippingZero(t *testing.T) {
	s := &Session{}
	s.msgID = 254
	id := s.peekMsgID()
	s.commitMsgID(id)
	if id != 255 {
		t.Fatalf("id = %d, want 255", id)
	}
	id = s.peekMsgID()
	s.commitMsgID(id)
	if id != 1 {
		t.Fatalf("id after wrap = %d, want 1 (skipping 0)", id)
	}
}

func TestNodeIDsS5SingleBit(t *testing.T) {
	// S5: discover_nodes with a bitmap setting only id 5 returns [5].
	bitmap := make([]byte, 34)
	bitmap[2] = 0x1D
	bitmap[3] = 1 << 4 // ((3-3)*8)+(4+1) = 5
	script := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionDiscoveryNodes, bitmap)...)

	session := NewSession(transport.New(faketty.New(script)))
	ids, err := session.NodeIDs(context.Background())
	if err != nil {
		t.Fatalf("NodeIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != 5 {
		t.Fatalf("ids = %v, want [5]", ids)
	}
}

func TestNodeIDsBitmapDecodeProperty(t *testing.T) {
	// Property 4: ids {1,2,3} set in byte 3 bits 0..2 yields [1,2,3].
	bitmap := make([]byte, 34)
	bitmap[2] = 0x1D
	bitmap[3] = 0b00000111
	script := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionDiscoveryNodes, bitmap)...)

	session := NewSession(transport.New(faketty.New(script)))
	ids, err := session.NodeIDs(context.Background())
	if err != nil {
		t.Fatalf("NodeIDs: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids = %v, want [1 2 3]", ids)
	}
}

func TestNodeProtocolInfo(t *testing.T) {
	resp := []byte{0x00, 0x00, 0x00, 0x00, byte(cc.GenericTypeBinarySwitch), 0x00}
	script := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionGetNodeProtocolInfo, resp)...)

	session := NewSession(transport.New(faketty.New(script)))
	gt, err := session.NodeProtocolInfo(context.Background(), 3)
	if err != nil {
		t.Fatalf("NodeProtocolInfo: %v", err)
	}
	if gt != cc.GenericTypeBinarySwitch {
		t.Fatalf("generic type = %v, want GenericTypeBinarySwitch", gt)
	}
}
