// Package zwave implements the transaction engine and the Controller/Node
// façade on top of pkg/transport: message-id assignment, the DiscoveryNodes
// bitmap walk, GetNodeProtocolInfo, and the SendData write/read cycle
// every Command Class operation rides on.
package zwave

import (
	"context"
	"sync"

	"github.com/librescoot/zwave-driver/pkg/frame"
	"github.com/librescoot/zwave-driver/pkg/telemetry"
	"github.com/librescoot/zwave-driver/pkg/zerr"
	"github.com/librescoot/zwave-driver/pkg/zwave/cc"
)

// requester is the subset of *transport.Transport the Session depends on.
type requester interface {
	Request(ctx context.Context, function frame.Function, payload []byte) ([]byte, error)
	ReadFrame(ctx context.Context) ([]byte, bool, error)
	Drain(ctx context.Context) error
}

// Session is the transaction engine (spec component C): it owns the
// message-id counter and wraps the transport's generic Request primitive
// with the per-function acceptance and shape checks the dongle's API
// actually requires.
type Session struct {
	tr  requester
	log *telemetry.Logger

	mu    sync.Mutex
	msgID byte
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger attaches a telemetry.Logger; a nil logger still logs,
// without a prefix, at Info level and above.
func WithSessionLogger(l *telemetry.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// NewSession wraps tr with message-id assignment and per-function response
// validation.
func NewSession(tr requester, opts ...SessionOption) *Session {
	s := &Session{
		tr:  tr,
		log: telemetry.New("zwave", telemetry.LevelInfo),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// peekMsgID returns the id the next Write would use without consuming it:
// per S6, a write the dongle CANs instead of ACKing must not advance the
// counter, so allocation only commits on success (see commitMsgID).
func (s *Session) peekMsgID() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.msgID + 1
	if id == 0 {
		id = 1
	}
	return id
}

// commitMsgID stores id as the allocator's new high-water mark once the
// write it was used for has actually gone out (ACKed by the dongle).
func (s *Session) commitMsgID(id byte) {
	s.mu.Lock()
	s.msgID = id
	s.mu.Unlock()
}

const (
	opWrite           = "zwave.Session.Write"
	opRead            = "zwave.Session.Read"
	opNodeIDs         = "zwave.Session.NodeIDs"
	opNodeProtoInfo   = "zwave.Session.NodeProtocolInfo"
	bitmapLen         = 34
	bitmapMarkerIndex = 2
	bitmapMarkerValue = 0x1D
	bitmapStart       = 3
	bitmapEnd         = 31
)

// Write sends commandPayload (an already Command-Class-encoded payload,
// see pkg/zwave/cc.EncodeCommand) wrapped as a SendData frame: it appends
// the AutoRoute transmission-type byte and a freshly allocated message id,
// then requires the dongle's Response payload to be exactly [0x01]. On
// success it returns the allocated message id.
func (s *Session) Write(ctx context.Context, commandPayload []byte) (byte, error) {
	id := s.peekMsgID()
	payload := make([]byte, 0, len(commandPayload)+2)
	payload = append(payload, commandPayload...)
	payload = append(payload, cc.TransmissionAutoRoute.AsByte(), id)

	resp, err := s.tr.Request(ctx, frame.FunctionSendData, payload)
	if err != nil {
		// A CAN (or any other ACK/response-phase failure) means the id
		// was never consumed by the dongle, so the counter stays put.
		return 0, err
	}
	s.commitMsgID(id)
	if len(resp) != 1 || resp[0] != 0x01 {
		s.log.Errorf("SendData not accepted, response=%x", resp)
		return 0, zerr.New(zerr.IO, opWrite, "send data not accepted")
	}
	s.log.Infof("write accepted msg_id=%d", id)
	return id, nil
}

// Read returns the oldest queued unsolicited Request payload, if any.
func (s *Session) Read(ctx context.Context) ([]byte, bool, error) {
	payload, ok, err := s.tr.ReadFrame(ctx)
	if err != nil {
		return nil, false, zerr.Wrap(zerr.IO, opRead, err)
	}
	return payload, ok, nil
}

// NodeIDs issues DiscoveryNodes and decodes the returned bitmap into a
// sorted list of node ids.
func (s *Session) NodeIDs(ctx context.Context) ([]byte, error) {
	resp, err := s.tr.Request(ctx, frame.FunctionDiscoveryNodes, nil)
	if err != nil {
		return nil, err
	}
	if len(resp) != bitmapLen || resp[bitmapMarkerIndex] != bitmapMarkerValue {
		return nil, zerr.Newf(zerr.UnknownZWave, opNodeIDs, "malformed discovery response (len=%d marker=0x%02x)", len(resp), safeByte(resp, bitmapMarkerIndex))
	}

	var ids []byte
	for i := bitmapStart; i <= bitmapEnd; i++ {
		b := resp[i]
		for j := 0; j < 8; j++ {
			if b&(1<<uint(j)) != 0 {
				ids = append(ids, byte((i-bitmapStart)*8+(j+1)))
			}
		}
	}
	s.log.Infof("discovered %d nodes", len(ids))
	return ids, nil
}

// NodeProtocolInfo issues GetNodeProtocolInfo for nodeID and returns its
// generic type.
func (s *Session) NodeProtocolInfo(ctx context.Context, nodeID byte) (cc.GenericType, error) {
	resp, err := s.tr.Request(ctx, frame.FunctionGetNodeProtocolInfo, []byte{nodeID})
	if err != nil {
		return cc.GenericTypeUnknown, err
	}
	if len(resp) != 6 {
		return cc.GenericTypeUnknown, zerr.Newf(zerr.UnknownZWave, opNodeProtoInfo, "response has length %d, want 6", len(resp))
	}
	gt, ok := cc.GenericTypeFromByte(resp[4])
	if !ok {
		s.log.Warnf("node %d reports unrecognized generic type 0x%02x", nodeID, resp[4])
		return cc.GenericTypeUnknown, nil
	}
	return gt, nil
}

func safeByte(b []byte, i int) byte {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}
