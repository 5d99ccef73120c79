package cc

import "github.com/librescoot/zwave-driver/pkg/zerr"

const (
	basicCmdSet    = 0x01
	basicCmdGet    = 0x02
	basicCmdReport = 0x03
)

// BasicSet builds the payload for a Basic Set command.
func BasicSet(nodeID, value byte) []byte {
	return EncodeCommand(nodeID, ClassBasic, basicCmdSet, []byte{value})
}

// BasicGet builds the payload for a Basic Get command.
func BasicGet(nodeID byte) []byte {
	return EncodeCommand(nodeID, ClassBasic, basicCmdGet, nil)
}

// DecodeBasicReport parses an unsolicited Basic Report payload.
func DecodeBasicReport(payload []byte) (byte, error) {
	const op = "cc.DecodeBasicReport"
	if len(payload) != 6 {
		return 0, zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want 6", len(payload))
	}
	if payload[3] != byte(ClassBasic) || payload[4] != basicCmdReport {
		return 0, zerr.New(zerr.UnknownZWave, op, "report carries the wrong class/command")
	}
	return payload[5], nil
}
