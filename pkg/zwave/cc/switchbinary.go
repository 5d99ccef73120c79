package cc

import "github.com/librescoot/zwave-driver/pkg/zerr"

const (
	switchBinaryCmdSet    = 0x01
	switchBinaryCmdGet    = 0x02
	switchBinaryCmdReport = 0x03
)

// boolToByte maps true/false to 0xFF/0x00 per the SwitchBinary wire rule.
func boolToByte(on bool) byte {
	if on {
		return 0xFF
	}
	return 0x00
}

// SwitchBinarySet builds the payload for a Binary Switch Set command.
func SwitchBinarySet(nodeID byte, on bool) []byte {
	return EncodeCommand(nodeID, ClassSwitchBinary, switchBinaryCmdSet, []byte{boolToByte(on)})
}

// SwitchBinaryGet builds the payload for a Binary Switch Get command.
func SwitchBinaryGet(nodeID byte) []byte {
	return EncodeCommand(nodeID, ClassSwitchBinary, switchBinaryCmdGet, nil)
}

// DecodeSwitchBinaryReport parses an unsolicited Binary Switch Report
// payload. Any value below 0xFF decodes as false.
func DecodeSwitchBinaryReport(payload []byte) (bool, error) {
	const op = "cc.DecodeSwitchBinaryReport"
	if len(payload) != 6 {
		return false, zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want 6", len(payload))
	}
	if payload[3] != byte(ClassSwitchBinary) || payload[4] != switchBinaryCmdReport {
		return false, zerr.New(zerr.UnknownZWave, op, "report carries the wrong class/command")
	}
	return payload[5] == 0xFF, nil
}
