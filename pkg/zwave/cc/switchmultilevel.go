package cc

import "github.com/librescoot/zwave-driver/pkg/zerr"

const (
	switchMultilevelCmdSet    = 0x01
	switchMultilevelCmdGet    = 0x02
	switchMultilevelCmdReport = 0x03
)

// SwitchMultilevelSet builds the payload for a Multilevel Switch Set command.
func SwitchMultilevelSet(nodeID, value byte) []byte {
	return EncodeCommand(nodeID, ClassSwitchMultilevel, switchMultilevelCmdSet, []byte{value})
}

// SwitchMultilevelGet builds the payload for a Multilevel Switch Get command.
func SwitchMultilevelGet(nodeID byte) []byte {
	return EncodeCommand(nodeID, ClassSwitchMultilevel, switchMultilevelCmdGet, nil)
}

// DecodeSwitchMultilevelReport parses an unsolicited Multilevel Switch
// Report payload. Length is tolerated at >=6 so v4 trailing fields (not
// decoded here) don't reject an otherwise valid report.
func DecodeSwitchMultilevelReport(payload []byte) (byte, error) {
	const op = "cc.DecodeSwitchMultilevelReport"
	if len(payload) < 6 {
		return 0, zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want >= 6", len(payload))
	}
	if payload[3] != byte(ClassSwitchMultilevel) || payload[4] != switchMultilevelCmdReport {
		return 0, zerr.New(zerr.UnknownZWave, op, "report carries the wrong class/command")
	}
	return payload[5], nil
}
