package cc

import "github.com/librescoot/zwave-driver/pkg/zerr"

const (
	powerLevelCmdSet             = 0x01
	powerLevelCmdGet             = 0x02
	powerLevelCmdReport          = 0x03
	powerLevelCmdTestNodeSet     = 0x04
	powerLevelCmdTestNodeGet     = 0x05
	powerLevelCmdTestNodeReport  = 0x06
)

// PowerLevelStatus is the enumerated transmit power level.
type PowerLevelStatus byte

const (
	PowerLevelNormal PowerLevelStatus = 0x00
	PowerLevelMinus1dBm PowerLevelStatus = 0x01
	PowerLevelMinus2dBm PowerLevelStatus = 0x02
	PowerLevelMinus3dBm PowerLevelStatus = 0x03
	PowerLevelMinus4dBm PowerLevelStatus = 0x04
	PowerLevelMinus5dBm PowerLevelStatus = 0x05
	PowerLevelMinus6dBm PowerLevelStatus = 0x06
	PowerLevelMinus7dBm PowerLevelStatus = 0x07
	PowerLevelMinus8dBm PowerLevelStatus = 0x08
	PowerLevelMinus9dBm PowerLevelStatus = 0x09
)

// PowerLevelStatusFromByte converts a wire byte to a PowerLevelStatus.
func PowerLevelStatusFromByte(b byte) (PowerLevelStatus, bool) {
	if b > byte(PowerLevelMinus9dBm) {
		return PowerLevelNormal, false
	}
	return PowerLevelStatus(b), true
}

// PowerLevelOperationStatus is the result of a Powerlevel test reported in
// a TestNodeReport.
type PowerLevelOperationStatus byte

const (
	TestFailed     PowerLevelOperationStatus = 0x00
	TestSuccess    PowerLevelOperationStatus = 0x01
	TestInProgress PowerLevelOperationStatus = 0x02
)

func PowerLevelOperationStatusFromByte(b byte) (PowerLevelOperationStatus, bool) {
	if b > byte(TestInProgress) {
		return TestFailed, false
	}
	return PowerLevelOperationStatus(b), true
}

// u16ToBytes splits a u16 into its big-endian [hi, lo] byte pair.
func u16ToBytes(v uint16) [2]byte {
	return [2]byte{byte(v >> 8), byte(v)}
}

// bytesToU16 combines a big-endian [hi, lo] byte pair into a u16.
func bytesToU16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// PowerLevelSet builds the payload for a Powerlevel Set command.
func PowerLevelSet(nodeID byte, level PowerLevelStatus, seconds byte) []byte {
	return EncodeCommand(nodeID, ClassPowerLevel, powerLevelCmdSet, []byte{byte(level), seconds})
}

// PowerLevelGet builds the payload for a Powerlevel Get command.
func PowerLevelGet(nodeID byte) []byte {
	return EncodeCommand(nodeID, ClassPowerLevel, powerLevelCmdGet, nil)
}

// DecodePowerLevelReport parses a Powerlevel Report payload.
func DecodePowerLevelReport(payload []byte) (PowerLevelStatus, byte, error) {
	const op = "cc.DecodePowerLevelReport"
	if len(payload) != 7 {
		return 0, 0, zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want 7", len(payload))
	}
	if payload[3] != byte(ClassPowerLevel) || payload[4] != powerLevelCmdReport {
		return 0, 0, zerr.New(zerr.UnknownZWave, op, "report carries the wrong class/command")
	}
	level, ok := PowerLevelStatusFromByte(payload[5])
	if !ok {
		return 0, 0, zerr.Newf(zerr.UnknownZWave, op, "unknown power level 0x%02x", payload[5])
	}
	return level, payload[6], nil
}

// PowerLevelTestNodeSet builds the payload for a Powerlevel Test Node Set
// command.
func PowerLevelTestNodeSet(nodeID, testNode byte, level PowerLevelStatus, frames uint16) []byte {
	b := u16ToBytes(frames)
	return EncodeCommand(nodeID, ClassPowerLevel, powerLevelCmdTestNodeSet, []byte{testNode, byte(level), b[0], b[1]})
}

// PowerLevelTestNodeGet builds the payload for a Powerlevel Test Node Get
// command.
func PowerLevelTestNodeGet(nodeID byte) []byte {
	return EncodeCommand(nodeID, ClassPowerLevel, powerLevelCmdTestNodeGet, nil)
}

// DecodePowerLevelTestNodeReport parses a Powerlevel Test Node Report
// payload, returning the tested node id, the operation status, and the
// acknowledged test-frame count.
func DecodePowerLevelTestNodeReport(payload []byte) (byte, PowerLevelOperationStatus, uint16, error) {
	const op = "cc.DecodePowerLevelTestNodeReport"
	if len(payload) != 9 {
		return 0, 0, 0, zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want 9", len(payload))
	}
	if payload[3] != byte(ClassPowerLevel) || payload[4] != powerLevelCmdTestNodeReport {
		return 0, 0, 0, zerr.New(zerr.UnknownZWave, op, "report carries the wrong class/command")
	}
	status, ok := PowerLevelOperationStatusFromByte(payload[6])
	if !ok {
		return 0, 0, 0, zerr.Newf(zerr.UnknownZWave, op, "unknown operation status 0x%02x", payload[6])
	}
	frames := bytesToU16(payload[7], payload[8])
	return payload[5], status, frames, nil
}
