package zwave

import (
	"context"

	"github.com/librescoot/zwave-driver/pkg/zerr"
	"github.com/librescoot/zwave-driver/pkg/zwave/cc"
)

// readReport returns the oldest queued unsolicited Report payload, failing
// with an IO error when none arrived. Each per-node getter that expects a
// report shares this shape: write -> readReport -> decode.
func (n *Node) readReport(ctx context.Context, op string) ([]byte, error) {
	payload, ok, err := n.session.Read(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, zerr.New(zerr.IO, op, "no report received")
	}
	return payload, nil
}

const (
	opBasicSet             = "zwave.Node.BasicSet"
	opBasicGet              = "zwave.Node.BasicGet"
	opSwitchBinarySet       = "zwave.Node.SwitchBinarySet"
	opSwitchBinaryGet       = "zwave.Node.SwitchBinaryGet"
	opSwitchMultilevelSet   = "zwave.Node.SwitchMultilevelSet"
	opSwitchMultilevelGet   = "zwave.Node.SwitchMultilevelGet"
	opPowerLevelSet         = "zwave.Node.PowerLevelSet"
	opPowerLevelGet         = "zwave.Node.PowerLevelGet"
	opPowerLevelTestNodeSet = "zwave.Node.PowerLevelTestNodeSet"
	opPowerLevelTestNodeGet = "zwave.Node.PowerLevelTestNodeGet"
	opMeterGet              = "zwave.Node.MeterGet"
	opMeterGetV2             = "zwave.Node.MeterGetV2"
)

// BasicSet issues a Basic Set for value and returns the allocated message id.
func (n *Node) BasicSet(ctx context.Context, value byte) (byte, error) {
	return n.session.Write(ctx, cc.BasicSet(n.id, value))
}

// BasicGet issues a Basic Get and waits for the Report.
func (n *Node) BasicGet(ctx context.Context) (byte, error) {
	if _, err := n.session.Write(ctx, cc.BasicGet(n.id)); err != nil {
		return 0, err
	}
	payload, err := n.readReport(ctx, opBasicGet)
	if err != nil {
		return 0, err
	}
	return cc.DecodeBasicReport(payload)
}

// SwitchBinarySet issues a SwitchBinary Set for on and returns the
// allocated message id.
func (n *Node) SwitchBinarySet(ctx context.Context, on bool) (byte, error) {
	return n.session.Write(ctx, cc.SwitchBinarySet(n.id, on))
}

// SwitchBinaryGet issues a SwitchBinary Get and waits for the Report.
func (n *Node) SwitchBinaryGet(ctx context.Context) (bool, error) {
	if _, err := n.session.Write(ctx, cc.SwitchBinaryGet(n.id)); err != nil {
		return false, err
	}
	payload, err := n.readReport(ctx, opSwitchBinaryGet)
	if err != nil {
		return false, err
	}
	return cc.DecodeSwitchBinaryReport(payload)
}

// SwitchMultilevelSet issues a SwitchMultilevel Set for value and returns
// the allocated message id.
func (n *Node) SwitchMultilevelSet(ctx context.Context, value byte) (byte, error) {
	return n.session.Write(ctx, cc.SwitchMultilevelSet(n.id, value))
}

// SwitchMultilevelGet issues a SwitchMultilevel Get and waits for the Report.
func (n *Node) SwitchMultilevelGet(ctx context.Context) (byte, error) {
	if _, err := n.session.Write(ctx, cc.SwitchMultilevelGet(n.id)); err != nil {
		return 0, err
	}
	payload, err := n.readReport(ctx, opSwitchMultilevelGet)
	if err != nil {
		return 0, err
	}
	return cc.DecodeSwitchMultilevelReport(payload)
}

// PowerLevelSet issues a PowerLevel Set for level/seconds and returns the
// allocated message id.
func (n *Node) PowerLevelSet(ctx context.Context, level cc.PowerLevelStatus, seconds byte) (byte, error) {
	return n.session.Write(ctx, cc.PowerLevelSet(n.id, level, seconds))
}

// PowerLevelGet issues a PowerLevel Get and waits for the Report.
func (n *Node) PowerLevelGet(ctx context.Context) (cc.PowerLevelStatus, byte, error) {
	if _, err := n.session.Write(ctx, cc.PowerLevelGet(n.id)); err != nil {
		return 0, 0, err
	}
	payload, err := n.readReport(ctx, opPowerLevelGet)
	if err != nil {
		return 0, 0, err
	}
	return cc.DecodePowerLevelReport(payload)
}

// PowerLevelTestNodeSet issues a PowerLevel Test Node Set and returns the
// allocated message id.
func (n *Node) PowerLevelTestNodeSet(ctx context.Context, target byte, level cc.PowerLevelStatus, frames uint16) (byte, error) {
	return n.session.Write(ctx, cc.PowerLevelTestNodeSet(n.id, target, level, frames))
}

// PowerLevelTestNodeGet issues a PowerLevel Test Node Get and waits for the
// Report.
func (n *Node) PowerLevelTestNodeGet(ctx context.Context) (byte, cc.PowerLevelOperationStatus, uint16, error) {
	if _, err := n.session.Write(ctx, cc.PowerLevelTestNodeGet(n.id)); err != nil {
		return 0, 0, 0, err
	}
	payload, err := n.readReport(ctx, opPowerLevelTestNodeGet)
	if err != nil {
		return 0, 0, 0, err
	}
	return cc.DecodePowerLevelTestNodeReport(payload)
}

// MeterGet issues a v1 Meter Get and waits for the Report.
func (n *Node) MeterGet(ctx context.Context) (cc.MeterData, error) {
	if _, err := n.session.Write(ctx, cc.MeterGet(n.id)); err != nil {
		return cc.MeterData{}, err
	}
	payload, err := n.readReport(ctx, opMeterGet)
	if err != nil {
		return cc.MeterData{}, err
	}
	return cc.DecodeMeterReport(payload)
}

// MeterGetV2 issues a v2 Meter Get for scale and waits for the Report,
// returning the previous reading, the delta time in seconds, and the
// current reading.
func (n *Node) MeterGetV2(ctx context.Context, scale cc.MeterScale) (prev cc.MeterData, deltaTime uint16, current cc.MeterData, err error) {
	if _, err = n.session.Write(ctx, cc.MeterGetV2(n.id, scale)); err != nil {
		return
	}
	payload, rerr := n.readReport(ctx, opMeterGetV2)
	if rerr != nil {
		err = rerr
		return
	}
	return cc.DecodeMeterReportV2(payload)
}
