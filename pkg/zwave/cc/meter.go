package cc

import "github.com/librescoot/zwave-driver/pkg/zerr"

const (
	meterCmdGet    = 0x01
	meterCmdReport = 0x02
)

// MeterType is the device-category byte in a Meter Report: Electric, Gas,
// or Water.
type MeterType byte

const (
	MeterTypeElectric MeterType = 0x01
	MeterTypeGas      MeterType = 0x02
	MeterTypeWater    MeterType = 0x03
)

// MeterScale is the 2-bit unit selector requested in a Meter Get v2 and
// echoed back in a Meter Report, independent of which MeterType the
// target node turns out to report.
type MeterScale byte

const (
	MeterScale0 MeterScale = 0x00
	MeterScale1 MeterScale = 0x01
	MeterScale2 MeterScale = 0x02
	MeterScale3 MeterScale = 0x03
)

// MeterKind tags a MeterData value with its physical unit.
type MeterKind int

const (
	ElectricKWh MeterKind = iota
	ElectricKVAh
	ElectricW
	ElectricPulseCount
	GasCubicMeters
	GasCubicFeet
	GasPulseCount
	WaterCubicMeters
	WaterCubicFeet
	WaterUSGallons
	WaterPulseCount
)

func (k MeterKind) String() string {
	switch k {
	case ElectricKWh:
		return "electric_kwh"
	case ElectricKVAh:
		return "electric_kvah"
	case ElectricW:
		return "electric_w"
	case ElectricPulseCount:
		return "electric_pulse_count"
	case GasCubicMeters:
		return "gas_cubic_meters"
	case GasCubicFeet:
		return "gas_cubic_feet"
	case GasPulseCount:
		return "gas_pulse_count"
	case WaterCubicMeters:
		return "water_cubic_meters"
	case WaterCubicFeet:
		return "water_cubic_feet"
	case WaterUSGallons:
		return "water_us_gallons"
	case WaterPulseCount:
		return "water_pulse_count"
	default:
		return "unknown"
	}
}

// MeterData is a decoded meter reading: a physical unit tag and its
// decimal value.
type MeterData struct {
	Kind  MeterKind
	Value float64
}

// MeterGet builds the payload for a v1 Meter Get command (no scale).
func MeterGet(nodeID byte) []byte {
	return EncodeCommand(nodeID, ClassMeter, meterCmdGet, nil)
}

// MeterGetV2 builds the payload for a v2 Meter Get command requesting a
// specific scale.
func MeterGetV2(nodeID byte, scale MeterScale) []byte {
	return EncodeCommand(nodeID, ClassMeter, meterCmdGet, []byte{byte(scale) << 3})
}

// unpackPrecisionScaleSize splits the bit-packed pppssSSS byte into
// precision (3 bits), scale (2 bits), size (3 bits).
func unpackPrecisionScaleSize(b byte) (precision, scale, size byte) {
	return b >> 5, (b >> 3) & 0x03, b & 0x07
}

// unpackRateMeterType splits the rrTTTTT byte used by report v2 into the
// 2-bit rate type and the 5-bit MeterType.
func unpackRateMeterType(b byte) (rate byte, typ MeterType, ok bool) {
	typ = MeterType(b & 0x1F)
	rate = (b >> 5) & 0x03
	_, ok = meterTypeToKind[typ]
	return rate, typ, ok
}

// decodeMeterValue reads size bytes (1, 2, or 4) as a big-endian two's
// complement signed integer and scales by 10^-precision.
func decodeMeterValue(b []byte, precision byte) float64 {
	scale := pow10(precision)
	switch len(b) {
	case 1:
		return float64(int8(b[0])) / scale
	case 2:
		v := int16(b[0])<<8 | int16(b[1])
		return float64(v) / scale
	case 4:
		v := int32(b[0])<<24 | int32(b[1])<<16 | int32(b[2])<<8 | int32(b[3])
		return float64(v) / scale
	default:
		return 0
	}
}

func pow10(n byte) float64 {
	result := 1.0
	for i := byte(0); i < n; i++ {
		result *= 10
	}
	return result
}

var meterTypeToKind = map[MeterType]map[byte]MeterKind{
	MeterTypeElectric: {0x00: ElectricKWh, 0x01: ElectricKVAh, 0x02: ElectricW, 0x03: ElectricPulseCount},
	MeterTypeGas:       {0x00: GasCubicMeters, 0x01: GasCubicFeet, 0x03: GasPulseCount},
	MeterTypeWater:     {0x00: WaterCubicMeters, 0x01: WaterCubicFeet, 0x02: WaterUSGallons, 0x03: WaterPulseCount},
}

func toMeterData(value float64, typ MeterType, scale byte) (MeterData, error) {
	const op = "cc.toMeterData"
	byScale, ok := meterTypeToKind[typ]
	if !ok {
		return MeterData{}, zerr.Newf(zerr.UnknownZWave, op, "unknown meter type 0x%02x", byte(typ))
	}
	kind, ok := byScale[scale]
	if !ok {
		return MeterData{}, zerr.Newf(zerr.UnknownZWave, op, "no meter reading for type=%v scale=%d", typ, scale)
	}
	return MeterData{Kind: kind, Value: value}, nil
}

// DecodeMeterReport parses a v1 Meter Report payload.
func DecodeMeterReport(payload []byte) (MeterData, error) {
	const op = "cc.DecodeMeterReport"
	if len(payload) < 8 {
		return MeterData{}, zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want >= 8", len(payload))
	}
	if payload[3] != byte(ClassMeter) || payload[4] != meterCmdReport {
		return MeterData{}, zerr.New(zerr.UnknownZWave, op, "report carries the wrong class/command")
	}
	typ := MeterType(payload[5])
	precision, scale, size := unpackPrecisionScaleSize(payload[6])
	if size != 1 && size != 2 && size != 4 {
		return MeterData{}, zerr.Newf(zerr.UnknownZWave, op, "unsupported meter value size %d", size)
	}
	if len(payload) != 7+int(size) {
		return MeterData{}, zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want %d", len(payload), 7+int(size))
	}
	value := decodeMeterValue(payload[7:7+int(size)], precision)
	return toMeterData(value, typ, scale)
}

// DecodeMeterReportV2 parses a v2 Meter Report payload, returning the
// previous reading, the delta time in seconds, and the current reading.
func DecodeMeterReportV2(payload []byte) (prev MeterData, deltaTime uint16, current MeterData, err error) {
	const op = "cc.DecodeMeterReportV2"
	if len(payload) < 8 {
		err = zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want >= 8", len(payload))
		return
	}
	if payload[3] != byte(ClassMeter) || payload[4] != meterCmdReport {
		err = zerr.New(zerr.UnknownZWave, op, "report carries the wrong class/command")
		return
	}
	_, typ, ok := unpackRateMeterType(payload[5])
	if !ok {
		err = zerr.Newf(zerr.UnknownZWave, op, "unknown meter type in byte 0x%02x", payload[5])
		return
	}
	precision, scale, size := unpackPrecisionScaleSize(payload[6])
	if size != 1 && size != 2 && size != 4 {
		err = zerr.Newf(zerr.UnknownZWave, op, "unsupported meter value size %d", size)
		return
	}
	sz := int(size)
	if len(payload) < 9+sz {
		err = zerr.Newf(zerr.UnknownZWave, op, "report has length %d, want >= %d", len(payload), 9+sz)
		return
	}
	value := decodeMeterValue(payload[7:7+sz], precision)
	deltaTime = uint16(payload[7+sz])<<8 | uint16(payload[8+sz])

	// The previous-value sample starts one byte after the delta-time
	// field ends, leaving a reserved byte at index 9+sz.
	prevValue := 0.0
	if deltaTime != 0 && len(payload) >= 10+2*sz {
		prevValue = decodeMeterValue(payload[10+sz:10+2*sz], precision)
	}

	if current, err = toMeterData(value, typ, scale); err != nil {
		return
	}
	prev, err = toMeterData(prevValue, typ, scale)
	return
}
