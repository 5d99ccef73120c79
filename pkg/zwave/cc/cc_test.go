package cc

import "testing"

func TestUnpackPrecisionScaleSize(t *testing.T) {
	cases := []struct {
		bits                  byte
		precision, scale, size byte
	}{
		{0b00000000, 0, 0, 0},
		{0b11100000, 7, 0, 0},
		{0b00111000, 1, 3, 0},
		{0b00101000, 1, 1, 0},
		{0b00101111, 1, 1, 7},
		{0b00101001, 1, 1, 1},
	}
	for _, c := range cases {
		p, s, sz := unpackPrecisionScaleSize(c.bits)
		if p != c.precision || s != c.scale || sz != c.size {
			t.Errorf("unpack(0b%08b) = (%d,%d,%d), want (%d,%d,%d)", c.bits, p, s, sz, c.precision, c.scale, c.size)
		}
	}
}

func TestDecodeMeterValue(t *testing.T) {
	cases := []struct {
		bytes     []byte
		precision byte
		want      float64
	}{
		{[]byte{0x00}, 0, 0},
		{[]byte{0x7F}, 2, 1.27},
		{[]byte{0x80}, 1, -12.8},
		{[]byte{0x00, 0x00}, 0, 0},
		{[]byte{0x7F, 0xFF}, 3, 32.767},
		{[]byte{0x80, 0x00}, 2, -327.68},
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0, 0},
		{[]byte{0x7F, 0xFF, 0xFF, 0xFF}, 3, 2147483.647},
		{[]byte{0x80, 0x00, 0x00, 0x00}, 2, -21474836.48},
	}
	for _, c := range cases {
		got := decodeMeterValue(c.bytes, c.precision)
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("decodeMeterValue(%x, %d) = %v, want %v", c.bytes, c.precision, got, c.want)
		}
	}
}

func TestU16ByteSplitRoundTrip(t *testing.T) {
	cases := []struct {
		v      uint16
		hi, lo byte
	}{
		{0, 0x00, 0x00},
		{1, 0x00, 0x01},
		{256, 0x01, 0x00},
		{257, 0x01, 0x01},
	}
	for _, c := range cases {
		got := u16ToBytes(c.v)
		if got[0] != c.hi || got[1] != c.lo {
			t.Errorf("u16ToBytes(%d) = %v, want [%x %x]", c.v, got, c.hi, c.lo)
		}
		if back := bytesToU16(got[0], got[1]); back != c.v {
			t.Errorf("bytesToU16 round trip for %d got %d", c.v, back)
		}
	}
}

func TestDecodeBasicReport(t *testing.T) {
	payload := []byte{0x00, 0x03, 0x03, byte(ClassBasic), 0x03, 0x42}
	got, err := DecodeBasicReport(payload)
	if err != nil {
		t.Fatalf("DecodeBasicReport: %v", err)
	}
	if got != 0x42 {
		t.Fatalf("got %d, want 0x42", got)
	}
}

func TestDecodeSwitchBinaryReport(t *testing.T) {
	payload := []byte{0, 0, 0, byte(ClassSwitchBinary), 0x03, 0xFF}
	on, err := DecodeSwitchBinaryReport(payload)
	if err != nil {
		t.Fatalf("DecodeSwitchBinaryReport: %v", err)
	}
	if !on {
		t.Fatal("expected true for value 0xFF")
	}

	payload[5] = 0x00
	on, err = DecodeSwitchBinaryReport(payload)
	if err != nil {
		t.Fatalf("DecodeSwitchBinaryReport: %v", err)
	}
	if on {
		t.Fatal("expected false for value 0x00")
	}
}

func TestMeterReportS3(t *testing.T) {
	// S3: type=Electric, precision=1, scale=0 (kWh), size=2, value=[0x00,0x7B] -> 12.3
	payload := []byte{
		0, 0, 0, byte(ClassMeter), meterCmdReport,
		byte(MeterTypeElectric),
		(1 << 5) | (0 << 3) | 2, // precision=1, scale=0, size=2
		0x00, 0x7B,
	}
	got, err := DecodeMeterReport(payload)
	if err != nil {
		t.Fatalf("DecodeMeterReport: %v", err)
	}
	if got.Kind != ElectricKWh {
		t.Fatalf("Kind = %v, want ElectricKWh", got.Kind)
	}
	if diff := got.Value - 12.3; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Value = %v, want 12.3", got.Value)
	}
}

func TestPowerLevelTestNodeReportS4(t *testing.T) {
	payload := []byte{
		0, 0, 0, byte(ClassPowerLevel), powerLevelCmdTestNodeReport,
		0x04, 0x01, 0x00, 0x0A,
	}
	node, status, frames, err := DecodePowerLevelTestNodeReport(payload)
	if err != nil {
		t.Fatalf("DecodePowerLevelTestNodeReport: %v", err)
	}
	if node != 0x04 || status != TestSuccess || frames != 10 {
		t.Fatalf("got (%d, %v, %d)", node, status, frames)
	}
}

func TestDecodeNodeInfoReportSkipsUnknown(t *testing.T) {
	payload := []byte{
		0, 0, // unused leading bytes
		byte(GenericTypeBinarySwitch), byte(GenericTypeUnknown), 0xFE, 0xFE,
		byte(ClassBasic), byte(ClassSwitchBinary), 0xFE,
	}
	types, classes := DecodeNodeInfoReport(payload)
	if len(types) != 1 || types[0] != GenericTypeBinarySwitch {
		t.Fatalf("types = %v", types)
	}
	if len(classes) != 2 || classes[0] != ClassBasic || classes[1] != ClassSwitchBinary {
		t.Fatalf("classes = %v", classes)
	}
}
