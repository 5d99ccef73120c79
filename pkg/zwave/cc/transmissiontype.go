package cc

// TransmissionType is a per-frame routing flag appended to a SendData
// Command payload. The full wire table is kept even though Session.Write
// only ever tags AutoRoute, per the "one-way AutoRoute tagging" behavior
// of the original driver (see the open question on alternate transmission
// modes).
type TransmissionType byte

const (
	TransmissionACK       TransmissionType = 0x01
	TransmissionLowPower  TransmissionType = 0x02
	TransmissionAutoRoute TransmissionType = 0x04
	TransmissionExplore   TransmissionType = 0x20
	TransmissionDirect    TransmissionType = 0x25
)

func (t TransmissionType) AsByte() byte { return byte(t) }
