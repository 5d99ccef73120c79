package cc

// EncodeCommand builds the Command envelope carried inside a SendData
// Request: node id, a length byte covering class+cmd+data, the class byte,
// the command byte, then the data. This is the payload the transaction
// engine appends its transmission-type and message-id bytes to.
func EncodeCommand(nodeID byte, class Class, cmd byte, data []byte) []byte {
	buf := make([]byte, 0, 4+len(data))
	buf = append(buf, nodeID, byte(len(data)+2), class.AsByte(), cmd)
	buf = append(buf, data...)
	return buf
}

// reportHeaderLen is the number of leading bytes in a queued unsolicited
// report payload that precede the class byte (matching the offsets
// payload[3]=class, payload[4]=cmd, payload[5:]=data used throughout the
// report decoders below).
const reportHeaderLen = 3
