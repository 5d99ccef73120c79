package cc

const nodeInfoCmdGet = 0x02

// NodeInfoGet builds the payload for a NodeInfo Get command, the
// SendData-wrapped request a node's advertised generic types and command
// classes are read back from.
func NodeInfoGet(nodeID byte) []byte {
	return EncodeCommand(nodeID, ClassNodeInfo, nodeInfoCmdGet, nil)
}

// DecodeNodeInfoReport walks a NodeInfo report payload: indices 2..5 are
// candidate GenericType bytes (unrecognized or Unknown entries are
// skipped), indices 6.. are Command Class bytes (unrecognized entries are
// skipped). Short payloads simply yield fewer entries rather than an
// error, mirroring the original's tolerant parse.
func DecodeNodeInfoReport(payload []byte) (types []GenericType, classes []Class) {
	for i := 2; i <= 5 && i < len(payload); i++ {
		if payload[i] == byte(GenericTypeUnknown) {
			continue
		}
		if gt, ok := GenericTypeFromByte(payload[i]); ok {
			types = append(types, gt)
		}
	}
	for i := 6; i < len(payload); i++ {
		if class, ok := ClassFromByte(payload[i]); ok && class != ClassNoOperation {
			classes = append(classes, class)
		}
	}
	return types, classes
}
