package zwave

import (
	"context"
	"testing"

	"github.com/librescoot/zwave-driver/pkg/frame"
	"github.com/librescoot/zwave-driver/pkg/transport/faketty"
	"github.com/librescoot/zwave-driver/pkg/zwave/cc"
)

// discoveryScript returns one faketty reply turn per Write call Open's
// construction sequence makes: one turn for the DiscoveryNodes round trip,
// then one turn per discovered node for its NodeInfo round trip, followed
// by any extra turns the test itself wants to drive for its own operation.
func discoveryScript(nodeIDs []byte, extraTurns ...[]byte) [][]byte {
	bitmap := make([]byte, 34)
	bitmap[2] = 0x1D
	for _, id := range nodeIDs {
		i := int(id-1)/8 + 3
		j := int(id-1) % 8
		bitmap[i] |= 1 << uint(j)
	}
	turns := [][]byte{
		append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionDiscoveryNodes, bitmap)...),
	}
	for range nodeIDs {
		// No unsolicited NodeInfo report follows in these tests; refreshInfo
		// tolerates the resulting empty class/type list.
		turns = append(turns, append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})...))
	}
	turns = append(turns, extraTurns...)
	return turns
}

func TestOpenDiscoversNodes(t *testing.T) {
	script := discoveryScript([]byte{3})
	c, err := Open(context.Background(), faketty.New(script...), WithRetries(0))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	nodes := c.Nodes()
	if len(nodes) != 1 || nodes[0] != 3 {
		t.Fatalf("Nodes() = %v, want [3]", nodes)
	}
	if _, ok := c.Node(3); !ok {
		t.Fatal("Node(3) not found")
	}
	if _, ok := c.Node(9); ok {
		t.Fatal("Node(9) unexpectedly found")
	}
}

func TestSwitchBinaryGetS2(t *testing.T) {
	// S2: switch_binary_get(node=3): host emits the Get frame; fake replies
	// ACK, API Response acceptance, then an unsolicited Request carrying
	// the report; call returns true.
	accept := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})...)
	report := frame.Encode(frame.Request, frame.FunctionApplicationCommandHandler, []byte{0x00, 0x00, 0x00, byte(cc.ClassSwitchBinary), 0x03, 0xFF})

	script := discoveryScript([]byte{3}, append(accept, report...))
	c, err := Open(context.Background(), faketty.New(script...), WithRetries(0))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	node, _ := c.Node(3)

	on, err := node.SwitchBinaryGet(context.Background())
	if err != nil {
		t.Fatalf("SwitchBinaryGet: %v", err)
	}
	if !on {
		t.Fatal("SwitchBinaryGet = false, want true")
	}
}

func TestMeterGetS3(t *testing.T) {
	// S3: meter_get with type=Electric, precision=1, scale=0, size=2,
	// value=[0x00,0x7B] returns Electric_kWh(12.3).
	accept := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})...)
	reportPayload := []byte{
		0x00, 0x00, 0x00, byte(cc.ClassMeter), 0x02,
		byte(cc.MeterTypeElectric),
		(1 << 5) | (0 << 3) | 2,
		0x00, 0x7B,
	}
	report := frame.Encode(frame.Request, frame.FunctionApplicationCommandHandler, reportPayload)

	script := discoveryScript([]byte{3}, append(accept, report...))
	c, err := Open(context.Background(), faketty.New(script...), WithRetries(0))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	node, _ := c.Node(3)

	data, err := node.MeterGet(context.Background())
	if err != nil {
		t.Fatalf("MeterGet: %v", err)
	}
	if data.Kind != cc.ElectricKWh {
		t.Fatalf("Kind = %v, want ElectricKWh", data.Kind)
	}
	if diff := data.Value - 12.3; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("Value = %v, want 12.3", data.Value)
	}
}

func TestPowerLevelTestNodeGetS4(t *testing.T) {
	// S4: powerlevel_test_node_get returning the report payload yields
	// (0x04, TestSuccess, 10).
	accept := append([]byte{byte(frame.ACK)}, frame.Encode(frame.Response, frame.FunctionSendData, []byte{0x01})...)
	reportPayload := []byte{
		0x00, 0x00, 0x00, byte(cc.ClassPowerLevel), 0x06,
		0x04, 0x01, 0x00, 0x0A,
	}
	report := frame.Encode(frame.Request, frame.FunctionApplicationCommandHandler, reportPayload)

	script := discoveryScript([]byte{3}, append(accept, report...))
	c, err := Open(context.Background(), faketty.New(script...), WithRetries(0))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	node, _ := c.Node(3)

	target, status, frames, err := node.PowerLevelTestNodeGet(context.Background())
	if err != nil {
		t.Fatalf("PowerLevelTestNodeGet: %v", err)
	}
	if target != 0x04 || status != cc.TestSuccess || frames != 10 {
		t.Fatalf("got (%d, %v, %d), want (4, TestSuccess, 10)", target, status, frames)
	}
}
