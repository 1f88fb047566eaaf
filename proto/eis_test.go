package proto

import (
	"testing"

	"github.com/daedaluz/eiproto/wire"
)

func TestDecodeRequestDispatch(t *testing.T) {
	w := wire.NewWriter()
	SeatBind{Capabilities: 0x7}.Encode(w)
	req, err := DecodeRequest(InterfaceSeat, OpSeatReqBind, wire.NewReader(w.Bytes(), nil))
	if err != nil {
		t.Fatal(err)
	}
	bind, ok := req.(SeatBind)
	if !ok {
		t.Fatalf("got %T, want SeatBind", req)
	}
	if bind.Capabilities != 0x7 {
		t.Fatalf("Capabilities = %d, want 7", bind.Capabilities)
	}
	if req.RequestInterface() != InterfaceSeat || req.RequestOpcode() != OpSeatReqBind {
		t.Fatalf("RequestInterface/RequestOpcode mismatch: %+v", req)
	}
}

func TestDecodeEventDispatch(t *testing.T) {
	w := wire.NewWriter()
	DeviceEventFrame{Serial: 7, Timestamp: 123456}.Encode(w)
	evt, err := DecodeEvent(InterfaceDevice, OpDeviceEvtFrame, wire.NewReader(w.Bytes(), nil))
	if err != nil {
		t.Fatal(err)
	}
	frame, ok := evt.(DeviceEventFrame)
	if !ok {
		t.Fatalf("got %T, want DeviceEventFrame", evt)
	}
	if frame.Serial != 7 || frame.Timestamp != 123456 {
		t.Fatalf("got %+v", frame)
	}
}

func TestDecodeRequestUnknownOpcode(t *testing.T) {
	_, err := DecodeRequest(InterfaceSeat, 99, wire.NewReader(nil, nil))
	if err == nil {
		t.Fatal("expected InvalidOpcodeError for unknown opcode")
	}
}

func TestDecodeRequestUnknownInterface(t *testing.T) {
	_, err := DecodeRequest("ei_nonexistent", 0, wire.NewReader(nil, nil))
	if err == nil {
		t.Fatal("expected InvalidOpcodeError for unknown interface")
	}
}

func TestInterfacesListHasTwelveEntries(t *testing.T) {
	if len(Interfaces) != 12 {
		t.Fatalf("len(Interfaces) = %d, want 12", len(Interfaces))
	}
}
