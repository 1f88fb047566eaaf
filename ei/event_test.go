package ei

import (
	"errors"
	"testing"

	"github.com/daedaluz/eiproto"
	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/registry"
)

type fakeBackend struct {
	reg  *registry.Registry
	sent []struct {
		id  uint64
		req proto.Request
	}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{reg: registry.New(true)}
}

func (f *fakeBackend) SendRequest(id uint64, req proto.Request) {
	f.sent = append(f.sent, struct {
		id  uint64
		req proto.Request
	}{id, req})
}

func (f *fakeBackend) Registry() *registry.Registry { return f.reg }

func setupSeatAndDevice(t *testing.T, c *Converter, b *fakeBackend) (seatID, deviceID, pointerID uint64) {
	t.Helper()
	seatID = 0xff00000000000010
	b.reg.AcceptPeerID(seatID, proto.InterfaceSeat, 1)
	if _, err := c.HandleEvent(registry.Object{ID: seatID, Interface: proto.InterfaceConnection}, proto.ConnectionEventSeat{Seat: seatID, Version: 1}); err != nil {
		t.Fatalf("ConnectionEventSeat: %v", err)
	}
	if _, err := c.HandleEvent(registry.Object{ID: seatID, Interface: proto.InterfaceSeat}, proto.SeatEventName{Name: "seat0"}); err != nil {
		t.Fatal(err)
	}
	notes, err := c.HandleEvent(registry.Object{ID: seatID, Interface: proto.InterfaceSeat}, proto.SeatEventDone{})
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected one SeatAdded notification, got %d", len(notes))
	}
	if _, ok := notes[0].(SeatAdded); !ok {
		t.Fatalf("got %T, want SeatAdded", notes[0])
	}

	deviceID = 0xff00000000000020
	if _, err := c.HandleEvent(registry.Object{ID: seatID, Interface: proto.InterfaceSeat}, proto.SeatEventDevice{Device: deviceID, Version: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.HandleEvent(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice}, proto.DeviceEventDeviceType{DeviceType: proto.DeviceTypeVirtual}); err != nil {
		t.Fatal(err)
	}
	dnotes, err := c.HandleEvent(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice}, proto.DeviceEventDone{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := dnotes[0].(DeviceAdded); !ok {
		t.Fatalf("got %T, want DeviceAdded", dnotes[0])
	}

	pointerID = 0xff00000000000030
	if _, err := c.HandleEvent(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice},
		proto.DeviceEventInterface{Object: pointerID, InterfaceName: proto.InterfacePointer, Version: 1}); err != nil {
		t.Fatal(err)
	}
	return seatID, deviceID, pointerID
}

func TestSeatDeviceSetupAggregation(t *testing.T) {
	b := newFakeBackend()
	c := NewConverter(b)
	setupSeatAndDevice(t, c, b)
}

func TestFrameBatching(t *testing.T) {
	b := newFakeBackend()
	c := NewConverter(b)
	_, deviceID, pointerID := setupSeatAndDevice(t, c, b)

	if _, err := c.HandleEvent(registry.Object{ID: pointerID, Interface: proto.InterfacePointer},
		proto.PointerEventMotionRelative{X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.HandleEvent(registry.Object{ID: pointerID, Interface: proto.InterfacePointer},
		proto.PointerEventMotionRelative{X: 3, Y: 4}); err != nil {
		t.Fatal(err)
	}

	notes, err := c.HandleEvent(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice},
		proto.DeviceEventFrame{Serial: 5, Timestamp: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected one Frame notification, got %d", len(notes))
	}
	frame, ok := notes[0].(Frame)
	if !ok {
		t.Fatalf("got %T, want Frame", notes[0])
	}
	if len(frame.Events) != 2 {
		t.Fatalf("frame has %d events, want 2", len(frame.Events))
	}
	if frame.Timestamp != 1000 || frame.Serial != 5 {
		t.Fatalf("got %+v", frame)
	}
}

func TestTouchLimitAndDuplicate(t *testing.T) {
	b := newFakeBackend()
	c := NewConverter(b)
	_, _, _ = setupSeatAndDevice(t, c, b) // not used directly; need a touchscreen sub-object instead
	deviceID := uint64(0xff00000000000020)
	touchID := uint64(0xff00000000000040)
	if _, err := c.HandleEvent(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice},
		proto.DeviceEventInterface{Object: touchID, InterfaceName: proto.InterfaceTouchscreen, Version: 1}); err != nil {
		t.Fatal(err)
	}

	for i := uint32(0); i < maxTouchesPerDevice; i++ {
		if _, err := c.HandleEvent(registry.Object{ID: touchID, Interface: proto.InterfaceTouchscreen},
			proto.TouchscreenEventDown{TouchID: i, X: 1, Y: 1}); err != nil {
			t.Fatalf("touch %d down: %v", i, err)
		}
	}
	if _, err := c.HandleEvent(registry.Object{ID: touchID, Interface: proto.InterfaceTouchscreen},
		proto.TouchscreenEventDown{TouchID: maxTouchesPerDevice, X: 1, Y: 1}); err == nil {
		t.Fatal("expected ErrTooManyTouches past the 16-touch limit")
	}

	if _, err := c.HandleEvent(registry.Object{ID: touchID, Interface: proto.InterfaceTouchscreen},
		proto.TouchscreenEventDown{TouchID: 0, X: 1, Y: 1}); !errors.Is(err, eiproto.ErrDuplicatedTouchDown) {
		t.Fatalf("expected ErrDuplicatedTouchDown for a touch id already down, got %v", err)
	}

	if _, err := c.HandleEvent(registry.Object{ID: touchID, Interface: proto.InterfaceTouchscreen},
		proto.TouchscreenEventUp{TouchID: 0}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.HandleEvent(registry.Object{ID: touchID, Interface: proto.InterfaceTouchscreen},
		proto.TouchscreenEventDown{TouchID: 0, X: 1, Y: 1}); err != nil {
		t.Fatal("touch id should be reusable once released:", err)
	}
}

func TestPingAutoAck(t *testing.T) {
	b := newFakeBackend()
	c := NewConverter(b)
	pingID := uint64(0xff00000000000099)

	if _, err := c.HandleEvent(registry.Object{Interface: proto.InterfaceConnection},
		proto.ConnectionEventPing{Ping: pingID, Version: 1}); err != nil {
		t.Fatal(err)
	}
	if len(b.sent) != 1 {
		t.Fatalf("expected one auto-ack request, got %d", len(b.sent))
	}
	if b.sent[0].id != pingID {
		t.Fatalf("auto-ack addressed to %#x, want %#x", b.sent[0].id, pingID)
	}
	if _, ok := b.sent[0].req.(proto.PingpongDone); !ok {
		t.Fatalf("got %T, want proto.PingpongDone", b.sent[0].req)
	}
	if _, ok := b.reg.Lookup(pingID); !ok {
		t.Fatal("ping object should be registered in the registry")
	}
}
