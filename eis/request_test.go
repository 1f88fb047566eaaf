package eis

import (
	"testing"

	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/registry"
)

type fakeBackend struct {
	reg  *registry.Registry
	sent []struct {
		id  uint64
		evt proto.Event
	}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{reg: registry.New(false)}
}

func (f *fakeBackend) SendEvent(id uint64, evt proto.Event) {
	f.sent = append(f.sent, struct {
		id  uint64
		evt proto.Event
	}{id, evt})
}

func (f *fakeBackend) Registry() *registry.Registry { return f.reg }

func TestSyncRepliesWithCallbackDone(t *testing.T) {
	b := newFakeBackend()
	c := NewRequestConverter(b)
	callbackID := uint64(5)

	notes, err := c.HandleRequest(registry.Object{Interface: proto.InterfaceConnection},
		proto.ConnectionSync{Callback: callbackID})
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected one Sync notification, got %d", len(notes))
	}
	if len(b.sent) != 1 || b.sent[0].id != callbackID {
		t.Fatalf("expected callback.done sent to %d, got %+v", callbackID, b.sent)
	}
	if _, ok := b.sent[0].evt.(proto.CallbackEventDone); !ok {
		t.Fatalf("got %T, want proto.CallbackEventDone", b.sent[0].evt)
	}
}

func TestServerFrameBatching(t *testing.T) {
	b := newFakeBackend()
	c := NewRequestConverter(b)
	deviceID := uint64(10)
	pointerID := uint64(11)
	c.RegisterDevice(deviceID)
	c.RegisterSubObject(pointerID, deviceID)

	if _, err := c.HandleRequest(registry.Object{ID: pointerID, Interface: proto.InterfacePointer},
		proto.PointerMotionRelative{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.HandleRequest(registry.Object{ID: pointerID, Interface: proto.InterfacePointer},
		proto.PointerMotionRelative{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}

	notes, err := c.HandleRequest(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice},
		proto.DeviceFrame{LastSerial: 1, Timestamp: 42})
	if err != nil {
		t.Fatal(err)
	}
	frame, ok := notes[0].(Frame)
	if !ok {
		t.Fatalf("got %T, want Frame", notes[0])
	}
	if len(frame.Events) != 2 || frame.Timestamp != 42 {
		t.Fatalf("got %+v", frame)
	}
}

func TestServerTouchLimit(t *testing.T) {
	b := newFakeBackend()
	c := NewRequestConverter(b)
	deviceID := uint64(20)
	touchID := uint64(21)
	c.RegisterDevice(deviceID)
	c.RegisterSubObject(touchID, deviceID)

	for i := uint32(0); i < maxTouchesPerDevice; i++ {
		if _, err := c.HandleRequest(registry.Object{ID: touchID, Interface: proto.InterfaceTouchscreen},
			proto.TouchscreenDown{TouchID: i, X: 1, Y: 1}); err != nil {
			t.Fatalf("touch %d down: %v", i, err)
		}
	}
	if _, err := c.HandleRequest(registry.Object{ID: touchID, Interface: proto.InterfaceTouchscreen},
		proto.TouchscreenDown{TouchID: maxTouchesPerDevice, X: 1, Y: 1}); err == nil {
		t.Fatal("expected ErrTooManyTouches past the 16-touch limit")
	}
}

func TestDeviceStartStopEmulatingNotBatched(t *testing.T) {
	b := newFakeBackend()
	c := NewRequestConverter(b)
	deviceID := uint64(30)
	c.RegisterDevice(deviceID)

	notes, err := c.HandleRequest(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice},
		proto.DeviceStartEmulating{LastSerial: 1, Sequence: 7})
	if err != nil {
		t.Fatal(err)
	}
	se, ok := notes[0].(DeviceStartEmulating)
	if !ok || se.Sequence != 7 {
		t.Fatalf("got %+v", notes)
	}

	notes, err = c.HandleRequest(registry.Object{ID: deviceID, Interface: proto.InterfaceDevice},
		proto.DeviceStopEmulating{LastSerial: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("got %+v", notes)
	}
	if _, ok := notes[0].(DeviceStopEmulating); !ok {
		t.Fatalf("got %+v", notes)
	}
}

func TestNextSerialIncrements(t *testing.T) {
	b := newFakeBackend()
	c := NewRequestConverter(b)
	if c.NextSerial() != 1 || c.NextSerial() != 2 {
		t.Fatal("expected NextSerial to increment monotonically from 1")
	}
}
