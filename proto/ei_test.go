package proto

import (
	"testing"

	"github.com/daedaluz/eiproto/wire"
)

func TestHandshakeRequestRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	msg := HandshakeInterfaceVersion{Name: "ei_seat", Version: 2}
	msg.Encode(w)
	got, err := DecodeHandshakeInterfaceVersion(wire.NewReader(w.Bytes(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if got != msg {
		t.Fatalf("got %+v, want %+v", got, msg)
	}
}

func TestHandshakeEventConnectionRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	msg := HandshakeEventConnection{Serial: 42, Connection: 0xff00000000000001, Version: 1}
	msg.Encode(w)
	got, err := DecodeHandshakeEventConnection(wire.NewReader(w.Bytes(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if got != msg {
		t.Fatalf("got %+v, want %+v", got, msg)
	}
}

func TestDeviceRegionRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	msg := DeviceEventRegion{OffsetX: 1, OffsetY: 2, Width: 1920, Height: 1080, Scale: 1.5}
	msg.Encode(w)
	got, err := DecodeDeviceEventRegion(wire.NewReader(w.Bytes(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if got != msg {
		t.Fatalf("got %+v, want %+v", got, msg)
	}
}

func TestTouchscreenDownRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	msg := TouchscreenDown{TouchID: 3, X: 10.5, Y: -4.25}
	msg.Encode(w)
	got, err := DecodeTouchscreenDown(wire.NewReader(w.Bytes(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if got != msg {
		t.Fatalf("got %+v, want %+v", got, msg)
	}
}

func TestButtonStateRejectsUnknownVariant(t *testing.T) {
	w := wire.NewWriter()
	w.PutUint32(99)
	w.PutUint32(7)
	_, err := DecodeButtonButton(wire.NewReader(w.Bytes(), nil))
	if err == nil {
		t.Fatal("expected rejection of unknown button state discriminant")
	}
}

func TestScrollStopRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	msg := ScrollScrollStop{X: 1, Y: 2, IsCancel: 1}
	msg.Encode(w)
	got, err := DecodeScrollScrollStop(wire.NewReader(w.Bytes(), nil))
	if err != nil {
		t.Fatal(err)
	}
	if got != msg {
		t.Fatalf("got %+v, want %+v", got, msg)
	}
}

func TestKeyboardKeymapRoundTripsFd(t *testing.T) {
	w := wire.NewWriter()
	// Keymap encode dups the fd via PutFd; here we bypass duping by writing
	// the header fields directly and checking only the numeric fields since
	// PutFd requires a real open descriptor (passing a real fd over a socket
	// is exercised in the transport test suite instead).
	w.PutUint32(uint32(KeymapTypeXkb))
	w.PutUint32(4096)
	fds := []int{99}
	got, err := DecodeKeyboardEventKeymap(wire.NewReader(w.Bytes(), &fds))
	if err != nil {
		t.Fatal(err)
	}
	if got.KeymapType != KeymapTypeXkb || got.Size != 4096 || got.Keymap != 99 {
		t.Fatalf("got %+v", got)
	}
}
