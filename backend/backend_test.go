package backend

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/daedaluz/eiproto"
	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/transport"
)

func newBackendPair(t *testing.T) (*Backend, *Backend) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	for _, fd := range fds {
		if err := unix.SetNonblock(fd, true); err != nil {
			t.Fatalf("set nonblocking: %v", err)
		}
	}
	client := New(transport.NewConn(fds[0]), RoleClient)
	server := New(transport.NewConn(fds[1]), RoleServer)
	return client, server
}

func drainFlush(t *testing.T, b *Backend) {
	t.Helper()
	for i := 0; i < 100; i++ {
		done, err := b.Flush()
		if err != nil {
			t.Fatalf("Flush: %v", err)
		}
		if done {
			return
		}
	}
	t.Fatal("Flush never drained")
}

func readOne(t *testing.T, b *Backend) *Message {
	t.Helper()
	for i := 0; i < 100; i++ {
		if !b.Pending() {
			if _, err := b.FillFromSocket(); err != nil {
				t.Fatalf("FillFromSocket: %v", err)
			}
			continue
		}
		msg, err := b.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if msg != nil {
			return msg
		}
	}
	t.Fatal("no message became available")
	return nil
}

func TestRequestRoundTrip(t *testing.T) {
	client, server := newBackendPair(t)
	defer client.Close()
	defer server.Close()

	client.Registry().Insert(5, "ei_seat", 1)
	server.Registry().Insert(5, "ei_seat", 1)

	client.SendRequest(5, proto.SeatBind{Capabilities: 0x3})
	drainFlush(t, client)

	msg := readOne(t, server)
	bind, ok := msg.Request.(proto.SeatBind)
	if !ok {
		t.Fatalf("got %T, want proto.SeatBind", msg.Request)
	}
	if bind.Capabilities != 0x3 {
		t.Fatalf("Capabilities = %d, want 3", bind.Capabilities)
	}
	if msg.Object.Interface != "ei_seat" || msg.Object.ID != 5 {
		t.Fatalf("unexpected target object: %+v", msg.Object)
	}
}

func TestEventRoundTrip(t *testing.T) {
	client, server := newBackendPair(t)
	defer client.Close()
	defer server.Close()

	client.Registry().Insert(9, "ei_device", 2)
	server.Registry().Insert(9, "ei_device", 2)

	server.SendEvent(9, proto.DeviceEventFrame{Serial: 11, Timestamp: 999})
	drainFlush(t, server)

	msg := readOne(t, client)
	frame, ok := msg.Event.(proto.DeviceEventFrame)
	if !ok {
		t.Fatalf("got %T, want proto.DeviceEventFrame", msg.Event)
	}
	if frame.Serial != 11 || frame.Timestamp != 999 {
		t.Fatalf("got %+v", frame)
	}
}

func TestReadUnknownObjectIsInvalidObjectError(t *testing.T) {
	client, server := newBackendPair(t)
	defer client.Close()
	defer server.Close()

	client.Registry().Insert(42, "ei_seat", 1)
	// Deliberately do not insert 42 into the server's registry.
	client.SendRequest(42, proto.SeatRelease{})
	drainFlush(t, client)

	for i := 0; i < 100; i++ {
		if !server.Pending() {
			if _, err := server.FillFromSocket(); err != nil {
				t.Fatalf("FillFromSocket: %v", err)
			}
			continue
		}
		_, err := server.Read()
		if err != nil {
			var ioe eiproto.InvalidObjectError
			if !errors.As(err, &ioe) || ioe.ID != 42 {
				t.Fatalf("got %v, want InvalidObjectError for id 42", err)
			}
			return
		}
	}
	t.Fatal("expected an InvalidObjectError reading a message for an unknown object")
}
