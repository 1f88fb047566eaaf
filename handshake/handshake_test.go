package handshake

import (
	"testing"

	"golang.org/x/sys/unix"

	"github.com/daedaluz/eiproto/backend"
	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/transport"
)

func newBackendPair(t *testing.T) (*backend.Backend, *backend.Backend) {
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
	client := backend.New(transport.NewConn(fds[0]), backend.RoleClient)
	server := backend.New(transport.NewConn(fds[1]), backend.RoleServer)
	return client, server
}

func pump(t *testing.T, client, server *backend.Backend, onClientEvent func(proto.Event) error, onServerRequest func(proto.Request) error) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if _, err := client.Flush(); err != nil {
			t.Fatalf("client Flush: %v", err)
		}
		if _, err := server.Flush(); err != nil {
			t.Fatalf("server Flush: %v", err)
		}
		if !client.Pending() {
			client.FillFromSocket()
		}
		if !server.Pending() {
			server.FillFromSocket()
		}
		if client.Pending() {
			msg, err := client.Read()
			if err != nil {
				t.Fatalf("client Read: %v", err)
			}
			if msg != nil {
				if err := onClientEvent(msg.Event); err != nil {
					t.Fatalf("onClientEvent: %v", err)
				}
			}
		}
		if server.Pending() {
			msg, err := server.Read()
			if err != nil {
				t.Fatalf("server Read: %v", err)
			}
			if msg != nil {
				if err := onServerRequest(msg.Request); err != nil {
					t.Fatalf("onServerRequest: %v", err)
				}
			}
		}
	}
}

// TestFullHandshake matches spec §8 end-to-end scenario 1: the server
// announces its handshake version, the client answers with its identity
// and wanted interfaces plus finish, and the server replies with the
// negotiated interface versions and a freshly-minted connection object.
func TestFullHandshake(t *testing.T) {
	client, server := newBackendPair(t)
	defer client.Close()
	defer server.Close()

	cd := NewClientDriver(client, "test-client", proto.ContextTypeSender,
		map[string]uint32{"ei_connection": 1, "ei_pingpong": 1, "ei_callback": 1, "ei_seat": 1, "ei_pointer": 1})
	sd := NewServerDriver(server, 1, map[string]uint32{"ei_seat": 1, "ei_pointer": 1, "ei_keyboard": 1})
	sd.Start()

	pump(t, client, server, cd.HandleEvent, sd.HandleRequest)

	if !cd.Done() {
		t.Fatal("client driver never reached Done")
	}
	if !sd.Done() {
		t.Fatal("server driver never reached Done")
	}
	if cd.ConnectionID != sd.ConnectionID {
		t.Fatalf("client saw connection id %#x, server minted %#x", cd.ConnectionID, sd.ConnectionID)
	}
	if cd.ConnectionID < (1 << 63) {
		t.Fatalf("connection id %#x should be in the server-minted range", cd.ConnectionID)
	}
	if v, ok := cd.Negotiated["ei_seat"]; !ok || v != 1 {
		t.Fatalf("ei_seat negotiated version = %v, ok=%v", v, ok)
	}
	if _, ok := cd.Negotiated["ei_keyboard"]; ok {
		t.Fatal("ei_keyboard was never requested by the client, should not be negotiated")
	}
	if sd.ClientName != "test-client" {
		t.Fatalf("server saw client name %q", sd.ClientName)
	}
	if sd.ClientContextType != proto.ContextTypeSender {
		t.Fatalf("server saw context type %v", sd.ClientContextType)
	}
}
