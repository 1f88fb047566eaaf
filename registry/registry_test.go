package registry

import "testing"

func TestNewIDRangesByRole(t *testing.T) {
	client := New(true)
	if id := client.NewID(); id != ClientIDBase {
		t.Fatalf("client first id = %#x, want %#x", id, ClientIDBase)
	}
	if id := client.NewID(); id != ClientIDBase+1 {
		t.Fatalf("client second id = %#x, want %#x", id, ClientIDBase+1)
	}

	server := New(false)
	if id := server.NewID(); id != ServerIDBase {
		t.Fatalf("server first id = %#x, want %#x", id, ServerIDBase)
	}
}

func TestHandshakeObjectPreInserted(t *testing.T) {
	r := New(true)
	if _, ok := r.Lookup(0); !ok {
		t.Fatal("id 0 (handshake) should be present from New")
	}
}

func TestAcceptPeerIDRejectsWrongRange(t *testing.T) {
	client := New(true)
	// client's peer is the server: a low (client-range) id is rejected.
	if err := client.AcceptPeerID(5, "ei_connection", 1); err == nil {
		t.Fatal("expected rejection of client-range id from server peer")
	}

	server := New(false)
	// server's peer is the client: a high (server-range) id is rejected.
	if err := server.AcceptPeerID(ServerIDBase, "ei_seat", 1); err == nil {
		t.Fatal("expected rejection of server-range id from client peer")
	}
	// id 0 is reserved, also rejected from a peer.
	if err := server.AcceptPeerID(0, "ei_seat", 1); err == nil {
		t.Fatal("expected rejection of reserved id 0 from peer")
	}
}

func TestAcceptPeerIDMonotonic(t *testing.T) {
	client := New(true)
	if err := client.AcceptPeerID(ServerIDBase+5, "ei_connection", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.AcceptPeerID(ServerIDBase+5, "ei_connection", 1); err == nil {
		t.Fatal("expected rejection of a repeated (non-increasing) peer id")
	}
	if err := client.AcceptPeerID(ServerIDBase+3, "ei_connection", 1); err == nil {
		t.Fatal("expected rejection of a decreasing peer id")
	}
	if err := client.AcceptPeerID(ServerIDBase+6, "ei_seat", 1); err != nil {
		t.Fatalf("unexpected error accepting an increasing peer id: %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	r := New(true)
	id := r.NewID()
	r.Insert(id, "ei_callback", 1)
	if _, ok := r.Lookup(id); !ok {
		t.Fatal("expected inserted object to be present")
	}
	r.Remove(id)
	if _, ok := r.Lookup(id); ok {
		t.Fatal("expected object to be gone after Remove")
	}
	r.Remove(id) // must not panic or error
}
