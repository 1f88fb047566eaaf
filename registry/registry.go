// Package registry implements the object/id registry of spec §4.3: a
// bidirectional namespace tracking live protocol objects, split between the
// locally-minted id range and the peer-minted id range (spec §3).
package registry

import (
	"sync"

	"github.com/daedaluz/eiproto"
)

// ServerIDBase is the first id a server-role endpoint mints (spec §3: the
// server-minted range is 2^63..2^64-1; this follows the original reis
// backend's literal starting value of 0xff00000000000000, still well within
// that range, rather than the range's low boundary).
const ServerIDBase uint64 = 0xff00000000000000

// ClientIDBase is the first id a client-role endpoint mints (spec §3:
// ids 1..2^63-1 are the client-minted range; id 0 is reserved for the
// handshake singleton).
const ClientIDBase uint64 = 1

// serverRangeStart is the lowest id considered to lie in the server-minted
// range, per spec §3.
const serverRangeStart uint64 = 1 << 63

// Object is the registry's record for one live protocol object: its
// interface name, negotiated version, and id. Object is cheap to copy
// (spec §4.3: "clone-cheap, shared ownership").
type Object struct {
	ID        uint64
	Interface string
	Version   uint32
}

// Registry holds one endpoint's object table: next_id (own), next_peer_id
// (peer), and the id→Object map (spec §4.3).
type Registry struct {
	mu         sync.Mutex
	client     bool
	nextID     uint64
	nextPeerID uint64
	objects    map[uint64]Object
}

// New returns a Registry for the client or server role. The handshake
// object (id 0) is pre-inserted, matching spec §3: "Object id 0 is
// permanently reserved for the singleton handshake object."
func New(client bool) *Registry {
	r := &Registry{
		client:  client,
		objects: map[uint64]Object{0: {ID: 0, Interface: "ei_handshake", Version: 1}},
	}
	if client {
		r.nextID = ClientIDBase
	} else {
		r.nextID = ServerIDBase
	}
	return r
}

// NewID mints and reserves the next locally-owned id, without inserting it
// into the object table — the caller inserts once the object's interface
// and version are known (spec §4.3: "Local minting returns next_id and
// post-increments").
func (r *Registry) NewID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

// Insert records a new object in the table, local or peer-minted alike.
func (r *Registry) Insert(id uint64, iface string, version uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects[id] = Object{ID: id, Interface: iface, Version: version}
}

// AcceptPeerID validates a peer-minted new-id argument against the rules of
// spec §3 — it must be greater than every peer id already accepted (a
// repeated id is rejected), and it must fall in the peer's range, not ours —
// then inserts it.
func (r *Registry) AcceptPeerID(id uint64, iface string, version uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < r.nextPeerID {
		return eiproto.NewInvalidIDError(id)
	}
	// A client's peer is the server (high range); a server's peer is the
	// client (low range, excluding the reserved handshake id 0).
	if r.client {
		if id < serverRangeStart {
			return eiproto.NewInvalidIDError(id)
		}
	} else {
		if id == 0 || id >= serverRangeStart {
			return eiproto.NewInvalidIDError(id)
		}
	}
	if id == ^uint64(0) {
		return eiproto.ErrPeerIDSpaceExhausted
	}
	r.nextPeerID = id + 1
	r.objects[id] = Object{ID: id, Interface: iface, Version: version}
	return nil
}

// Lookup returns the live object for id, if any.
func (r *Registry) Lookup(id uint64) (Object, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	obj, ok := r.objects[id]
	return obj, ok
}

// Remove deletes id from the table. It is idempotent: removing an id that
// is absent or already removed is not an error.
func (r *Registry) Remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.objects, id)
}

// Len reports the number of live objects, primarily for tests.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.objects)
}
