// Package handshake implements the two mirrored handshake state machines of
// spec §4.5: ClientDriver (AwaitHandshakeVersion → AwaitInterfaceVersions
// AndConnection → Done) and ServerDriver (Start → AwaitFinish → Done),
// both driving the ei_handshake singleton object (id 0) over a
// backend.Backend.
package handshake

import (
	"github.com/daedaluz/eiproto"
	"github.com/daedaluz/eiproto/backend"
	"github.com/daedaluz/eiproto/proto"
)

// ClientState is the state of a client-role handshake driver.
type ClientState int

const (
	ClientAwaitHandshakeVersion ClientState = iota
	ClientAwaitInterfaceVersionsAndConnection
	ClientDone
)

// ClientDriver runs the client side of the handshake: wait for the
// server's HandshakeVersion event, answer with our identity and wanted
// interfaces, send finish, then collect the server's negotiated
// interface versions and its Connection event.
type ClientDriver struct {
	state       ClientState
	backend     *backend.Backend
	name        string
	contextType proto.ContextType
	wanted      map[string]uint32

	// Negotiated holds the interface→version pairs the server confirmed
	// via HandshakeEventInterfaceVersion, keyed by interface name.
	Negotiated map[string]uint32

	ConnectionID      uint64
	ConnectionSerial  uint32
	ConnectionVersion uint32
}

// NewClientDriver constructs a client handshake driver that will identify
// itself as name, with the given context type, wanting the given
// interface→version pairs.
func NewClientDriver(b *backend.Backend, name string, contextType proto.ContextType, wanted map[string]uint32) *ClientDriver {
	return &ClientDriver{
		backend:     b,
		name:        name,
		contextType: contextType,
		wanted:      wanted,
		Negotiated:  make(map[string]uint32),
	}
}

// Done reports whether the handshake has completed and ConnectionID etc.
// are valid.
func (d *ClientDriver) Done() bool { return d.state == ClientDone }

// HandleEvent advances the driver with one incoming ei_handshake event. It
// must only be called with events addressed to object id 0.
func (d *ClientDriver) HandleEvent(evt proto.Event) error {
	switch d.state {
	case ClientAwaitHandshakeVersion:
		hv, ok := evt.(proto.HandshakeEventVersion)
		if !ok {
			return eiproto.WrapHandshakeError("expected handshake_version event", eiproto.ErrNonHandshakeEvent)
		}
		d.backend.SendRequest(0, proto.HandshakeHandshakeVersion{Version: hv.Version})
		d.backend.SendRequest(0, proto.HandshakeName{Name: d.name})
		d.backend.SendRequest(0, proto.HandshakeSetContextType{ContextType: d.contextType})
		for iface, version := range d.wanted {
			d.backend.SendRequest(0, proto.HandshakeInterfaceVersion{Name: iface, Version: version})
		}
		d.backend.SendRequest(0, proto.HandshakeFinish{})
		d.state = ClientAwaitInterfaceVersionsAndConnection
		return nil

	case ClientAwaitInterfaceVersionsAndConnection:
		switch e := evt.(type) {
		case proto.HandshakeEventInterfaceVersion:
			d.Negotiated[e.Name] = e.Version
			return nil
		case proto.HandshakeEventConnection:
			d.backend.Registry().Insert(e.Connection, proto.InterfaceConnection, e.Version)
			d.ConnectionID = e.Connection
			d.ConnectionSerial = e.Serial
			d.ConnectionVersion = e.Version
			d.state = ClientDone
			return nil
		default:
			return eiproto.WrapHandshakeError("unexpected event before connection", eiproto.ErrNonHandshakeEvent)
		}

	default:
		return eiproto.WrapHandshakeError("handshake already finished", eiproto.ErrDuplicateEvent)
	}
}
