package handshake

import (
	"github.com/daedaluz/eiproto"
	"github.com/daedaluz/eiproto/backend"
	"github.com/daedaluz/eiproto/proto"
)

// ServerState is the state of a server-role handshake driver.
type ServerState int

const (
	ServerStart ServerState = iota
	ServerAwaitFinish
	ServerDone
)

// ServerDriver runs the server side of the handshake: announce our
// handshake version, collect the client's identity, context type, and
// wanted interfaces, and on finish negotiate interface versions and mint
// the ei_connection object.
type ServerDriver struct {
	state   ServerState
	backend *backend.Backend
	version uint32
	offered map[string]uint32 // interface -> our max supported version

	ClientName        string
	ClientContextType proto.ContextType
	Requested         map[string]uint32
	nameSet           bool
	contextTypeSet    bool

	ConnectionID uint64
	serial       uint32
}

// requiredInterfaces are the interfaces every client must request before
// finish() will mint a connection (spec §4.5).
var requiredInterfaces = []string{
	proto.InterfaceConnection, proto.InterfacePingpong, proto.InterfaceCallback,
}

// NewServerDriver constructs a server handshake driver advertising
// handshake protocol version and offering the given interface→version
// ceilings.
func NewServerDriver(b *backend.Backend, version uint32, offered map[string]uint32) *ServerDriver {
	return &ServerDriver{
		backend:   b,
		version:   version,
		offered:   offered,
		Requested: make(map[string]uint32),
	}
}

// Start sends the initial HandshakeVersion event, entering AwaitFinish.
func (d *ServerDriver) Start() {
	d.backend.SendEvent(0, proto.HandshakeEventVersion{Version: d.version})
	d.state = ServerAwaitFinish
}

// Done reports whether the handshake has completed and ConnectionID is
// valid.
func (d *ServerDriver) Done() bool { return d.state == ServerDone }

// HandleRequest advances the driver with one incoming ei_handshake
// request. It must only be called with requests addressed to object id 0.
func (d *ServerDriver) HandleRequest(req proto.Request) error {
	if d.state != ServerAwaitFinish {
		return eiproto.WrapHandshakeError("handshake already finished", eiproto.ErrDuplicateEvent)
	}
	switch r := req.(type) {
	case proto.HandshakeHandshakeVersion:
		return nil // the client merely echoes back our announced version
	case proto.HandshakeSetContextType:
		if d.contextTypeSet {
			return eiproto.WrapHandshakeError("duplicate context_type", eiproto.ErrDuplicateEvent)
		}
		d.contextTypeSet = true
		d.ClientContextType = r.ContextType
		return nil
	case proto.HandshakeName:
		if d.nameSet {
			return eiproto.WrapHandshakeError("duplicate name", eiproto.ErrDuplicateEvent)
		}
		d.nameSet = true
		d.ClientName = r.Name
		return nil
	case proto.HandshakeInterfaceVersion:
		d.Requested[r.Name] = r.Version
		return nil
	case proto.HandshakeFinish:
		return d.finish()
	default:
		return eiproto.WrapHandshakeError("unexpected request before finish", eiproto.ErrNonHandshakeEvent)
	}
}

func (d *ServerDriver) finish() error {
	if d.ClientName == "" {
		return eiproto.WrapHandshakeError("finish without name", eiproto.ErrMissingInterface)
	}
	for _, iface := range requiredInterfaces {
		if _, ok := d.Requested[iface]; !ok {
			return eiproto.WrapHandshakeError("missing required interface "+iface, eiproto.ErrMissingInterface)
		}
	}
	for iface, ourVersion := range d.offered {
		wanted, ok := d.Requested[iface]
		if !ok {
			continue
		}
		negotiated := ourVersion
		if wanted < negotiated {
			negotiated = wanted
		}
		d.backend.SendEvent(0, proto.HandshakeEventInterfaceVersion{Name: iface, Version: negotiated})
	}

	d.ConnectionID = d.backend.Registry().NewID()
	d.backend.Registry().Insert(d.ConnectionID, proto.InterfaceConnection, 1)
	d.serial++
	d.backend.SendEvent(0, proto.HandshakeEventConnection{
		Serial:     d.serial,
		Connection: d.ConnectionID,
		Version:    1,
	})
	d.state = ServerDone
	return nil
}
