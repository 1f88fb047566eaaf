package ei

import (
	"github.com/daedaluz/eiproto/backend"
	"github.com/daedaluz/eiproto/handshake"
	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/transport"
)

// Context is one client-side ei connection: transport, handshake, and
// high-level translator bundled behind the non-blocking surface spec §4.6
// and §4.7 describe (an AsFd-style Fd, Flush, and a Dispatch loop that
// drains whatever the socket currently has to offer).
type Context struct {
	backend   *backend.Backend
	handshake *handshake.ClientDriver
	converter *Converter
}

// Connect dials path (typically $XDG_RUNTIME_DIR/eis-0, see
// SocketPath) and starts the client handshake, identifying as name
// with the given context type and wanted interface versions.
func Connect(path string, name string, contextType proto.ContextType, wanted map[string]uint32) (*Context, error) {
	conn, err := transport.Dial(path)
	if err != nil {
		return nil, err
	}
	b := backend.New(conn, backend.RoleClient)
	return &Context{
		backend:   b,
		handshake: handshake.NewClientDriver(b, name, contextType, wanted),
		converter: NewConverter(b),
	}, nil
}

// Fd returns the underlying socket descriptor for an integrator's poll set.
func (c *Context) Fd() int { return c.backend.Fd() }

// Flush writes as much of the pending output as the socket currently
// accepts; see backend.Backend.Flush.
func (c *Context) Flush() (bool, error) { return c.backend.Flush() }

// Close closes the underlying connection.
func (c *Context) Close() error { return c.backend.Close() }

// SetDebug installs t as the wire tracer (see backend.NewDebugTracer),
// or disables tracing if t is nil.
func (c *Context) SetDebug(t backend.Tracer) { c.backend.Debug = t }

// HandshakeDone reports whether the handshake has completed.
func (c *Context) HandshakeDone() bool { return c.handshake.Done() }

// ConnectionID is the ei_connection object id the server minted, valid
// once HandshakeDone reports true.
func (c *Context) ConnectionID() uint64 { return c.handshake.ConnectionID }

// Dispatch drains every complete message currently available (reading more
// from the socket as needed, without blocking) and returns the
// high-level notifications produced, if the handshake has completed.
// Before the handshake completes it drives the handshake state machine
// silently and returns no notifications.
func (c *Context) Dispatch() ([]Notification, error) {
	var notes []Notification
	for {
		if !c.backend.Pending() {
			more, err := c.backend.FillFromSocket()
			if err != nil {
				return notes, err
			}
			if !more {
				return notes, nil
			}
			continue
		}
		msg, err := c.backend.Read()
		if err != nil {
			return notes, err
		}
		if msg == nil {
			return notes, nil
		}
		if !c.handshake.Done() {
			if err := c.handshake.HandleEvent(msg.Event); err != nil {
				return notes, err
			}
			continue
		}
		ns, err := c.converter.HandleEvent(msg.Object, msg.Event)
		if err != nil {
			return notes, err
		}
		notes = append(notes, ns...)
	}
}
