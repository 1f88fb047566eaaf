// Package backend implements the low-level, non-blocking event-loop surface
// of spec §4.6: a per-connection object registry and read/write buffer pair
// wrapped around a transport.Conn, exposing Fd/Pending/Read/Flush the way a
// poll-driven integrator (an event loop, a select call) expects to drive it.
//
// Concurrency model (spec §5): the read buffer+fd queue and the write
// buffer+pending fds are two independently-locked pools; the registry locks
// itself internally. A Backend method never holds more than one of these
// locks at a time.
package backend

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/daedaluz/eiproto"
	"github.com/daedaluz/eiproto/proto"
	"github.com/daedaluz/eiproto/registry"
	"github.com/daedaluz/eiproto/transport"
	"github.com/daedaluz/eiproto/wire"
)

// Role selects which half of the role-symmetric binding a Backend decodes
// incoming messages as: a client Backend decodes incoming Events and
// encodes outgoing Requests; a server Backend is the mirror image.
type Role int

const (
	RoleClient Role = iota
	RoleServer
)

// Message is one fully-framed, decoded incoming message together with the
// live object it targeted.
type Message struct {
	Object  registry.Object
	Request proto.Request // set when the Backend is RoleServer
	Event   proto.Event   // set when the Backend is RoleClient
}

// Backend is one endpoint of the wire protocol: transport, registry, and
// the two buffer pools spec §4.6 describes.
type Backend struct {
	conn     *transport.Conn
	registry *registry.Registry
	role     Role
	Debug    Tracer // nil disables tracing; see debug.go

	readMu  sync.Mutex
	readBuf []byte
	readFds []int

	writeMu    sync.Mutex
	writeBuf   []byte
	writeFds   []int
}

// New wraps conn as a Backend of the given role, with a fresh registry.
func New(conn *transport.Conn, role Role) *Backend {
	return &Backend{
		conn:     conn,
		registry: registry.New(role == RoleClient),
		role:     role,
	}
}

// Registry exposes the connection's object table, e.g. for a handshake
// driver to mint and insert new objects.
func (b *Backend) Registry() *registry.Registry { return b.registry }

// Fd returns the underlying socket descriptor, for an integrator's poll set.
func (b *Backend) Fd() int { return b.conn.Fd() }

// Close closes the underlying transport.
func (b *Backend) Close() error { return b.conn.Close() }

// Pending reports whether at least one complete framed message is already
// buffered without touching the socket.
func (b *Backend) Pending() bool {
	b.readMu.Lock()
	defer b.readMu.Unlock()
	return b.nextMessageLen() > 0
}

// nextMessageLen returns the total framed length (header+body) of the next
// message in readBuf if it is fully buffered, or 0 if not enough has
// arrived yet. Caller must hold readMu.
func (b *Backend) nextMessageLen() int {
	if len(b.readBuf) < wire.HeaderSize {
		return 0
	}
	h := wire.ParseHeader(b.readBuf)
	if h.Length < wire.HeaderSize {
		return -1 // caller turns this into a HeaderLengthError
	}
	if uint32(len(b.readBuf)) < h.Length {
		return 0
	}
	return int(h.Length)
}

// FillFromSocket performs one non-blocking recv, appending to the read
// buffer and fd queue. It returns (false, nil) when the socket currently
// has nothing to offer (unix.EAGAIN); a closed peer is reported as an
// eiproto.TransportError.
func (b *Backend) FillFromSocket() (bool, error) {
	buf := make([]byte, 4096)
	n, fds, err := b.conn.Recv(buf)
	if err == unix.EAGAIN {
		return false, nil
	}
	if err != nil {
		return false, eiproto.WrapTransportError("recv", err)
	}
	if n == 0 && len(fds) == 0 {
		return false, eiproto.WrapTransportError("recv", eiproto.ErrUnexpectedEOF)
	}
	b.readMu.Lock()
	b.readBuf = append(b.readBuf, buf[:n]...)
	b.readFds = append(b.readFds, fds...)
	b.readMu.Unlock()
	return true, nil
}

// Read pops and decodes the next complete message, if any is buffered. It
// does not touch the socket; pair it with FillFromSocket in an event loop.
// A (nil, nil) return means no complete message is currently buffered.
func (b *Backend) Read() (*Message, error) {
	b.readMu.Lock()
	msgLen := b.nextMessageLen()
	if msgLen == 0 {
		b.readMu.Unlock()
		return nil, nil
	}
	if msgLen < 0 {
		h := wire.ParseHeader(b.readBuf)
		b.readMu.Unlock()
		return nil, eiproto.NewHeaderLengthError(h.Length)
	}
	h := wire.ParseHeader(b.readBuf)
	body := append([]byte(nil), b.readBuf[wire.HeaderSize:msgLen]...)
	b.readBuf = b.readBuf[msgLen:]
	b.readMu.Unlock()

	obj, ok := b.registry.Lookup(h.ObjectID)
	if !ok {
		return nil, eiproto.NewInvalidObjectError(h.ObjectID)
	}

	r := wire.NewReader(body, &b.readFds)
	msg := &Message{Object: obj}
	var err error
	switch b.role {
	case RoleServer:
		msg.Request, err = proto.DecodeRequest(obj.Interface, h.Opcode, r)
	default:
		msg.Event, err = proto.DecodeEvent(obj.Interface, h.Opcode, r)
	}
	if err != nil {
		return nil, err
	}
	if b.Debug != nil {
		b.Debug.Incoming(obj, h.Opcode, msg.Request, msg.Event)
	}
	return msg, nil
}

// SendRequest encodes and enqueues req, addressed to objectID, for the next
// Flush. Used by a client-role Backend.
func (b *Backend) SendRequest(objectID uint64, req proto.Request) {
	w := wire.NewWriter()
	req.Encode(w)
	b.enqueue(objectID, req.RequestOpcode(), w)
	if b.Debug != nil {
		obj, _ := b.registry.Lookup(objectID)
		b.Debug.Outgoing(obj, req.RequestOpcode(), req, nil)
	}
}

// SendEvent encodes and enqueues evt, addressed to objectID, for the next
// Flush. Used by a server-role Backend.
func (b *Backend) SendEvent(objectID uint64, evt proto.Event) {
	w := wire.NewWriter()
	evt.Encode(w)
	b.enqueue(objectID, evt.EventOpcode(), w)
	if b.Debug != nil {
		obj, _ := b.registry.Lookup(objectID)
		b.Debug.Outgoing(obj, evt.EventOpcode(), nil, evt)
	}
}

func (b *Backend) enqueue(objectID uint64, opcode uint32, body *wire.Writer) {
	h := wire.Header{ObjectID: objectID, Length: uint32(wire.HeaderSize + len(body.Bytes())), Opcode: opcode}
	hb := h.Bytes()

	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	b.writeBuf = append(b.writeBuf, hb[:]...)
	b.writeBuf = append(b.writeBuf, body.Bytes()...)
	b.writeFds = append(b.writeFds, body.Fds()...)
}

// Flush writes as much of the pending write buffer as the socket currently
// accepts without blocking. It returns true once the buffer has fully
// drained; a partial write leaves the remainder queued for the next call
// (spec §4.2 "Writing": "short writes advance the buffer, the caller
// loops").
func (b *Backend) Flush() (bool, error) {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	for len(b.writeBuf) > 0 {
		n, err := b.conn.Send(b.writeBuf, b.writeFds)
		if err == unix.EAGAIN {
			return false, nil
		}
		if err != nil {
			return false, eiproto.WrapTransportError("send", err)
		}
		b.writeBuf = b.writeBuf[n:]
		b.writeFds = nil // fds are attached on the first sendmsg call only
	}
	return true, nil
}
