package eis

import (
	"os"
	"path/filepath"

	"github.com/daedaluz/eiproto/transport"
)

// SocketPath resolves the socket path a compositor binds, mirroring
// ei.SocketPath's LIBEI_SOCKET / $XDG_RUNTIME_DIR/eis-0 resolution.
func SocketPath() string {
	if p := os.Getenv("LIBEI_SOCKET"); p != "" {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), p)
	}
	return filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), "eis-0")
}

// Listener accepts incoming ei client connections and hands each a fresh
// Connection, with the handshake already started.
type Listener struct {
	l       *transport.Listener
	version uint32
	offered map[string]uint32
}

// Listen binds path and prepares to start version on every accepted
// connection, offering the given interface→version ceilings.
func Listen(path string, version uint32, offered map[string]uint32) (*Listener, error) {
	l, err := transport.Listen(path)
	if err != nil {
		return nil, err
	}
	return &Listener{l: l, version: version, offered: offered}, nil
}

// Fd returns the listening socket descriptor for an integrator's poll set.
func (l *Listener) Fd() int { return l.l.Fd() }

// Close closes the listening socket.
func (l *Listener) Close() error { return l.l.Close() }

// Accept returns the next pending connection with its handshake already
// started, or (nil, nil) if none is currently pending.
func (l *Listener) Accept() (*Connection, error) {
	conn, err := l.l.Accept()
	if err != nil || conn == nil {
		return nil, err
	}
	return newConnection(conn, l.version, l.offered), nil
}
