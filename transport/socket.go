// Package transport implements the non-blocking SCM_RIGHTS Unix domain
// socket transport described in spec §4.2: single recvmsg and sendmsg calls
// on a socket fd. It holds no buffers or locks; the per-connection read and
// write buffers live in package backend.
//
// Grounded in the teacher's syscall-direct style (Daedaluz-goserial's
// port_linux.go calls syscall.Open/Read/Write/Ioctl directly rather than
// going through higher-level wrappers) but built on golang.org/x/sys/unix
// instead of the bare syscall package, following the pattern shown in
// other_examples/57d52657_Snaipe-go-varlink__sock_unix.go.go (an
// object-protocol-over-Unix-socket transport, closely analogous to EI's) and
// other_examples/8fe7e024_thiagojdb-adoctl__..._wayland_protocol.go.go (a
// Wayland client using syscall.Recvmsg/ParseUnixRights directly).
package transport

import (
	"golang.org/x/sys/unix"

	"github.com/daedaluz/eiproto"
)

// MaxFds is the maximum number of file descriptors accepted as ancillary
// data in a single recvmsg call (spec §4.2: "sized for up to 32 fds per
// call").
const MaxFds = 32

// Conn is one endpoint of a non-blocking Unix domain stream socket carrying
// SCM_RIGHTS ancillary data.
type Conn struct {
	fd int
}

// NewConn wraps an already-connected, already-nonblocking socket fd.
func NewConn(fd int) *Conn { return &Conn{fd: fd} }

// Dial connects to the Unix domain socket at path and returns a non-blocking
// Conn.
func Dial(path string) (*Conn, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, eiproto.WrapTransportError("create socket", err)
	}
	if err := unix.Connect(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, eiproto.WrapTransportError("connect "+path, err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, eiproto.WrapTransportError("set nonblocking", err)
	}
	return &Conn{fd: fd}, nil
}

// Fd returns the raw descriptor, suitable for readiness polling by an
// integrator (spec §4.2's "AsFd handle").
func (c *Conn) Fd() int { return c.fd }

// Close closes the underlying socket.
func (c *Conn) Close() error {
	return unix.Close(c.fd)
}

// Recv performs one recvmsg call, returning the bytes read and any fds
// delivered as SCM_RIGHTS ancillary data. It sets MSG_CMSG_CLOEXEC on every
// received descriptor. A zero-byte, zero-fd, nil-error return means
// end-of-file; unix.EAGAIN means the caller should stop its read loop for
// now (spec §4.2 "Reading").
func (c *Conn) Recv(buf []byte) (n int, fds []int, err error) {
	oob := make([]byte, unix.CmsgSpace(MaxFds*4))
	for {
		n, oobn, _, _, rerr := unix.Recvmsg(c.fd, buf, oob, unix.MSG_CMSG_CLOEXEC)
		if rerr == unix.EINTR {
			continue
		}
		if rerr != nil {
			return 0, nil, rerr
		}
		if oobn > 0 {
			fds, err = parseRights(oob[:oobn])
			if err != nil {
				return 0, nil, eiproto.WrapTransportError("parse SCM_RIGHTS", err)
			}
		}
		return n, fds, nil
	}
}

func parseRights(oob []byte) ([]int, error) {
	scms, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil, err
	}
	var fds []int
	for _, scm := range scms {
		rights, err := unix.ParseUnixRights(&scm)
		if err != nil {
			return nil, err
		}
		fds = append(fds, rights...)
	}
	return fds, nil
}

// Send performs one sendmsg call with MSG_NOSIGNAL, attaching fds (if any)
// as SCM_RIGHTS ancillary data. It returns the number of bytes actually
// written (spec §4.2 "Writing": short writes advance the buffer, the caller
// loops).
func (c *Conn) Send(buf []byte, fds []int) (int, error) {
	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}
	for {
		n, err := unix.SendmsgN(c.fd, buf, oob, nil, unix.MSG_NOSIGNAL)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

// Listener accepts incoming EIS connections on a bound, listening, and
// non-blocking Unix domain socket.
type Listener struct {
	fd int
}

// Listen binds and listens on path, removing any stale socket file first.
func Listen(path string) (*Listener, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, eiproto.WrapTransportError("create socket", err)
	}
	_ = unix.Unlink(path)
	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, eiproto.WrapTransportError("bind "+path, err)
	}
	if err := unix.Listen(fd, 16); err != nil {
		unix.Close(fd)
		return nil, eiproto.WrapTransportError("listen "+path, err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, eiproto.WrapTransportError("set nonblocking", err)
	}
	return &Listener{fd: fd}, nil
}

// Fd returns the raw listening descriptor for readiness polling.
func (l *Listener) Fd() int { return l.fd }

// Close closes the listening socket.
func (l *Listener) Close() error { return unix.Close(l.fd) }

// Accept returns the next pending connection, or (nil, nil) if none is
// currently pending (mirroring the original's Option<Connection>).
func (l *Listener) Accept() (*Conn, error) {
	nfd, _, err := unix.Accept4(l.fd, unix.SOCK_CLOEXEC|unix.SOCK_NONBLOCK)
	if err == unix.EAGAIN {
		return nil, nil
	}
	if err != nil {
		return nil, eiproto.WrapTransportError("accept", err)
	}
	return &Conn{fd: nfd}, nil
}
