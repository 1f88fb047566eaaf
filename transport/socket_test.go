package transport

import (
	"bytes"
	"testing"

	"golang.org/x/sys/unix"
)

// newPair builds a connected, non-blocking socketpair wrapped as two Conns,
// avoiding any dependency on a real filesystem socket path for the test.
func newPair(t *testing.T) (*Conn, *Conn) {
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
	return NewConn(fds[0]), NewConn(fds[1])
}

func TestSendRecvBytes(t *testing.T) {
	a, b := newPair(t)
	defer a.Close()
	defer b.Close()

	msg := []byte("hello ei")
	if _, err := a.Send(msg, nil); err != nil {
		t.Fatalf("Send: %v", err)
	}
	buf := make([]byte, 64)
	n, fds, err := b.Recv(buf)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if len(fds) != 0 {
		t.Fatalf("unexpected fds: %v", fds)
	}
	if !bytes.Equal(buf[:n], msg) {
		t.Fatalf("Recv got %q, want %q", buf[:n], msg)
	}
}

func TestSendRecvFds(t *testing.T) {
	a, b := newPair(t)
	defer a.Close()
	defer b.Close()

	r, w, err := unix.Pipe2(unix.O_CLOEXEC)
	if err != nil {
		t.Fatalf("pipe2: %v", err)
	}
	defer unix.Close(w)

	if _, err := a.Send([]byte("fd"), []int{r}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	unix.Close(r)

	buf := make([]byte, 64)
	n, fds, err := b.Recv(buf)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if string(buf[:n]) != "fd" {
		t.Fatalf("Recv body = %q", buf[:n])
	}
	if len(fds) != 1 {
		t.Fatalf("got %d fds, want 1", len(fds))
	}
	defer unix.Close(fds[0])

	payload := []byte("ping")
	if _, err := unix.Write(w, payload); err != nil {
		t.Fatalf("write to passed fd's peer: %v", err)
	}
	got := make([]byte, len(payload))
	if _, err := unix.Read(fds[0], got); err != nil {
		t.Fatalf("read from received fd: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("got %q through passed fd, want %q", got, payload)
	}
}

func TestRecvNoDataIsEAGAIN(t *testing.T) {
	a, b := newPair(t)
	defer a.Close()
	defer b.Close()

	buf := make([]byte, 16)
	_, _, err := b.Recv(buf)
	if err != unix.EAGAIN {
		t.Fatalf("Recv with nothing pending = %v, want EAGAIN", err)
	}
}

func TestListenAcceptNoPendingIsNil(t *testing.T) {
	dir := t.TempDir()
	l, err := Listen(dir + "/eis-test.sock")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	c, err := l.Accept()
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if c != nil {
		t.Fatal("expected (nil, nil) with no pending connection")
	}
}

func TestListenDialAccept(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/eis-test.sock"
	l, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	client, err := Dial(path)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	var server *Conn
	for i := 0; i < 100 && server == nil; i++ {
		server, err = l.Accept()
		if err != nil {
			t.Fatalf("Accept: %v", err)
		}
	}
	if server == nil {
		t.Fatal("Accept never produced a connection")
	}
	defer server.Close()
}
