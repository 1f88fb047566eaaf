package wire

import (
	"math"
	"unicode/utf8"

	"golang.org/x/sys/unix"

	"github.com/daedaluz/eiproto"
)

// Writer accumulates the body of one outgoing message: a byte buffer and an
// fd queue, matching the encoding side of spec §4.1.
type Writer struct {
	buf []byte
	fds []int
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated body bytes.
func (w *Writer) Bytes() []byte { return w.buf }

// Fds returns the accumulated fd queue, in the order arguments were written.
func (w *Writer) Fds() []int { return w.fds }

func (w *Writer) grow(n int) []byte {
	off := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return w.buf[off : off+n]
}

// PutUint32 appends a 4-byte native-endian u32 argument.
func (w *Writer) PutUint32(v uint32) { NativeEndian.PutUint32(w.grow(4), v) }

// PutInt32 appends a 4-byte native-endian i32 argument.
func (w *Writer) PutInt32(v int32) { NativeEndian.PutUint32(w.grow(4), uint32(v)) }

// PutFloat32 appends a 4-byte native-endian f32 argument.
func (w *Writer) PutFloat32(v float32) { NativeEndian.PutUint32(w.grow(4), float32bits(v)) }

// PutUint64 appends an 8-byte native-endian u64 argument.
func (w *Writer) PutUint64(v uint64) { NativeEndian.PutUint64(w.grow(8), v) }

// PutInt64 appends an 8-byte native-endian i64 argument.
func (w *Writer) PutInt64(v int64) { NativeEndian.PutUint64(w.grow(8), uint64(v)) }

// PutID appends an 8-byte object id argument.
func (w *Writer) PutID(id uint64) { w.PutUint64(id) }

// PutNewID appends an 8-byte new-object-id argument.
func (w *Writer) PutNewID(id uint64) { w.PutUint64(id) }

// PutString appends a string argument. A nil pointer encodes the null
// string: u32(0) with no following bytes. A non-nil pointer (including the
// empty string) encodes u32 length-including-NUL, the UTF-8 bytes, a NUL
// terminator, and zero padding to a multiple of 4 (spec §4.1, testable
// property 2 and boundary behaviors).
func (w *Writer) PutString(s *string) error {
	if s == nil {
		w.PutUint32(0)
		return nil
	}
	if !utf8.ValidString(*s) {
		return eiproto.ErrUTF8
	}
	n := len(*s) + 1
	padded := (n + 3) &^ 3
	w.PutUint32(uint32(n))
	dst := w.grow(padded)
	copy(dst, *s)
	// remaining bytes (the NUL terminator plus any padding) are already
	// zero from grow's make([]byte, n).
	return nil
}

// PutFd duplicates fd and queues the duplicate for transmission as
// ancillary data on the next flush; the caller retains ownership of fd
// itself (spec §5: "enqueuing an fd argument requires duplicating the
// caller's descriptor").
func (w *Writer) PutFd(fd int) error {
	dup, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return eiproto.WrapTransportError("duplicate outgoing fd argument", err)
	}
	w.fds = append(w.fds, dup)
	return nil
}

// Reader drains the body of one incoming message against the connection's
// shared fd queue, matching the decoding side of spec §4.1.
type Reader struct {
	buf []byte
	fds *[]int
}

// NewReader wraps buf (the message body, header already stripped) and fds
// (the connection's shared incoming fd queue; fds are popped from the
// front as Fd arguments are read).
func NewReader(buf []byte, fds *[]int) *Reader {
	return &Reader{buf: buf, fds: fds}
}

// Remaining reports how many body bytes are left unconsumed.
func (r *Reader) Remaining() int { return len(r.buf) }

func (r *Reader) take(n int) ([]byte, error) {
	if len(r.buf) < n {
		return nil, eiproto.ErrEndOfMessage
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b, nil
}

// Uint32 reads a 4-byte native-endian u32 argument.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return NativeEndian.Uint32(b), nil
}

// Int32 reads a 4-byte native-endian i32 argument.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Float32 reads a 4-byte native-endian f32 argument.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	return float32frombits(v), nil
}

// Uint64 reads an 8-byte native-endian u64 argument.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return NativeEndian.Uint64(b), nil
}

// Int64 reads an 8-byte native-endian i64 argument.
func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

// ID reads an object-id argument.
func (r *Reader) ID() (uint64, error) { return r.Uint64() }

// NewID reads a new-object-id argument.
func (r *Reader) NewID() (uint64, error) { return r.Uint64() }

// String reads a string argument. A wire length of 0 decodes to a nil
// pointer (the null string); any other length decodes the UTF-8 payload
// (minus its NUL terminator) into a fresh string.
func (r *Reader) String() (*string, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	padded := (int(n) + 3) &^ 3
	b, err := r.take(padded)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b[:n-1]) {
		return nil, eiproto.ErrUTF8
	}
	s := string(b[:n-1])
	return &s, nil
}

// NonNullString reads a string argument that must not be null, as required
// by several message fields (e.g. a device's or seat's mandatory name).
func (r *Reader) NonNullString() (string, error) {
	s, err := r.String()
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", eiproto.ErrInvalidNull
	}
	return *s, nil
}

// Fd pops one descriptor from the connection's shared fd queue.
func (r *Reader) Fd() (int, error) {
	if r.fds == nil || len(*r.fds) == 0 {
		return -1, eiproto.ErrNoFd
	}
	fd := (*r.fds)[0]
	*r.fds = (*r.fds)[1:]
	return fd, nil
}

func float32bits(f float32) uint32    { return math.Float32bits(f) }
func float32frombits(b uint32) float32 { return math.Float32frombits(b) }
