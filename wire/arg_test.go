package wire

import (
	"strings"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"", "hi", "unit-test", strings.Repeat("x", 257)}
	for _, s := range cases {
		w := NewWriter()
		if err := w.PutString(&s); err != nil {
			t.Fatalf("PutString(%q): %v", s, err)
		}
		r := NewReader(w.Bytes(), nil)
		got, err := r.String()
		if err != nil {
			t.Fatalf("String() for %q: %v", s, err)
		}
		if got == nil || *got != s {
			t.Fatalf("round trip mismatch: got %v, want %q", got, s)
		}
		if r.Remaining() != 0 {
			t.Fatalf("%d residual bytes after decoding %q", r.Remaining(), s)
		}
	}
}

func TestNullStringRoundTrip(t *testing.T) {
	w := NewWriter()
	if err := w.PutString(nil); err != nil {
		t.Fatalf("PutString(nil): %v", err)
	}
	if len(w.Bytes()) != 4 {
		t.Fatalf("null string encoded to %d bytes, want 4", len(w.Bytes()))
	}
	r := NewReader(w.Bytes(), nil)
	got, err := r.String()
	if err != nil {
		t.Fatalf("String(): %v", err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil (null string)", got)
	}
}

// TestStringPaddingExample matches spec §8 end-to-end scenario 5: "hi"
// encodes to 03 00 00 00 'h' 'i' 00 00.
func TestStringPaddingExample(t *testing.T) {
	s := "hi"
	w := NewWriter()
	if err := w.PutString(&s); err != nil {
		t.Fatal(err)
	}
	want := []byte{3, 0, 0, 0, 'h', 'i', 0, 0}
	got := w.Bytes()
	if len(got) != len(want) {
		t.Fatalf("encoded length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestStringLengthMultipleOfFourNoExtraPadding(t *testing.T) {
	// len("abc")+1 == 4, already a multiple of 4: only the mandatory NUL,
	// no extra padding bytes.
	s := "abc"
	w := NewWriter()
	if err := w.PutString(&s); err != nil {
		t.Fatal(err)
	}
	if len(w.Bytes()) != 4+4 {
		t.Fatalf("encoded length = %d, want %d", len(w.Bytes()), 8)
	}
}

func TestNumericArgRoundTrip(t *testing.T) {
	w := NewWriter()
	w.PutUint32(0xdeadbeef)
	w.PutInt32(-12345)
	w.PutFloat32(3.5)
	w.PutUint64(0xff00000000000001)
	w.PutInt64(-1)
	w.PutID(7)
	w.PutNewID(0xff00000000000002)

	r := NewReader(w.Bytes(), nil)
	if v, err := r.Uint32(); err != nil || v != 0xdeadbeef {
		t.Fatalf("Uint32() = %v, %v", v, err)
	}
	if v, err := r.Int32(); err != nil || v != -12345 {
		t.Fatalf("Int32() = %v, %v", v, err)
	}
	if v, err := r.Float32(); err != nil || v != 3.5 {
		t.Fatalf("Float32() = %v, %v", v, err)
	}
	if v, err := r.Uint64(); err != nil || v != 0xff00000000000001 {
		t.Fatalf("Uint64() = %v, %v", v, err)
	}
	if v, err := r.Int64(); err != nil || v != -1 {
		t.Fatalf("Int64() = %v, %v", v, err)
	}
	if v, err := r.ID(); err != nil || v != 7 {
		t.Fatalf("ID() = %v, %v", v, err)
	}
	if v, err := r.NewID(); err != nil || v != 0xff00000000000002 {
		t.Fatalf("NewID() = %v, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("%d residual bytes", r.Remaining())
	}
}

func TestReaderEndOfMessage(t *testing.T) {
	r := NewReader([]byte{1, 2, 3}, nil)
	if _, err := r.Uint32(); err == nil {
		t.Fatal("expected error reading past end of message")
	}
}

func TestFdRoundTripNoneQueued(t *testing.T) {
	r := NewReader(nil, nil)
	if _, err := r.Fd(); err == nil {
		t.Fatal("expected ErrNoFd")
	}
}

func TestFdQueueOrder(t *testing.T) {
	fds := []int{11, 22, 33}
	r := NewReader(nil, &fds)
	for _, want := range []int{11, 22, 33} {
		got, err := r.Fd()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("Fd() = %d, want %d", got, want)
		}
	}
	if _, err := r.Fd(); err == nil {
		t.Fatal("expected ErrNoFd after queue drained")
	}
}
