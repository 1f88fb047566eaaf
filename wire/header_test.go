package wire

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	cases := []Header{
		{ObjectID: 0, Length: 16, Opcode: 0},
		{ObjectID: 0xff00000000000001, Length: 24, Opcode: 11},
		{ObjectID: 0x7fffffffffffffff, Length: 0xffffffff, Opcode: 0xffffffff},
	}
	for _, h := range cases {
		buf := h.Bytes()
		got := ParseHeader(buf[:])
		if got != h {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
		}
	}
}

func TestHeaderSize(t *testing.T) {
	var h Header
	buf := h.Bytes()
	if len(buf) != HeaderSize {
		t.Fatalf("Bytes() length = %d, want %d", len(buf), HeaderSize)
	}
}
