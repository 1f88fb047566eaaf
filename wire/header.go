package wire

// HeaderSize is the fixed size in bytes of every EI message header (spec
// §4.1): object id (u64), total length including header (u32), opcode (u32).
const HeaderSize = 16

// Header is the fixed preamble of every message on the wire.
type Header struct {
	ObjectID uint64
	Length   uint32
	Opcode   uint32
}

// ParseHeader decodes a 16-byte native-endian header.
func ParseHeader(buf []byte) Header {
	_ = buf[HeaderSize-1]
	return Header{
		ObjectID: NativeEndian.Uint64(buf[0:8]),
		Length:   NativeEndian.Uint32(buf[8:12]),
		Opcode:   NativeEndian.Uint32(buf[12:16]),
	}
}

// Bytes encodes the header back into its 16-byte wire form.
func (h Header) Bytes() [HeaderSize]byte {
	var buf [HeaderSize]byte
	NativeEndian.PutUint64(buf[0:8], h.ObjectID)
	NativeEndian.PutUint32(buf[8:12], h.Length)
	NativeEndian.PutUint32(buf[12:16], h.Opcode)
	return buf
}
