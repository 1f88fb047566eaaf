package wire

import (
	"encoding/binary"
	"unsafe"
)

// NativeEndian is the byte order of the running host. The EI wire format is
// defined in terms of the sender's native order (spec §4.1/§6): both peers
// are assumed to run on the same machine, so no byte-swapping ever happens
// on the wire — this just has to match whatever `to_ne_bytes` would produce
// on this host.
var NativeEndian binary.ByteOrder = func() binary.ByteOrder {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	if b[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()
