package hash

import (
	"encoding/binary"

	"github.com/peterlauro/smart-ptrs/x/unsafe"

	"github.com/m3db/stackmurmur3"
)

// Hash is the hash type.
type Hash uint64

// BytesHash returns the hash of a byte slice.
func BytesHash(d []byte) Hash {
	return Hash(murmur3.Sum64(d))
}

// StringHash returns the hash of a string.
func StringHash(s string) Hash {
	return BytesHash(unsafe.ToBytes(s))
}

// AddrHash returns the hash of an address. The zero address hashes to a
// fixed value, so empty handles and nil raw pointers hash alike.
func AddrHash(addr uintptr) Hash {
	// NB: This should allocate on the stack.
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(addr))
	return BytesHash(b[:])
}
