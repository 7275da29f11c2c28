package retainptr

import (
	"github.com/peterlauro/smart-ptrs/x/hash"
)

// Hash returns the identity hash of the handle: the hash of the stored
// value's address. Handles to the same object hash equal, and an empty
// handle hashes equal to the hash of a nil address, so Ptr values can key
// hash-based containers alongside raw addresses.
func (p Ptr[P, TR]) Hash() hash.Hash {
	return hash.AddrHash(p.addr())
}
