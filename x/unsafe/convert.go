package unsafe

import (
	"unsafe"
)

// ToString converts a byte slice to a string with zero allocation.
// NB: The byte slice is fully owned by the string returned and must not be mutated.
// Adapted from https://golang.org/src/strings/builder.go#46.
func ToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// ToBytes converts a string to a byte slice with zero allocation.
// NB: The returned byte slice aliases the string data and must not be mutated.
func ToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
