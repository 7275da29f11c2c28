package retainptr

import "reflect"

// Equal reports whether a and b refer to the same object. This is
// identity, not value, equality: two handles compare equal exactly when
// their stored values are the same, including a handle of a concrete
// pointer type against a handle of an interface type holding that same
// pointer. Two empty handles compare equal.
func Equal[P any, TR Traits[P], Q any, QR Traits[Q]](a Ptr[P, TR], b Ptr[Q, QR]) bool {
	if !a.owning || !b.owning {
		return a.owning == b.owning
	}
	return any(a.v) == any(b.v)
}

// Less orders handles by the address of the stored value, with empty
// handles ordering first. Like Equal, it defines an identity order, not a
// value order.
func Less[P any, TR Traits[P], Q any, QR Traits[Q]](a Ptr[P, TR], b Ptr[Q, QR]) bool {
	return a.addr() < b.addr()
}

// LessEqual reports a <= b in the Less order.
func LessEqual[P any, TR Traits[P], Q any, QR Traits[Q]](a Ptr[P, TR], b Ptr[Q, QR]) bool {
	return !Less(b, a)
}

// Greater reports a > b in the Less order.
func Greater[P any, TR Traits[P], Q any, QR Traits[Q]](a Ptr[P, TR], b Ptr[Q, QR]) bool {
	return Less(b, a)
}

// GreaterEqual reports a >= b in the Less order.
func GreaterEqual[P any, TR Traits[P], Q any, QR Traits[Q]](a Ptr[P, TR], b Ptr[Q, QR]) bool {
	return !Less(a, b)
}

// addr returns the address identity of the stored value, 0 for an empty
// handle.
func (p Ptr[P, TR]) addr() uintptr {
	if !p.owning {
		return 0
	}
	rv := reflect.ValueOf(any(p.v))
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer()
	}
	return 0
}
