package retainptr

// Convert returns a handle of element type P sharing ownership of src's
// target, applying conv to the stored value. conv is typically an identity
// conversion the compiler checks, e.g. widening a concrete pointer into an
// interface it implements:
//
//	base := retainptr.Convert[Animal, retainptr.DynamicTraits[Animal]](
//		dog, func(d *Dog) Animal { return d })
//
// The increment goes through the SOURCE traits: only they know how to
// manipulate the source type's counter. Converting an empty handle yields
// an empty handle and conv is not called.
func Convert[P any, TR Traits[P], Q any, QR Traits[Q]](src Ptr[Q, QR], conv func(Q) P) Ptr[P, TR] {
	if !src.owning {
		return Ptr[P, TR]{}
	}
	var qtr QR
	qtr.Increment(src.v)
	return Adopt[P, TR](conv(src.v))
}

// ConvertMoved is Convert for a source being given up: ownership transfers
// to the result without any count change and src is empty afterwards.
func ConvertMoved[P any, TR Traits[P], Q any, QR Traits[Q]](src *Ptr[Q, QR], conv func(Q) P) Ptr[P, TR] {
	if !src.owning {
		return Ptr[P, TR]{}
	}
	return Adopt[P, TR](conv(src.Release()))
}

// As returns a handle of element type P sharing ownership of src's target
// if the stored value's dynamic type satisfies P, and an empty handle
// otherwise. src is never affected.
func As[P any, TR Traits[P], Q any, QR Traits[Q]](src Ptr[Q, QR]) Ptr[P, TR] {
	if !src.owning {
		return Ptr[P, TR]{}
	}
	v, ok := any(src.v).(P)
	if !ok {
		return Ptr[P, TR]{}
	}
	var qtr QR
	qtr.Increment(src.v)
	return Adopt[P, TR](v)
}

// AsMoved is As for a source being given up. src is empty afterwards
// whether or not the assertion holds. On a failed assertion the released
// reference is re-adopted and dropped immediately, so the object is not
// leaked: if src held the last reference, the object is disposed here.
func AsMoved[P any, TR Traits[P], Q any, QR Traits[Q]](src *Ptr[Q, QR]) Ptr[P, TR] {
	if !src.owning {
		return Ptr[P, TR]{}
	}
	released := src.Release()
	if v, ok := any(released).(P); ok {
		return Adopt[P, TR](v)
	}
	tmp := Adopt[Q, QR](released)
	tmp.Clear()
	return Ptr[P, TR]{}
}
