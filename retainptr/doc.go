// Package retainptr provides an intrusive, traits-customizable
// reference-counted handle for self-disposing objects.
//
// An owned object carries its reference count inside itself by embedding
// one of the two counter mixins:
//
//	type segment struct {
//		retainptr.AtomicCount // or retainptr.PlainCount
//		data []byte
//	}
//
//	func newSegment(data []byte) *segment {
//		return &segment{AtomicCount: retainptr.NewAtomicCount(), data: data}
//	}
//
// The counter is born at 1, so the first owner adopts the object rather
// than retaining it:
//
//	p := retainptr.Own(newSegment(data))
//	q := p.Clone() // count 2
//	q.Clear()      // count 1
//	p.Clear()      // count 0, segment.Dispose runs if declared
//
// All counting behavior is delegated to a traits type bound as a type
// parameter. DefaultTraits drives the embedded mixin and runs the owned
// type's optional Dispose method on the final release. Custom traits need
// only Increment and Decrement, which makes the handle usable with foreign
// reference-counted objects whose counts it does not store.
//
// A Ptr value itself is not safe for concurrent mutation. Sharing one
// counted object across goroutines, each holding its own Ptr, is safe when
// the object embeds AtomicCount; PlainCount requires external
// serialization of every count manipulation.
package retainptr
