package retainptr

import (
	"fmt"
	"reflect"

	"github.com/peterlauro/smart-ptrs/x/convert"
)

// UseCountUnavailable is reported by Ptr.UseCount when the bound traits do
// not implement the UseCounter capability. It is a sentinel, never a real
// count.
const UseCountUnavailable int32 = -1

// Ptr is a handle extending the lifetime of a self-disposing object of
// element type P, which is a pointer type or an interface type. The zero
// value is an empty handle owning nothing.
//
// Every owning Ptr must give up its reference exactly once, through Clear,
// Reset, Assign, Release, Move, a moved cast, or by being the source of
// MoveFrom. Copying a Ptr with plain assignment bypasses the count; use
// Clone instead.
//
// A single Ptr value must not be mutated from two goroutines concurrently,
// regardless of the counter variant of the owned object.
type Ptr[P any, TR Traits[P]] struct {
	v      P
	owning bool
}

// Adopt takes ownership of v without incrementing its count. A nil v
// yields an empty handle.
func Adopt[P any, TR Traits[P]](v P) Ptr[P, TR] {
	if isNilValue(v) {
		return Ptr[P, TR]{}
	}
	return Ptr[P, TR]{v: v, owning: true}
}

// Retain takes ownership of a new reference to v, incrementing its count.
// A nil v yields an empty handle.
func Retain[P any, TR Traits[P]](v P) Ptr[P, TR] {
	p := Adopt[P, TR](v)
	if p.owning {
		var tr TR
		tr.Increment(p.v)
	}
	return p
}

// New takes ownership of v per the traits' DefaultAction, adopting when
// the traits do not declare one.
func New[P any, TR Traits[P]](v P) Ptr[P, TR] {
	if defaultAction[P, TR]() == RetainRef {
		return Retain[P, TR](v)
	}
	return Adopt[P, TR](v)
}

// Own adopts a freshly constructed owned object under the default traits.
// It is the idiomatic way to create the first handle:
//
//	p := retainptr.Own(&segment{AtomicCount: retainptr.NewAtomicCount()})
func Own[T any, P CountedPtr[T]](v P) Ptr[P, DefaultTraits[T, P]] {
	return Adopt[P, DefaultTraits[T, P]](v)
}

// Get returns the stored value, or the zero value of P when the handle is
// empty.
func (p Ptr[P, TR]) Get() P {
	return p.v
}

// MustGet returns the stored value and panics when the handle is empty.
func (p Ptr[P, TR]) MustGet() P {
	if !p.owning {
		panic(fmt.Errorf("dereference of empty retain pointer of type %T", p.v))
	}
	return p.v
}

// Valid reports whether the handle owns a value.
func (p Ptr[P, TR]) Valid() bool {
	return p.owning
}

// UseCount returns the current reference count of the owned object:
// UseCountUnavailable when the traits lack the UseCounter capability, 0
// when the handle is empty, and otherwise the count saturated into an
// int32.
func (p Ptr[P, TR]) UseCount() int32 {
	var tr TR
	uc, ok := any(tr).(UseCounter[P])
	if !ok {
		return UseCountUnavailable
	}
	if !p.owning {
		return 0
	}
	return convert.Int64AsInt32Saturated(uc.UseCount(p.v))
}

// Clone returns a new handle sharing ownership of the same object,
// incrementing its count. Cloning an empty handle yields an empty handle.
func (p Ptr[P, TR]) Clone() Ptr[P, TR] {
	if !p.owning {
		return Ptr[P, TR]{}
	}
	var tr TR
	tr.Increment(p.v)
	return Ptr[P, TR]{v: p.v, owning: true}
}

// Move transfers ownership out of p without touching the count. p is empty
// afterwards and its later Clear is a no-op.
func (p *Ptr[P, TR]) Move() Ptr[P, TR] {
	moved := *p
	*p = Ptr[P, TR]{}
	return moved
}

// Assign replaces p's target with other's, sharing ownership. The new
// target is incremented before the old one is decremented, so assigning a
// handle that aliases p's own target never transiently drops the count to
// zero.
func (p *Ptr[P, TR]) Assign(other Ptr[P, TR]) {
	var tr TR
	if other.owning {
		tr.Increment(other.v)
	}
	if p.owning {
		tr.Decrement(p.v)
	}
	*p = other
}

// MoveFrom transfers other's ownership into p, dropping p's previous
// reference. The count of other's target is untouched and other is empty
// afterwards. MoveFrom(p) on itself is a no-op.
func (p *Ptr[P, TR]) MoveFrom(other *Ptr[P, TR]) {
	if p == other {
		return
	}
	tmp := other.Move()
	tmp.Swap(p)
	tmp.Clear()
}

// Reset replaces the managed object: the previous target, if any, is
// decremented, and v is taken over per action. Reset(v, RetainRef)
// increments the new target before the old one is released, so resetting
// to an alias of the current target is safe.
func (p *Ptr[P, TR]) Reset(v P, action TakeAction) {
	var repl Ptr[P, TR]
	if action == RetainRef {
		repl = Retain[P, TR](v)
	} else {
		repl = Adopt[P, TR](v)
	}
	p.MoveFrom(&repl)
}

// Clear drops p's reference, disposing of the object if it was the last
// one, and leaves p empty. Clearing an empty handle is a no-op. Clear is
// how an owning handle ends its life.
func (p *Ptr[P, TR]) Clear() {
	if !p.owning {
		return
	}
	var tr TR
	tr.Decrement(p.v)
	*p = Ptr[P, TR]{}
}

// Release returns the stored value without decrementing its count and
// leaves p empty. The caller unconditionally owns one reference and must
// account for it. Releasing an empty handle returns the zero value.
func (p *Ptr[P, TR]) Release() P {
	v := p.v
	*p = Ptr[P, TR]{}
	return v
}

// Swap exchanges the stored values of p and other. No counts change: each
// count stays attached to whichever object its handle now refers to.
func (p *Ptr[P, TR]) Swap(other *Ptr[P, TR]) {
	*p, *other = *other, *p
}

// isNilValue reports whether v, an element value of a pointer or interface
// type, holds nothing to own.
func isNilValue[P any](v P) bool {
	boxed := any(v)
	if boxed == nil {
		return true
	}
	rv := reflect.ValueOf(boxed)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
