package retainptr

import "fmt"

// TakeAction disambiguates how a handle takes ownership of a raw value.
type TakeAction int

const (
	// AdoptRef takes ownership without incrementing the count. The
	// reference being taken over was already accounted for, e.g. the
	// initial count of a freshly constructed owned object.
	AdoptRef TakeAction = iota

	// RetainRef takes ownership of a new, additional reference by
	// incrementing the count.
	RetainRef
)

func (a TakeAction) String() string {
	switch a {
	case AdoptRef:
		return "adopt"
	case RetainRef:
		return "retain"
	default:
		return fmt.Sprintf("unknown TakeAction %d", int(a))
	}
}

// Traits is the minimum contract a counting strategy must satisfy for
// element type P. Implementations are bound to a Ptr as a type parameter
// and should be zero-sized structs: every call goes through the zero value
// of the traits type.
//
// Increment and Decrement are never called with a nil element; the handle
// guards every call site.
type Traits[P any] interface {
	// Increment records one additional reference to v.
	Increment(v P)

	// Decrement drops one reference to v, disposing of it when the last
	// reference is dropped.
	Decrement(v P)
}

// UseCounter is an optional traits capability. Traits that do not
// implement it make Ptr.UseCount report UseCountUnavailable.
type UseCounter[P any] interface {
	// UseCount returns the current reference count of v.
	UseCount(v P) int64
}

// ActionDefaulter is an optional traits capability declaring which
// TakeAction New applies when the call site does not choose one. Traits
// without it default to AdoptRef.
type ActionDefaulter interface {
	DefaultAction() TakeAction
}

// Disposer is the optional disposal hook of an owned type. DefaultTraits
// and DynamicTraits invoke it exactly once, on the decrement that drops
// the count from 1 to 0.
type Disposer interface {
	Dispose()
}

// CountedPtr constrains P to a pointer to an owned type embedding one of
// the counter mixins. A type argument lacking the mixin is rejected at
// compile time.
type CountedPtr[T any] interface {
	*T
	counted
}

// DefaultTraits drives the counter mixin embedded in T. It adopts by
// default: a freshly constructed owned object is born already referenced
// once.
type DefaultTraits[T any, P CountedPtr[T]] struct{}

// Increment increments the embedded count.
func (DefaultTraits[T, P]) Increment(v P) {
	v.incRef()
}

// Decrement decrements the embedded count and disposes of the object on
// the final release.
func (DefaultTraits[T, P]) Decrement(v P) {
	if v.decRef() > 0 {
		return
	}
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
	}
}

// UseCount returns the embedded count.
func (DefaultTraits[T, P]) UseCount(v P) int64 {
	return int64(v.refCount())
}

// DefaultAction returns AdoptRef.
func (DefaultTraits[T, P]) DefaultAction() TakeAction {
	return AdoptRef
}

// DynamicTraits drives the counter mixin of values held behind an
// interface type I. It is the strategy for handles whose element type is
// an interface: whether the dynamic type embeds the mixin is necessarily a
// runtime property, checked on first use and enforced with a panic naming
// the offending type.
type DynamicTraits[I any] struct{}

// Increment increments the embedded count of the dynamic value.
func (DynamicTraits[I]) Increment(v I) {
	mustCounted(v).incRef()
}

// Decrement decrements the embedded count of the dynamic value, disposing
// of it on the final release.
func (DynamicTraits[I]) Decrement(v I) {
	if mustCounted(v).decRef() > 0 {
		return
	}
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
	}
}

// UseCount returns the embedded count of the dynamic value.
func (DynamicTraits[I]) UseCount(v I) int64 {
	return int64(mustCounted(v).refCount())
}

// DefaultAction returns AdoptRef.
func (DynamicTraits[I]) DefaultAction() TakeAction {
	return AdoptRef
}

func mustCounted(v any) counted {
	c, ok := v.(counted)
	if !ok {
		panic(fmt.Errorf("%T does not embed a retainptr counter mixin", v))
	}
	return c
}

// defaultAction resolves the TakeAction a bare-value constructor applies
// for traits type TR, falling back to AdoptRef when the traits do not
// declare one.
func defaultAction[P any, TR Traits[P]]() TakeAction {
	var tr TR
	if ad, ok := any(tr).(ActionDefaulter); ok {
		return ad.DefaultAction()
	}
	return AdoptRef
}
