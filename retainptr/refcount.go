package retainptr

import (
	"fmt"
	"sync/atomic"
)

// counted is the interface the counter mixins expose to the dispatchers in
// this package. Its methods are unexported on purpose: an owned type opts
// into counting by embedding PlainCount or AtomicCount, and nothing outside
// this package can manipulate the count directly.
type counted interface {
	incRef()

	// decRef returns the count after the decrement. The caller that
	// observes zero owns disposal.
	decRef() int32

	refCount() int32
}

// PlainCount is a counter mixin for owned types whose count manipulations
// are externally serialized. Concurrent use from multiple goroutines is
// undefined behavior; use AtomicCount instead.
type PlainCount struct {
	n int32
}

// NewPlainCount returns a counter with an initial refcount of 1.
func NewPlainCount() PlainCount {
	return PlainCount{n: 1}
}

func (c *PlainCount) incRef() {
	c.n++
	if c.n > 0 {
		return
	}
	panic(fmt.Errorf("invalid ref count %d", c.n))
}

func (c *PlainCount) decRef() int32 {
	c.n--
	if c.n >= 0 {
		return c.n
	}
	panic(fmt.Errorf("invalid ref count %d", c.n))
}

func (c *PlainCount) refCount() int32 { return c.n }

// AtomicCount is a lock-free counter mixin. Multiple goroutines may clone
// and clear their own handles to the same owned object concurrently;
// exactly one of them observes the final decrement and disposes the object,
// and it observes all writes made while other owners were still alive.
type AtomicCount struct {
	n int32
}

// NewAtomicCount returns a counter with an initial refcount of 1.
func NewAtomicCount() AtomicCount {
	return AtomicCount{n: 1}
}

func (c *AtomicCount) incRef() {
	n := atomic.AddInt32(&c.n, 1)
	if n > 0 {
		return
	}
	panic(fmt.Errorf("invalid ref count %d", n))
}

func (c *AtomicCount) decRef() int32 {
	n := atomic.AddInt32(&c.n, -1)
	if n >= 0 {
		return n
	}
	panic(fmt.Errorf("invalid ref count %d", n))
}

func (c *AtomicCount) refCount() int32 { return atomic.LoadInt32(&c.n) }
