package pool

import (
	"github.com/peterlauro/smart-ptrs/digest"
	"github.com/peterlauro/smart-ptrs/retainptr"
)

// BufferPtr is a retain pointer to a pooled Buffer.
type BufferPtr = retainptr.Ptr[*Buffer, retainptr.DefaultTraits[Buffer, *Buffer]]

// Buffer is a pooled, reference-counted byte buffer. The buffer owns its
// backing slice exclusively; sharing happens through retain pointers to
// the Buffer, and the slice returns to the pool when the last pointer
// drops it.
type Buffer struct {
	retainptr.AtomicCount

	data []byte
	p    *BucketizedBufferPool
}

// NewBuffer gets a buffer of at least the given capacity from the pool and
// returns the adopting retain pointer that owns it.
func NewBuffer(p *BucketizedBufferPool, capacity int) BufferPtr {
	b := &Buffer{
		AtomicCount: retainptr.NewAtomicCount(),
		data:        p.Get(capacity),
		p:           p,
	}
	return retainptr.Own(b)
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes written to the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Append appends data to the buffer, growing through the pool when the
// backing slice runs out of capacity.
func (b *Buffer) Append(data ...byte) {
	if len(b.data)+len(data) <= cap(b.data) {
		b.data = append(b.data, data...)
		return
	}
	grown := b.p.Get(2 * (len(b.data) + len(data)))
	grown = append(grown[:0], b.data...)
	grown = append(grown, data...)
	// The backing slice is exclusively owned, so the old one can return
	// to the pool right away.
	b.p.Put(b.data)
	b.data = grown
}

// Checksum returns the adler32 checksum of the buffer contents.
func (b *Buffer) Checksum() uint32 {
	return digest.Checksum(b.data)
}

// Dispose returns the backing slice to the pool. It is invoked by the
// retain pointer dropping the last reference.
func (b *Buffer) Dispose() {
	b.p.Put(b.data)
	b.data = nil
}
