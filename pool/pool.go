// Package pool provides pooled byte buffers managed through retain
// pointers: a buffer returns to its pool exactly when the last handle
// referencing it is dropped.
package pool

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/uber-go/tally"
)

type bufferPoolMetrics struct {
	free       tally.Gauge
	total      tally.Gauge
	getOnEmpty tally.Counter
	putOnFull  tally.Counter
}

func newBufferPoolMetrics(m tally.Scope) bufferPoolMetrics {
	return bufferPoolMetrics{
		free:       m.Gauge("free"),
		total:      m.Gauge("total"),
		getOnEmpty: m.Counter("get-on-empty"),
		putOnFull:  m.Counter("put-on-full"),
	}
}

// BufferPool is a pool of byte slices of a single capacity.
type BufferPool struct {
	buffers             chan []byte
	alloc               func() []byte
	size                int
	refillLowWatermark  int
	refillHighWatermark int
	filling             int32
	initialized         int32
	dice                int32
	metrics             bufferPoolMetrics
}

// NewBufferPool creates a new pool.
func NewBufferPool(opts *BufferPoolOptions) *BufferPool {
	if opts == nil {
		opts = NewBufferPoolOptions()
	}

	p := &BufferPool{
		buffers: make(chan []byte, opts.Size()),
		size:    opts.Size(),
		refillLowWatermark: int(math.Ceil(
			opts.RefillLowWatermark() * float64(opts.Size()))),
		refillHighWatermark: int(math.Ceil(
			opts.RefillHighWatermark() * float64(opts.Size()))),
		metrics: newBufferPoolMetrics(opts.InstrumentOptions().MetricsScope()),
	}

	p.setGauges()

	return p
}

// Init initializes the pool.
func (p *BufferPool) Init(alloc func() []byte) {
	if !atomic.CompareAndSwapInt32(&p.initialized, 0, 1) {
		panic(errors.New("pool is already initialized"))
	}

	p.alloc = alloc

	for i := 0; i < cap(p.buffers); i++ {
		p.buffers <- p.alloc()
	}

	p.setGauges()
}

// Get gets a buffer from the pool.
func (p *BufferPool) Get() []byte {
	if atomic.LoadInt32(&p.initialized) != 1 {
		panic(errors.New("get before pool is initialized"))
	}

	var b []byte
	select {
	case b = <-p.buffers:
	default:
		b = p.alloc()
		p.metrics.getOnEmpty.Inc(1)
	}

	p.trySetGauges()

	if p.refillLowWatermark > 0 && len(p.buffers) <= p.refillLowWatermark {
		p.tryFill()
	}

	return b
}

// Put returns a buffer to the pool.
func (p *BufferPool) Put(b []byte) {
	if atomic.LoadInt32(&p.initialized) != 1 {
		panic(errors.New("put before pool is initialized"))
	}

	select {
	case p.buffers <- b:
	default:
		p.metrics.putOnFull.Inc(1)
	}

	p.trySetGauges()
}

func (p *BufferPool) trySetGauges() {
	if atomic.AddInt32(&p.dice, 1)%100 == 0 {
		p.setGauges()
	}
}

func (p *BufferPool) setGauges() {
	p.metrics.free.Update(float64(len(p.buffers)))
	p.metrics.total.Update(float64(p.size))
}

func (p *BufferPool) tryFill() {
	if !atomic.CompareAndSwapInt32(&p.filling, 0, 1) {
		return
	}

	go func() {
		defer atomic.StoreInt32(&p.filling, 0)

		for len(p.buffers) < p.refillHighWatermark {
			select {
			case p.buffers <- p.alloc():
			default:
				return
			}
		}
	}()
}
