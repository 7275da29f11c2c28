package pool

import (
	"fmt"
	"sort"

	"github.com/uber-go/tally"
)

// BufferBucket specifies a bucket.
type BufferBucket struct {
	// Capacity is the capacity of each buffer in the bucket.
	Capacity int

	// Count is the number of fixed buffers in the bucket.
	Count int

	// Options is an optional override to specify options to use for a bucket,
	// specify nil to use the options specified to the bucketized pool
	// constructor for this bucket.
	Options *BufferPoolOptions
}

// bufferBucketByCapacity is a sortable collection of pool buckets.
type bufferBucketByCapacity []BufferBucket

func (x bufferBucketByCapacity) Len() int {
	return len(x)
}

func (x bufferBucketByCapacity) Swap(i, j int) {
	x[i], x[j] = x[j], x[i]
}

func (x bufferBucketByCapacity) Less(i, j int) bool {
	return x[i].Capacity < x[j].Capacity
}

type bucketPool struct {
	capacity int
	pool     *BufferPool
}

// BucketizedBufferPool is a bucketized buffer pool.
type BucketizedBufferPool struct {
	sizesAsc          []BufferBucket
	buckets           []bucketPool
	maxBucketCapacity int
	opts              *BufferPoolOptions
	maxAlloc          tally.Counter
}

// NewBucketizedBufferPool creates a bucketized buffer pool.
func NewBucketizedBufferPool(sizes []BufferBucket, opts *BufferPoolOptions) *BucketizedBufferPool {
	if opts == nil {
		opts = NewBufferPoolOptions()
	}

	sizesAsc := make([]BufferBucket, len(sizes))
	copy(sizesAsc, sizes)
	sort.Sort(bufferBucketByCapacity(sizesAsc))

	var maxBucketCapacity int
	if len(sizesAsc) != 0 {
		maxBucketCapacity = sizesAsc[len(sizesAsc)-1].Capacity
	}

	return &BucketizedBufferPool{
		opts:              opts,
		sizesAsc:          sizesAsc,
		maxBucketCapacity: maxBucketCapacity,
		maxAlloc:          opts.InstrumentOptions().MetricsScope().Counter("alloc-max"),
	}
}

// Init initializes the bucketized pool.
func (p *BucketizedBufferPool) Init() {
	buckets := make([]bucketPool, len(p.sizesAsc))
	for i := range p.sizesAsc {
		size := p.sizesAsc[i].Count
		capacity := p.sizesAsc[i].Capacity

		opts := p.opts
		if perBucketOpts := p.sizesAsc[i].Options; perBucketOpts != nil {
			opts = perBucketOpts
		}

		opts = opts.SetSize(size)
		iOpts := opts.InstrumentOptions()
		opts = opts.SetInstrumentOptions(iOpts.SetMetricsScope(iOpts.MetricsScope().Tagged(map[string]string{
			"bucket-capacity": fmt.Sprintf("%d", capacity),
		})))

		buckets[i].capacity = capacity
		buckets[i].pool = NewBufferPool(opts)
		buckets[i].pool.Init(func() []byte {
			return make([]byte, 0, capacity)
		})
	}
	p.buckets = buckets
}

// Get gets a zero-length buffer with at least the given capacity from the
// pool. Capacities above the largest bucket are allocated directly.
func (p *BucketizedBufferPool) Get(capacity int) []byte {
	if capacity > p.maxBucketCapacity {
		p.maxAlloc.Inc(1)
		return make([]byte, 0, capacity)
	}
	for i := range p.buckets {
		if p.buckets[i].capacity >= capacity {
			return p.buckets[i].pool.Get()
		}
	}
	return make([]byte, 0, capacity)
}

// Put returns a buffer to the pool, bucketed by its capacity. Buffers
// larger than the largest bucket are dropped.
func (p *BucketizedBufferPool) Put(b []byte) {
	capacity := cap(b)
	if capacity > p.maxBucketCapacity {
		return
	}

	b = b[:0]
	for i := len(p.buckets) - 1; i >= 0; i-- {
		if capacity >= p.buckets[i].capacity {
			p.buckets[i].pool.Put(b)
			return
		}
	}
}
