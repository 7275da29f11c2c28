package pool

import (
	"github.com/m3db/m3x/instrument"
)

const (
	defaultPoolSize = 4096
)

// BufferPoolOptions provide a set of options for the buffer pool.
type BufferPoolOptions struct {
	instrumentOpts      instrument.Options
	size                int
	refillLowWatermark  float64
	refillHighWatermark float64
}

// NewBufferPoolOptions create a new set of buffer pool options.
func NewBufferPoolOptions() *BufferPoolOptions {
	return &BufferPoolOptions{
		instrumentOpts: instrument.NewOptions(),
		size:           defaultPoolSize,
	}
}

// SetInstrumentOptions sets the instrument options.
func (o *BufferPoolOptions) SetInstrumentOptions(v instrument.Options) *BufferPoolOptions {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *BufferPoolOptions) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

// SetSize sets the pool size.
func (o *BufferPoolOptions) SetSize(v int) *BufferPoolOptions {
	opts := *o
	opts.size = v
	return &opts
}

// Size returns pool size.
func (o *BufferPoolOptions) Size() int { return o.size }

// SetRefillLowWatermark sets the low watermark for refilling the pool.
func (o *BufferPoolOptions) SetRefillLowWatermark(v float64) *BufferPoolOptions {
	opts := *o
	opts.refillLowWatermark = v
	return &opts
}

// RefillLowWatermark returns the low watermark for refilling the pool.
func (o *BufferPoolOptions) RefillLowWatermark() float64 { return o.refillLowWatermark }

// SetRefillHighWatermark sets the high watermark for stop refilling the pool.
func (o *BufferPoolOptions) SetRefillHighWatermark(v float64) *BufferPoolOptions {
	opts := *o
	opts.refillHighWatermark = v
	return &opts
}

// RefillHighWatermark returns the high watermark for stop refilling the pool.
func (o *BufferPoolOptions) RefillHighWatermark() float64 { return o.refillHighWatermark }
