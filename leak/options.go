package leak

import (
	"github.com/m3db/m3x/clock"
	"github.com/m3db/m3x/instrument"
)

// RegistryOptions provide a set of options for the leak registry.
type RegistryOptions struct {
	clockOpts      clock.Options
	instrumentOpts instrument.Options
}

// NewRegistryOptions create a new set of registry options.
func NewRegistryOptions() *RegistryOptions {
	return &RegistryOptions{
		clockOpts:      clock.NewOptions(),
		instrumentOpts: instrument.NewOptions(),
	}
}

// SetClockOptions sets the clock options.
func (o *RegistryOptions) SetClockOptions(v clock.Options) *RegistryOptions {
	opts := *o
	opts.clockOpts = v
	return &opts
}

// ClockOptions returns the clock options.
func (o *RegistryOptions) ClockOptions() clock.Options {
	return o.clockOpts
}

// SetInstrumentOptions sets the instrument options.
func (o *RegistryOptions) SetInstrumentOptions(v instrument.Options) *RegistryOptions {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *RegistryOptions) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}
