// Package leak provides an opt-in registry of live reference-counted
// objects for tests and debugging. An owned object registers itself at
// construction time and unregisters from its Dispose hook; whatever is
// still registered when Check runs was leaked by a handle that never gave
// up its reference.
package leak

import (
	"fmt"
	"sync"
	"time"

	"github.com/m3db/m3x/clock"
	xerrors "github.com/m3db/m3x/errors"
	"github.com/m3db/m3x/log"
	"github.com/pborman/uuid"
	"github.com/uber-go/tally"
)

type registryMetrics struct {
	registered   tally.Counter
	unregistered tally.Counter
	leaked       tally.Counter
}

func newRegistryMetrics(m tally.Scope) registryMetrics {
	return registryMetrics{
		registered:   m.Counter("registered"),
		unregistered: m.Counter("unregistered"),
		leaked:       m.Counter("leaked"),
	}
}

type entry struct {
	name         string
	registeredAt time.Time
}

// Registry tracks live counted objects.
type Registry struct {
	sync.Mutex

	nowFn   clock.NowFn
	logger  log.Logger
	metrics registryMetrics
	live    map[string]entry
}

// NewRegistry creates a new registry.
func NewRegistry(opts *RegistryOptions) *Registry {
	if opts == nil {
		opts = NewRegistryOptions()
	}
	return &Registry{
		nowFn:   opts.ClockOptions().NowFn(),
		logger:  opts.InstrumentOptions().Logger(),
		metrics: newRegistryMetrics(opts.InstrumentOptions().MetricsScope()),
		live:    make(map[string]entry),
	}
}

// Handle identifies one registration. Unregister it from the owned
// object's Dispose hook.
type Handle struct {
	r  *Registry
	id string
}

// Register records a live object under a descriptive name and returns the
// handle that unregisters it.
func (r *Registry) Register(name string) Handle {
	id := uuid.New()

	r.Lock()
	r.live[id] = entry{name: name, registeredAt: r.nowFn()}
	r.Unlock()

	r.metrics.registered.Inc(1)
	return Handle{r: r, id: id}
}

// Unregister removes the registration. Unregistering twice, or
// unregistering the zero Handle, is a no-op.
func (h Handle) Unregister() {
	if h.r == nil {
		return
	}

	h.r.Lock()
	_, ok := h.r.live[h.id]
	delete(h.r.live, h.id)
	h.r.Unlock()

	if ok {
		h.r.metrics.unregistered.Inc(1)
	}
}

// NumLive returns the number of currently registered objects.
func (r *Registry) NumLive() int {
	r.Lock()
	defer r.Unlock()
	return len(r.live)
}

// Check reports every object still registered, logging each survivor and
// returning an aggregate error, or nil when nothing leaked.
func (r *Registry) Check() error {
	r.Lock()
	survivors := make(map[string]entry, len(r.live))
	for id, e := range r.live {
		survivors[id] = e
	}
	r.Unlock()

	var multiErr xerrors.MultiError
	for id, e := range survivors {
		r.logger.Warnf("leaked reference-counted object %s registered at %v (id %s)", e.name, e.registeredAt, id)
		r.metrics.leaked.Inc(1)
		multiErr = multiErr.Add(fmt.Errorf("leaked object %s registered at %v (id %s)", e.name, e.registeredAt, id))
	}
	return multiErr.FinalError()
}
