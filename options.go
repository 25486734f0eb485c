package chanselect

// config holds the resolved construction parameters for a [Channel].
type config struct {
	capacity     int // meaningful only when !unbounded
	unbounded    bool
	forgetOldest bool
	allocSite    string
}

// --- Channel Options ---

// Option configures a [Channel] at construction time.
type Option interface {
	applyChannel(*config) error
}

type optionFunc func(*config) error

func (f optionFunc) applyChannel(c *config) error { return f(c) }

// WithCapacity sets a fixed, positive buffer capacity. Capacity 0
// (the default) makes the channel a rendezvous: sends and receives
// pair up directly, with no buffering. WithCapacity and
// [WithUnbounded] are mutually exclusive.
func WithCapacity(n int) Option {
	return optionFunc(func(c *config) error {
		if n < 0 {
			return configErrorf("capacity must be >= 0, got %d", n)
		}
		if c.unbounded {
			return configErrorf("WithCapacity conflicts with WithUnbounded")
		}
		c.capacity = n
		return nil
	})
}

// WithUnbounded makes the channel's buffer grow without limit. Writes
// on an unbounded channel never block or fail. Mutually exclusive with
// [WithCapacity] and [WithForgetOldest].
func WithUnbounded() Option {
	return optionFunc(func(c *config) error {
		if c.forgetOldest {
			return configErrorf("WithUnbounded conflicts with WithForgetOldest")
		}
		if c.capacity != 0 {
			return configErrorf("WithUnbounded conflicts with WithCapacity")
		}
		c.unbounded = true
		return nil
	})
}

// WithForgetOldest switches the channel to the forget-oldest
// discipline: once the buffer is full, a write silently drops the
// oldest buffered value to make room rather than blocking. Writes on a
// forget-oldest channel never park, so the channel has no writer
// queue. Requires a capacity of at least 1 (set via [WithCapacity]);
// mutually exclusive with [WithUnbounded].
func WithForgetOldest() Option {
	return optionFunc(func(c *config) error {
		if c.unbounded {
			return configErrorf("WithForgetOldest conflicts with WithUnbounded")
		}
		c.forgetOldest = true
		return nil
	})
}

// WithAllocSite tags a channel with a caller-supplied label used by
// the optional allocation-trace telemetry (see [EnableAllocTracing])
// to attribute live shared states to a call site without relying on
// runtime.Caller on every construction.
func WithAllocSite(site string) Option {
	return optionFunc(func(c *config) error {
		c.allocSite = site
		return nil
	})
}

// resolveConfig applies opts over the zero-value defaults (capacity 0,
// block discipline) and validates the result.
func resolveConfig(opts []Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyChannel(c); err != nil {
			return nil, err
		}
	}
	if c.forgetOldest && !c.unbounded && c.capacity == 0 {
		return nil, configErrorf("forget-oldest requires a capacity of at least 1, got 0")
	}
	return c, nil
}
