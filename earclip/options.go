package earclip

// Tracer observes pipeline milestones without the core depending on any
// logging backend. stage names are dotted, e.g. "subdivision.split",
// "walk.done", "earclip.clip". args are loosely typed key/value pairs,
// mirroring the ad-hoc trace lines of the original implementation this
// package descends from. A nil Tracer (the default) costs a single nil
// check per call site and produces output identical to tracing being
// compiled out entirely.
type Tracer func(stage string, args ...any)

// Config holds the per-call options accepted by Triangulate, NormalizeRing,
// and EarClip. It is built fresh from Option values on every call and is
// never retained.
type Config struct {
	tracer           Tracer
	nonProgressLimit int
}

// Option configures a single pipeline call.
type Option func(*Config)

// WithTracer injects a Tracer that receives a call at each pipeline
// milestone. Passing nil disables tracing, the default behavior.
func WithTracer(t Tracer) Option {
	return func(c *Config) {
		c.tracer = t
	}
}

// WithNonProgressLimit overrides the ear clipper's non-progress guard: the
// number of consecutive cursor advances without a clip before the clipper
// gives up and returns whatever it has. The default is the current ring
// size, re-evaluated as the ring shrinks (see EarClip). n <= 0 restores the
// default.
func WithNonProgressLimit(n int) Option {
	return func(c *Config) {
		c.nonProgressLimit = n
	}
}

func newConfig(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Config) trace(stage string, args ...any) {
	if c.tracer != nil {
		c.tracer(stage, args...)
	}
}
