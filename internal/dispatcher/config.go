package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables dispatch timing and counts.
	EnableMetrics bool

	// RecoverFromPanic logs and swallows a handler panic instead of
	// propagating it to the caller.
	RecoverFromPanic bool

	// TraceActions logs every dispatched action at debug level.
	TraceActions bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
		TraceActions:     false,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithTrace returns a copy of the config with action tracing enabled.
func (c Config) WithTrace() Config {
	c.TraceActions = true
	return c
}
