package dispatcher

import (
	"runtime"
	"time"

	"github.com/tidwall/sjson"

	"github.com/dshills/fluxlist/internal/action"
	"github.com/dshills/fluxlist/internal/logging"
)

// Handler applies one action. It inspects the discriminator, mutates its
// store, and emits the store's change notification.
type Handler func(a action.Action)

// Dispatcher forwards actions to its registered handler.
// It is not safe for concurrent use; all dispatches happen on one goroutine.
type Dispatcher struct {
	handler Handler
	config  Config
	metrics *Metrics
	logger  *logging.Logger

	// seq numbers traced dispatches.
	seq uint64
}

// New creates a dispatcher with no handler.
func New(config Config, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Null()
	}
	d := &Dispatcher{
		config: config,
		logger: logger.WithComponent("dispatcher"),
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a dispatcher with DefaultConfig and no logging.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig(), nil)
}

// Register records the handler. Only one handler may be registered.
func (d *Dispatcher) Register(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	if d.handler != nil {
		return ErrHandlerRegistered
	}
	d.handler = h
	return nil
}

// Registered reports whether a handler has been registered.
func (d *Dispatcher) Registered() bool {
	return d.handler != nil
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch delivers a to the handler and returns once it has run.
func (d *Dispatcher) Dispatch(a action.Action) {
	if a == nil {
		d.logger.Warn("dispatch of nil action ignored")
		return
	}
	if d.handler == nil {
		d.logger.WithField("actionType", a.Type()).Warn("dispatch with no handler registered")
		return
	}

	if d.config.TraceActions && d.logger.Enabled(logging.LevelDebug) {
		d.trace(a)
	}

	start := time.Now()
	if d.config.RecoverFromPanic {
		d.executeWithRecovery(a)
	} else {
		d.handler(a)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(a.Type(), time.Since(start))
	}
}

func (d *Dispatcher) executeWithRecovery(a action.Action) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.logger.WithField("actionType", a.Type()).Error("handler panic: %v\n%s", r, stack[:n])
			if d.metrics != nil {
				d.metrics.RecordPanic(a.Type())
			}
		}
	}()

	d.handler(a)
}

func (d *Dispatcher) trace(a action.Action) {
	data, err := action.Encode(a)
	if err != nil {
		d.logger.Debug("dispatch %s (unencodable: %v)", a.Type(), err)
		return
	}
	d.seq++
	if tagged, err := sjson.SetBytes(data, "seq", d.seq); err == nil {
		data = tagged
	}
	d.logger.Debug("dispatch %s", data)
}
