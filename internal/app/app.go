// Package app wires the store, dispatcher, action creator and view together
// and runs the terminal event loop.
package app

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/fluxlist/internal/action"
	"github.com/dshills/fluxlist/internal/backend"
	"github.com/dshills/fluxlist/internal/config"
	"github.com/dshills/fluxlist/internal/dispatcher"
	"github.com/dshills/fluxlist/internal/item"
	"github.com/dshills/fluxlist/internal/logging"
	"github.com/dshills/fluxlist/internal/store"
	"github.com/dshills/fluxlist/internal/view"
)

// Application owns the one store and one dispatcher of a process and hands
// them to the view.
type Application struct {
	mu sync.Mutex

	cfg    config.Config
	logger *logging.Logger

	store      *store.ListStore
	dispatcher *dispatcher.Dispatcher
	creator    *action.Creator

	backend backend.Backend
	view    *view.ListView

	// leftDown is the left mouse button state seen by the event loop.
	leftDown bool

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config is the resolved configuration. The zero value selects
	// config.Default().
	Config config.Config

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger
}

// New builds the component graph and registers the store with the
// dispatcher.
func New(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &OperationError{Op: "init", Target: "config", Err: err}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Null()
	}

	ids, err := item.NewIDGenerator(cfg.Item.IDStrategy)
	if err != nil {
		return nil, &OperationError{Op: "init", Target: "ids", Err: err}
	}

	app := &Application{
		cfg:    cfg,
		logger: logger,
		store:  store.New(logger),
	}
	app.dispatcher = dispatcher.New(dispatcherConfig(cfg), logger)
	if err := app.dispatcher.Register(app.store.Handle); err != nil {
		return nil, &OperationError{Op: "init", Target: "dispatcher", Err: err}
	}
	app.creator = action.NewCreator(app.dispatcher, ids)

	return app, nil
}

func dispatcherConfig(cfg config.Config) dispatcher.Config {
	dc := dispatcher.DefaultConfig()
	if cfg.Dispatcher.Metrics {
		dc = dc.WithMetrics()
	}
	if cfg.Dispatcher.Trace {
		dc = dc.WithTrace()
	}
	return dc
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run mounts the view and processes terminal events until the user quits
// or Shutdown is called. A normal exit returns ErrQuit.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()

	if b == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &OperationError{Op: "init", Target: "backend", Err: err}
	}
	defer b.Shutdown()

	app.leftDown = false
	app.view = view.New(app.store, app.creator, b, view.Options{
		Title:       app.cfg.UI.Title,
		ButtonLabel: app.cfg.UI.ButtonLabel,
		NewItemName: app.cfg.Item.DefaultName,
	}, app.logger)
	if err := app.view.Mount(); err != nil {
		return &OperationError{Op: "init", Target: "view", Err: err}
	}
	defer app.view.Unmount()

	app.logger.Info("running")
	defer app.logMetrics()

	return app.eventLoop(b)
}

// Shutdown asks a running event loop to stop. It is safe to call from any
// goroutine, and does nothing when the application is not running.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	b.PostEvent(backend.Event{Type: backend.EventInterrupt})
}

// IsRunning returns true while Run is processing events.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Store returns the application's store.
func (app *Application) Store() *store.ListStore {
	return app.store
}

// Dispatcher returns the application's dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Creator returns the action creator bound to the dispatcher.
func (app *Application) Creator() *action.Creator {
	return app.creator
}

// View returns the mounted view, or nil before Run.
func (app *Application) View() *view.ListView {
	return app.view
}

func (app *Application) logMetrics() {
	m := app.dispatcher.Metrics()
	if m == nil {
		return
	}
	for _, tm := range m.Snapshot() {
		app.logger.WithComponent("metrics").Info("%s: %d dispatches, max %s, %d panics",
			tm.Type, tm.DispatchCount, tm.MaxDuration, tm.PanicCount)
	}
}
