// Package view renders the item list with a "New Item" button and turns
// button presses into actions.
//
// A ListView reads the store only while rendering and never writes to it.
// Presses go through the action creator; the store's change notification
// brings the view back to render the new state.
package view

import (
	"errors"
	"fmt"

	"github.com/dshills/fluxlist/internal/backend"
	"github.com/dshills/fluxlist/internal/backend/core"
	"github.com/dshills/fluxlist/internal/emitter"
	"github.com/dshills/fluxlist/internal/item"
	"github.com/dshills/fluxlist/internal/logging"
)

// View errors.
var (
	// ErrUnmounted indicates the view was unmounted and cannot be used again.
	ErrUnmounted = errors.New("view: unmounted")

	// ErrNotMounted indicates an interaction before Mount.
	ErrNotMounted = errors.New("view: not mounted")
)

// State is the lifecycle state of a view.
type State int

const (
	// StateCreated is a constructed view that has not been mounted.
	StateCreated State = iota
	// StateMounted views are subscribed and reflect the store.
	StateMounted
	// StateUnmounted views are unsubscribed and inert. This state is final.
	StateUnmounted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateMounted:
		return "mounted"
	case StateUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// Source is the read side of the store.
type Source interface {
	GetAll() []item.Item
	Subscribe(l emitter.Listener) emitter.Subscription
	Unsubscribe(sub emitter.Subscription)
}

// Intents is the action creator surface the view uses.
type Intents interface {
	AddNamed(name string)
}

// Options configures the text a view shows.
type Options struct {
	Title       string
	ButtonLabel string
	// NewItemName is the name given to items created by the button.
	NewItemName string
}

// DefaultOptions returns the stock labels.
func DefaultOptions() Options {
	return Options{
		Title:       "Items",
		ButtonLabel: "New Item",
		NewItemName: "Marco",
	}
}

// Entry is one rendered list row. Key is the item ID and stays stable
// across renders.
type Entry struct {
	Key   string
	Label string
}

// ListView shows every item in the store above a button.
type ListView struct {
	source  Source
	intents Intents
	screen  backend.Backend
	opts    Options
	logger  *logging.Logger

	state   State
	sub     emitter.Subscription
	button  core.ScreenRect
	renders int
}

// New creates an unmounted view. screen may be nil, in which case Render
// only counts.
func New(source Source, intents Intents, screen backend.Backend, opts Options, logger *logging.Logger) *ListView {
	defaults := DefaultOptions()
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.ButtonLabel == "" {
		opts.ButtonLabel = defaults.ButtonLabel
	}
	if opts.NewItemName == "" {
		opts.NewItemName = defaults.NewItemName
	}
	if logger == nil {
		logger = logging.Null()
	}
	return &ListView{
		source:  source,
		intents: intents,
		screen:  screen,
		opts:    opts,
		logger:  logger.WithComponent("view"),
	}
}

// State returns the lifecycle state.
func (v *ListView) State() State {
	return v.state
}

// Mount subscribes to store changes and draws the first frame. Mounting a
// mounted view does nothing.
func (v *ListView) Mount() error {
	switch v.state {
	case StateMounted:
		return nil
	case StateUnmounted:
		return ErrUnmounted
	}
	v.sub = v.source.Subscribe(v.listChanged)
	v.state = StateMounted
	v.logger.Debug("mounted")
	v.Render()
	return nil
}

// Unmount releases the store subscription. The view cannot be mounted again.
func (v *ListView) Unmount() {
	if v.state == StateMounted {
		v.source.Unsubscribe(v.sub)
		v.sub = emitter.Subscription{}
		v.logger.Debug("unmounted")
	}
	v.state = StateUnmounted
}

// listChanged is the store listener.
func (v *ListView) listChanged() {
	v.Render()
}

// Click handles a press of the button.
func (v *ListView) Click() error {
	switch v.state {
	case StateCreated:
		return ErrNotMounted
	case StateUnmounted:
		return ErrUnmounted
	}
	v.intents.AddNamed(v.opts.NewItemName)
	return nil
}

// Entries projects the store into list rows, in store order.
func (v *ListView) Entries() []Entry {
	items := v.source.GetAll()
	entries := make([]Entry, len(items))
	for i, it := range items {
		entries[i] = Entry{Key: it.ID, Label: it.Name}
	}
	return entries
}

// Renders returns how many frames have been drawn.
func (v *ListView) Renders() int {
	return v.renders
}

// HitButton reports whether (x, y) lies on the button drawn by the last
// render.
func (v *ListView) HitButton(x, y int) bool {
	return v.button.Contains(x, y)
}

// Layout rows.
const (
	titleRow     = 0
	firstItemRow = 2
	bullet       = "• "
)

// Render draws the current store contents.
func (v *ListView) Render() {
	if v.state != StateMounted {
		return
	}
	v.renders++
	if v.screen == nil {
		return
	}

	width, height := v.screen.Size()
	entries := v.Entries()

	v.screen.Clear()
	v.screen.HideCursor()

	title := fmt.Sprintf("%s (%d)", v.opts.Title, len(entries))
	drawText(v.screen, 0, titleRow, title, core.DefaultStyle().Bold(), width)

	// Rows between the list and the button: one blank, one button.
	room := max(height-firstItemRow-2, 0)
	shown := entries
	row := firstItemRow
	if len(entries) > room {
		hidden := len(entries) - room + 1
		if room == 0 {
			hidden = len(entries)
		}
		shown = entries[hidden:]
		if room > 0 {
			drawText(v.screen, 0, row, fmt.Sprintf("… %d earlier", hidden), core.DefaultStyle().Dim(), width)
			row++
		}
	}
	for _, e := range shown {
		drawText(v.screen, 0, row, bullet+e.Label, core.DefaultStyle(), width)
		row++
	}

	buttonRow := row + 1
	if len(entries) == 0 {
		buttonRow = firstItemRow
	}
	label := "[ " + v.opts.ButtonLabel + " ]"
	w := drawText(v.screen, 0, buttonRow, label, core.DefaultStyle().Reverse(), width)
	v.button = core.ScreenRect{Top: buttonRow, Left: 0, Bottom: buttonRow + 1, Right: w}
	if buttonRow >= height {
		v.button = core.ScreenRect{}
	}

	v.screen.Show()
}
