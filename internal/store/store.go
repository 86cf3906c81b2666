// Package store holds the list of items and notifies views when it changes.
package store

import (
	"slices"

	"github.com/dshills/fluxlist/internal/action"
	"github.com/dshills/fluxlist/internal/emitter"
	"github.com/dshills/fluxlist/internal/item"
	"github.com/dshills/fluxlist/internal/logging"
)

// ListStore is the single source of truth for the item list.
//
// Only Handle, registered with the dispatcher, should call AddItem and
// EmitChange. Views read through GetAll and listen through Subscribe.
type ListStore struct {
	items   []item.Item
	ids     map[string]struct{}
	changes *emitter.Emitter
	logger  *logging.Logger
}

// New returns an empty store.
func New(logger *logging.Logger) *ListStore {
	if logger == nil {
		logger = logging.Null()
	}
	return &ListStore{
		ids:     make(map[string]struct{}),
		changes: emitter.New(),
		logger:  logger.WithComponent("store"),
	}
}

// GetAll returns the items in insertion order. The slice is a copy.
func (s *ListStore) GetAll() []item.Item {
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *ListStore) Len() int {
	return len(s.items)
}

// Has reports whether an item with id is stored.
func (s *ListStore) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// AddItem appends it and reports whether it was added. An item whose ID is
// already stored is rejected. It does not notify listeners.
func (s *ListStore) AddItem(it item.Item) bool {
	if s.Has(it.ID) {
		return false
	}
	s.ids[it.ID] = struct{}{}
	s.items = append(s.items, it)
	return true
}

// EmitChange notifies every listener, in subscription order.
func (s *ListStore) EmitChange() {
	s.changes.Emit()
}

// Subscribe registers l to be called after each change.
func (s *ListStore) Subscribe(l emitter.Listener) emitter.Subscription {
	return s.changes.Subscribe(l)
}

// Unsubscribe removes a registration. Unknown subscriptions are ignored.
func (s *ListStore) Unsubscribe(sub emitter.Subscription) {
	s.changes.Unsubscribe(sub)
}

// Listeners returns the number of registered listeners.
func (s *ListStore) Listeners() int {
	return s.changes.Len()
}

// Handle applies a dispatched action.
func (s *ListStore) Handle(a action.Action) {
	switch a := a.(type) {
	case action.AddNewItem:
		if !s.AddItem(a.Text) {
			s.logger.WithField("id", a.Text.ID).Warn("ignoring item with duplicate id")
			return
		}
		s.logger.Debug("added item %s", a.Text)
		s.EmitChange()
	case action.Unknown:
		s.logger.WithField("actionType", a.Kind).Debug("ignoring unknown action")
	default:
		s.logger.WithField("actionType", a.Type()).Debug("no branch for action")
	}
}
