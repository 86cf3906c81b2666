package action

import "github.com/dshills/fluxlist/internal/item"

// Dispatcher is the part of the dispatcher a creator needs.
type Dispatcher interface {
	Dispatch(a Action)
}

// Creator turns user intents into dispatched actions.
type Creator struct {
	dispatcher Dispatcher
	ids        item.IDGenerator
}

// NewCreator returns a creator dispatching through d. Items submitted without
// an ID get one from ids.
func NewCreator(d Dispatcher, ids item.IDGenerator) *Creator {
	if ids == nil {
		ids = item.NewCounterIDs()
	}
	return &Creator{dispatcher: d, ids: ids}
}

// Add dispatches an AddNewItem carrying it. An explicit ID is passed to
// the generator when it is an item.Observer so later IDs do not repeat it.
func (c *Creator) Add(it item.Item) {
	if it.ID == "" {
		it.ID = c.ids.Next()
	} else if obs, ok := c.ids.(item.Observer); ok {
		obs.Observe(it.ID)
	}
	c.dispatcher.Dispatch(AddNewItem{Text: it})
}

// AddNamed is Add for a fresh item called name.
func (c *Creator) AddNamed(name string) {
	c.Add(item.Item{Name: name})
}
