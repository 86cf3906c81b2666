// Package item defines the list entries held by the store and how their
// identifiers are assigned.
package item

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ErrUnknownIDStrategy is returned for an unrecognised identifier strategy.
var ErrUnknownIDStrategy = errors.New("item: unknown id strategy")

// Identifier strategies accepted by NewIDGenerator.
const (
	StrategyCounter = "counter"
	StrategyUUID    = "uuid"
)

// Item is a single list entry. ID is unique within a store.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// String returns "name#id".
func (it Item) String() string {
	return it.Name + "#" + it.ID
}

// IDGenerator hands out identifiers that are unique for its lifetime.
type IDGenerator interface {
	Next() string
}

// Observer is implemented by generators that must avoid identifiers
// assigned elsewhere.
type Observer interface {
	Observe(id string)
}

// CounterIDs issues "1", "2", "3", ...
// It is not safe for concurrent use; generators live on the dispatch path.
type CounterIDs struct {
	last uint64
}

// NewCounterIDs returns a counter starting at 1.
func NewCounterIDs() *CounterIDs {
	return &CounterIDs{}
}

// Next returns the next counter value.
func (c *CounterIDs) Next() string {
	c.last++
	return strconv.FormatUint(c.last, 10)
}

// Observe records an identifier assigned by someone else. A numeric id at
// or past the counter moves the counter so Next never repeats it.
func (c *CounterIDs) Observe(id string) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || strconv.FormatUint(n, 10) != id {
		return
	}
	if n > c.last {
		c.last = n
	}
}

// UUIDs issues time-ordered UUIDv7 strings.
type UUIDs struct{}

// Next returns a new UUIDv7, falling back to a random v4 if the clock
// source fails.
func (UUIDs) Next() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewIDGenerator returns the generator named by strategy. An empty strategy
// selects the counter.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", StrategyCounter:
		return NewCounterIDs(), nil
	case StrategyUUID:
		return UUIDs{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDStrategy, strategy)
	}
}
