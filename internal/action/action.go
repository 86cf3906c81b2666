// Package action defines the messages that flow from views to the dispatcher
// and the creators that build them.
//
// Action is a closed set: only types in this package implement it, so a type
// switch over the variants below is exhaustive apart from the default case.
package action

import "github.com/dshills/fluxlist/internal/item"

// Type is the discriminator carried by every action message.
type Type string

// Known discriminators.
const (
	TypeAddNewItem Type = "ADD_NEW_ITEM"
)

// Action is an immutable tagged message describing one user intent.
type Action interface {
	// Type returns the discriminator.
	Type() Type

	sealed()
}

// AddNewItem asks the store to append Text to the list.
type AddNewItem struct {
	Text item.Item
}

// Type returns TypeAddNewItem.
func (AddNewItem) Type() Type { return TypeAddNewItem }
func (AddNewItem) sealed()    {}

// Unknown carries a discriminator this build does not recognise, for
// example one decoded from a replay file written by a newer version.
// Handlers treat it as a no-op.
type Unknown struct {
	Kind Type
}

// Type returns the unrecognised discriminator.
func (u Unknown) Type() Type { return u.Kind }
func (Unknown) sealed()      {}
