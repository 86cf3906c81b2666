package action

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/dshills/fluxlist/internal/item"
)

// ErrInvalidAction is returned when a message has no discriminator or cannot
// be parsed.
var ErrInvalidAction = errors.New("action: invalid action message")

// message is the wire shape: {"actionType": "...", "text": {...}}.
type message struct {
	ActionType Type       `json:"actionType"`
	Text       *item.Item `json:"text,omitempty"`
}

// Encode renders a in its wire shape.
func Encode(a Action) ([]byte, error) {
	msg := message{ActionType: a.Type()}
	if add, ok := a.(AddNewItem); ok {
		text := add.Text
		msg.Text = &text
	}
	return jsoniter.ConfigFastest.Marshal(msg)
}

// Decode parses one wire message. An unrecognised actionType decodes to
// Unknown rather than failing, and its payload is not inspected.
func Decode(data []byte) (Action, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidAction)
	}
	msg := gjson.ParseBytes(data)
	if !msg.IsObject() {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidAction)
	}

	kind := msg.Get("actionType")
	if kind.Type != gjson.String || kind.Str == "" {
		return nil, fmt.Errorf("%w: missing actionType", ErrInvalidAction)
	}

	switch t := Type(kind.Str); t {
	case TypeAddNewItem:
		text := msg.Get("text")
		if !text.IsObject() {
			return nil, fmt.Errorf("%w: %s without text", ErrInvalidAction, t)
		}
		var it item.Item
		if err := jsoniter.ConfigFastest.UnmarshalFromString(text.Raw, &it); err != nil {
			return nil, fmt.Errorf("%w: %s text: %v", ErrInvalidAction, t, err)
		}
		return AddNewItem{Text: it}, nil
	default:
		return Unknown{Kind: t}, nil
	}
}
