package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNilHandler indicates Register was called with a nil handler.
	ErrNilHandler = errors.New("dispatcher: nil handler")

	// ErrHandlerRegistered indicates a handler is already registered.
	ErrHandlerRegistered = errors.New("dispatcher: handler already registered")
)
