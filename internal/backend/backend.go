// Package backend abstracts the terminal the list view draws on.
package backend

import "github.com/dshills/fluxlist/internal/backend/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventInterrupt is posted from outside the event loop, for example by a
	// signal handler asking the loop to stop.
	EventInterrupt
)

// Event is a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Key is a keyboard key.
type Key int

// Keys the application reacts to. Everything else maps to KeyNone.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyCtrlL
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains mod.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// Backend draws cells and delivers input events.
type Backend interface {
	// Init prepares the backend. Must be called before any other method.
	Init() error

	// Shutdown releases resources and restores the terminal.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at (x, y), or an empty cell off screen.
	GetCell(x, y int) core.Cell

	// Clear blanks the screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// HideCursor hides the text cursor.
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues a synthetic event. It is safe to call from any
	// goroutine.
	PostEvent(event Event)
}
