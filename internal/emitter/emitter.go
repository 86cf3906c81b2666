// Package emitter provides an ordered, synchronous observer list.
//
// Listeners are identified by the Subscription handle returned from
// Subscribe, so the same function may be registered more than once and each
// registration is removed independently.
package emitter

// Listener is invoked on every Emit.
type Listener func()

// Subscription identifies one registration. The zero value is not registered
// anywhere, so unsubscribing it is a no-op.
type Subscription struct {
	id uint64
}

// Valid reports whether s came from Subscribe.
func (s Subscription) Valid() bool {
	return s.id != 0
}

type entry struct {
	id       uint64
	listener Listener
}

// Emitter holds listeners in subscription order.
// It is not safe for concurrent use.
type Emitter struct {
	entries []entry
	nextID  uint64
}

// New returns an empty emitter.
func New() *Emitter {
	return &Emitter{}
}

// Subscribe appends l to the listener list.
func (e *Emitter) Subscribe(l Listener) Subscription {
	if l == nil {
		return Subscription{}
	}
	e.nextID++
	e.entries = append(e.entries, entry{id: e.nextID, listener: l})
	return Subscription{id: e.nextID}
}

// Unsubscribe removes the registration. Unknown or already removed
// subscriptions are ignored.
func (e *Emitter) Unsubscribe(s Subscription) {
	if !s.Valid() {
		return
	}
	for i, en := range e.entries {
		if en.id == s.id {
			e.entries = append(e.entries[:i:i], e.entries[i+1:]...)
			return
		}
	}
}

// Emit calls every listener in subscription order. The list is captured
// before the first call; changes made by listeners apply to the next Emit.
func (e *Emitter) Emit() {
	snapshot := e.entries
	for _, en := range snapshot {
		en.listener()
	}
}

// Len returns the number of registered listeners.
func (e *Emitter) Len() int {
	return len(e.entries)
}
