// Package events carries in-process session lifecycle notifications from
// the session store to interested consumers such as the CLI.
package events

import (
	"sync"
	"time"
)

// Type enumerates session lifecycle event identifiers.
type Type string

const (
	// SessionEstablished fires when a session becomes authenticated,
	// whether by login or by restoring a persisted session.
	SessionEstablished Type = "session_established"
	// SessionCleared fires on an explicit logout.
	SessionCleared Type = "session_cleared"
	// SessionExpired fires when a session is discarded without the user
	// asking: an expired persisted token at startup, or a forced logout
	// after the server rejected the credential.
	SessionExpired Type = "session_expired"
)

// Event is a session lifecycle notification.
type Event struct {
	Type     Type
	Username string
	At       time.Time
}

// Handler receives a published event. Handlers run synchronously on the
// publishing goroutine and must not block.
type Handler func(Event)

// Dispatcher fans events out to subscribed handlers. A nil Dispatcher is
// valid and drops everything.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for the given event type.
func (d *Dispatcher) Subscribe(t Type, h Handler) {
	if d == nil || h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[t] = append(d.handlers[t], h)
}

// Publish delivers the event to all handlers registered for its type.
func (d *Dispatcher) Publish(e Event) {
	if d == nil {
		return
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	d.mu.RLock()
	handlers := append([]Handler(nil), d.handlers[e.Type]...)
	d.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
