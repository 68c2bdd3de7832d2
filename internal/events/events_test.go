package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherFansOutByType(t *testing.T) {
	d := NewDispatcher()

	var established, expired int
	d.Subscribe(SessionEstablished, func(Event) { established++ })
	d.Subscribe(SessionEstablished, func(Event) { established++ })
	d.Subscribe(SessionExpired, func(Event) { expired++ })

	d.Publish(Event{Type: SessionEstablished, Username: "ada"})

	assert.Equal(t, 2, established)
	assert.Zero(t, expired)
}

func TestDispatcherStampsTime(t *testing.T) {
	d := NewDispatcher()

	var got Event
	d.Subscribe(SessionCleared, func(e Event) { got = e })
	d.Publish(Event{Type: SessionCleared})

	assert.False(t, got.At.IsZero())
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Subscribe(SessionExpired, func(Event) {})
	d.Publish(Event{Type: SessionExpired})
}

func TestNilHandlerIgnored(t *testing.T) {
	d := NewDispatcher()
	d.Subscribe(SessionExpired, nil)
	d.Publish(Event{Type: SessionExpired})
}
