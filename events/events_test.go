package events_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/helix-sim/helix/assert"
	"github.com/helix-sim/helix/entity"
	"github.com/helix-sim/helix/events"
	"github.com/helix-sim/helix/testsuite"
)

func newTestEntity(t *testing.T) *entity.Entity {
	t.Helper()
	e, err := entity.New(1, &testsuite.LocationComponent{})
	assert.NilError(t, err)
	return e
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "entity_added", events.EntityAdded{}.EventName())
	assert.Equal(t, "entity_removed", events.EntityRemoved{}.EventName())
}

func TestHubDispatchesToSubscribersInOrder(t *testing.T) {
	hub := events.NewHub()
	var order []string
	hub.Subscribe(func(events.Event) { order = append(order, "first") })
	hub.Subscribe(func(events.Event) { order = append(order, "second") })

	e := newTestEntity(t)
	hub.Post(events.EntityAdded{ID: e.ID(), Entity: e})
	hub.Post(events.EntityRemoved{ID: e.ID(), Entity: e})

	assert.DeepEqual(t, []string{"first", "second", "first", "second"}, order)
}

func TestHubDeliversEventPayload(t *testing.T) {
	hub := events.NewHub()
	var got events.Event
	hub.Subscribe(func(ev events.Event) { got = ev })

	e := newTestEntity(t)
	hub.Post(events.EntityAdded{ID: e.ID(), Entity: e})

	added, ok := got.(events.EntityAdded)
	assert.True(t, ok)
	assert.Equal(t, e.ID(), added.ID)
	assert.Equal(t, e, added.Entity)
}

func TestHubContainsSubscriberPanic(t *testing.T) {
	hub := events.NewHub()
	delivered := 0
	hub.Subscribe(func(events.Event) { panic("subscriber bug") })
	hub.Subscribe(func(events.Event) { delivered++ })

	e := newTestEntity(t)
	hub.Post(events.EntityAdded{ID: e.ID(), Entity: e})

	// the panicking subscriber must not starve the one behind it
	assert.Equal(t, 1, delivered)
}

func TestHubWithNoSubscribersIsHarmless(t *testing.T) {
	hub := events.NewHub()
	e := newTestEntity(t)
	hub.Post(events.EntityAdded{ID: e.ID(), Entity: e})
}

func TestHubWithLoggerKeepsSubscribers(t *testing.T) {
	hub := events.NewHub()
	delivered := 0
	hub.Subscribe(func(events.Event) { delivered++ })

	logged := hub.WithLogger(zerolog.Nop())
	e := newTestEntity(t)
	logged.Post(events.EntityAdded{ID: e.ID(), Entity: e})

	assert.Equal(t, 1, delivered)
}
