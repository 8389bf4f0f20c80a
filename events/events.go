// Package events carries entity lifecycle notifications out of the entity
// service. The service only depends on the narrow Dispatcher surface;
// the Hub is the default in-process implementation.
package events

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/helix-sim/helix/entity"
	"github.com/helix-sim/helix/types"
)

// Event is a lifecycle notification payload.
type Event interface {
	EventName() string
}

// EntityAdded is posted synchronously by the creation request, before the
// entity is committed.
type EntityAdded struct {
	ID     types.EntityID
	Entity *entity.Entity
}

func (EntityAdded) EventName() string { return "entity_added" }

// EntityRemoved is posted when the removal commit actually drops the entity,
// not when removal is requested.
type EntityRemoved struct {
	ID     types.EntityID
	Entity *entity.Entity
}

func (EntityRemoved) EventName() string { return "entity_removed" }

// Dispatcher is the publish surface the entity service depends on. Posting
// is fire-and-forget: the service never awaits or depends on subscriber
// completion.
type Dispatcher interface {
	Post(event Event)
}

type Subscriber func(Event)

// Hub dispatches posted events synchronously to every subscriber. A
// subscriber panic is contained and logged; it never propagates into the
// entity mutation that triggered the event.
type Hub struct {
	subscribers []Subscriber
	logger      zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{logger: zerolog.Nop()}
}

// WithLogger returns a copy of the hub that logs dispatches and contained
// subscriber failures through logger.
func (h *Hub) WithLogger(logger zerolog.Logger) *Hub {
	return &Hub{subscribers: h.subscribers, logger: logger}
}

func (h *Hub) Subscribe(sub Subscriber) {
	h.subscribers = append(h.subscribers, sub)
}

func (h *Hub) Post(event Event) {
	traceID := uuid.NewString()
	h.logger.Debug().
		Str("trace_id", traceID).
		Str("event", event.EventName()).
		Int("subscribers", len(h.subscribers)).
		Msg("event posted")
	for i, sub := range h.subscribers {
		h.dispatch(traceID, i, sub, event)
	}
}

func (h *Hub) dispatch(traceID string, index int, sub Subscriber, event Event) {
	defer func() {
		if r := recover(); r != nil {
			err := eris.New(fmt.Sprintf("subscriber panic: %v", r))
			h.logger.Error().
				Err(err).
				Str("trace_id", traceID).
				Str("event", event.EventName()).
				Int("subscriber", index).
				Msg("event subscriber failed")
		}
	}()
	sub(event)
}
