// Package helix is the runtime core of an entity-component simulation
// engine. The EntityService owns the authoritative entity collection and the
// deferred two-phase lifecycle by which additions and removals become
// visible: creation and removal requests land in pending sets, and only the
// explicit commit calls at tick boundaries fold them into the collection a
// system iterates. That way a tick walking the live set is never mutated
// mid-iteration.
//
// All service operations are synchronous and confined to the single
// simulation thread; the access gate guards against logical reentrancy
// within that thread, not against parallel callers.
package helix

import (
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/helix-sim/helix/entity"
	"github.com/helix-sim/helix/events"
	"github.com/helix-sim/helix/gate"
	"github.com/helix-sim/helix/statsd"
	"github.com/helix-sim/helix/template"
	"github.com/helix-sim/helix/types"
)

type EntityService struct {
	committed      map[types.EntityID]*entity.Entity
	pendingAdded   []*entity.Entity
	pendingRemoved map[types.EntityID]*entity.Entity
	nextID         types.EntityID

	accessGate gate.Gate
	dispatcher events.Dispatcher
	templates  template.Provider
	logger     zerolog.Logger
}

func NewEntityService(opts ...Option) *EntityService {
	s := &EntityService{
		committed:      map[types.EntityID]*entity.Entity{},
		pendingRemoved: map[types.EntityID]*entity.Entity{},
		accessGate:     gate.Open(),
		dispatcher:     events.NewHub(),
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEntity builds a new ad-hoc entity from the given components. The
// entity lands in the pending-add set and an EntityAdded event is posted
// synchronously; it becomes visible through GetEntity and Entities only
// after CommitAdded. The returned entity is immediately usable for
// component access.
func (s *EntityService) CreateEntity(components ...types.Component) (*entity.Entity, error) {
	if !s.accessGate.TryEnter() {
		return nil, eris.Wrap(ErrCreateDisallowed, "access gate denied entity creation")
	}
	return s.create("", components)
}

// CreateFromTemplate stamps a new entity from the named template, cloning
// every prototype component and recording the template name on the entity.
func (s *EntityService) CreateFromTemplate(name string) (*entity.Entity, error) {
	if !s.accessGate.TryEnter() {
		return nil, eris.Wrap(ErrCreateDisallowed, "access gate denied entity creation")
	}
	if s.templates == nil {
		return nil, eris.Wrapf(ErrNoTemplateProvider, "cannot instantiate template %q", name)
	}
	tmpl, err := s.templates.Get(name)
	if err != nil {
		return nil, err
	}
	components, err := tmpl.Instantiate()
	if err != nil {
		return nil, err
	}
	return s.create(tmpl.Name(), components)
}

// create runs the gate-approved creation path. The id counter only advances
// once the entity is actually constructed, keeping failed calls free of
// state changes.
func (s *EntityService) create(prototype string, components []types.Component) (*entity.Entity, error) {
	e, err := entity.NewFromTemplate(s.nextID, prototype, components...)
	if err != nil {
		return nil, err
	}
	s.nextID++
	s.pendingAdded = append(s.pendingAdded, e)
	s.dispatcher.Post(events.EntityAdded{ID: e.ID(), Entity: e})
	logEntity(&s.logger, zerolog.DebugLevel, e, "entity created")
	return e, nil
}

// CommitAdded folds every pending-add entity into the authoritative
// collection and clears the pending set. Safe to call with nothing pending.
func (s *EntityService) CommitAdded() {
	start := time.Now()
	for _, e := range s.pendingAdded {
		s.committed[e.ID()] = e
	}
	added := len(s.pendingAdded)
	s.pendingAdded = nil
	statsd.EmitCommitStat(start, "commit_added")
	statsd.EmitEntityCount(len(s.committed))
	s.logger.Debug().
		Int("added", added).
		Int("committed", len(s.committed)).
		Msg("pending additions committed")
}

// RemoveEntity marks a committed entity for removal. The entity stays
// visible to readers until CommitRemoved; marking it a second time is a
// no-op. Removing an entity that was never committed (or is still
// pending-add) fails with ErrEntityDoesNotExist.
func (s *EntityService) RemoveEntity(e *entity.Entity) error {
	id := e.ID()
	committed, ok := s.committed[id]
	if !ok {
		return eris.Wrapf(ErrEntityDoesNotExist, "entity %d is not committed", id)
	}
	if _, marked := s.pendingRemoved[id]; marked {
		return nil
	}
	s.pendingRemoved[id] = committed
	s.logger.Debug().Uint64("entity_id", uint64(id)).Msg("entity marked for removal")
	return nil
}

// CommitRemoved drops every marked entity from the authoritative collection
// and posts one EntityRemoved event per entity. Removal events fire here, at
// commit time, never at the RemoveEntity request — the asymmetry with
// creation events is deliberate and relied upon downstream.
func (s *EntityService) CommitRemoved() {
	start := time.Now()
	removed := len(s.pendingRemoved)
	for _, id := range sortedIDs(s.pendingRemoved) {
		e := s.pendingRemoved[id]
		delete(s.committed, id)
		s.dispatcher.Post(events.EntityRemoved{ID: id, Entity: e})
		logEntity(&s.logger, zerolog.DebugLevel, e, "entity removed")
	}
	clear(s.pendingRemoved)
	statsd.EmitCommitStat(start, "commit_removed")
	statsd.EmitEntityCount(len(s.committed))
	s.logger.Debug().
		Int("removed", removed).
		Int("committed", len(s.committed)).
		Msg("pending removals committed")
}

// GetEntity returns the committed entity with the given id, or nil when
// absent. Pending-add entities are invisible here until CommitAdded;
// pending-removed entities remain visible until CommitRemoved.
func (s *EntityService) GetEntity(id types.EntityID) *entity.Entity {
	return s.committed[id]
}

// Entities returns a snapshot of the authoritative collection. Beyond
// containing each live entity exactly once, iteration order carries no
// meaning; ids ascend only to keep output deterministic.
func (s *EntityService) Entities() []*entity.Entity {
	entities := make([]*entity.Entity, 0, len(s.committed))
	for _, id := range sortedIDs(s.committed) {
		entities = append(entities, s.committed[id])
	}
	return entities
}

// AddedEntities returns a snapshot of the pending-add set in insertion
// order.
func (s *EntityService) AddedEntities() []*entity.Entity {
	added := make([]*entity.Entity, len(s.pendingAdded))
	copy(added, s.pendingAdded)
	return added
}

// RemovedEntities returns a snapshot of the entities marked for removal.
func (s *EntityService) RemovedEntities() []*entity.Entity {
	removed := make([]*entity.Entity, 0, len(s.pendingRemoved))
	for _, id := range sortedIDs(s.pendingRemoved) {
		removed = append(removed, s.pendingRemoved[id])
	}
	return removed
}

// SetAccessGate swaps the gate consulted before entity creation. A nil gate
// restores the always-open default.
func (s *EntityService) SetAccessGate(g gate.Gate) {
	if g == nil {
		g = gate.Open()
	}
	s.accessGate = g
}

func sortedIDs(m map[types.EntityID]*entity.Entity) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
