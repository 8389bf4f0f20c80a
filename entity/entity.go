// Package entity defines the live simulation object: an identifier plus a
// mutable collection of components keyed by capability. Entities are
// constructed by the entity service; everything else holds non-owning
// references for lookups.
package entity

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/helix-sim/helix/types"
)

var (
	ErrComponentNotOnEntity = eris.New("component not on entity")
	ErrDuplicateCapability  = eris.New("entity already has a component for capability")
)

type Entity struct {
	id         types.EntityID
	prototype  string
	components map[string]types.Component
}

// New builds an ad-hoc entity from the given components. Every component's
// capability configuration is validated, and at most one component per
// capability is accepted.
func New(id types.EntityID, components ...types.Component) (*Entity, error) {
	return NewFromTemplate(id, "", components...)
}

// NewFromTemplate builds an entity stamped from the named template. The
// prototype name is recorded for diagnostics and respawn-by-recipe flows.
func NewFromTemplate(id types.EntityID, prototype string, components ...types.Component) (*Entity, error) {
	byCapability := make(map[string]types.Component, len(components))
	for _, c := range components {
		if err := types.ValidateCapability(c); err != nil {
			return nil, err
		}
		capability := c.Capability()
		if _, ok := byCapability[capability]; ok {
			return nil, eris.Wrapf(ErrDuplicateCapability, "capability %q supplied twice", capability)
		}
		byCapability[capability] = c
	}
	return &Entity{
		id:         id,
		prototype:  prototype,
		components: byCapability,
	}, nil
}

func (e *Entity) ID() types.EntityID {
	return e.id
}

// Prototype returns the name of the template this entity was stamped from,
// or "" for ad-hoc entities.
func (e *Entity) Prototype() string {
	return e.prototype
}

func (e *Entity) Has(capability string) bool {
	_, ok := e.components[capability]
	return ok
}

// Component returns the component fulfilling the given capability.
func (e *Entity) Component(capability string) (types.Component, error) {
	c, ok := e.components[capability]
	if !ok {
		return nil, eris.Wrapf(ErrComponentNotOnEntity, "entity %d has no capability %q", e.id, capability)
	}
	return c, nil
}

// SetComponent attaches c to the entity, replacing any component already
// fulfilling the same capability.
func (e *Entity) SetComponent(c types.Component) error {
	if err := types.ValidateCapability(c); err != nil {
		return err
	}
	e.components[c.Capability()] = c
	return nil
}

// RemoveComponent detaches the component fulfilling the given capability.
func (e *Entity) RemoveComponent(capability string) error {
	if _, ok := e.components[capability]; !ok {
		return eris.Wrapf(ErrComponentNotOnEntity, "entity %d has no capability %q", e.id, capability)
	}
	delete(e.components, capability)
	return nil
}

// Capabilities returns the entity's capability names in sorted order.
func (e *Entity) Capabilities() []string {
	capabilities := make([]string, 0, len(e.components))
	for capability := range e.components {
		capabilities = append(capabilities, capability)
	}
	sort.Strings(capabilities)
	return capabilities
}

// Components returns a snapshot of the attached components, ordered by
// capability name.
func (e *Entity) Components() []types.Component {
	components := make([]types.Component, 0, len(e.components))
	for _, capability := range e.Capabilities() {
		components = append(components, e.components[capability])
	}
	return components
}
