package helix

import (
	"github.com/rotisserie/eris"

	"github.com/helix-sim/helix/component"
	"github.com/helix-sim/helix/entity"
)

// GetComponent returns the component of concrete type T attached to the
// entity, resolving the capability from T's zero value.
func GetComponent[T any, PT component.Ptr[T]](e *entity.Entity) (PT, error) {
	var zero PT
	probe := PT(new(T))
	c, err := e.Component(probe.Capability())
	if err != nil {
		return zero, err
	}
	comp, ok := c.(PT)
	if !ok {
		return zero, eris.Wrapf(component.ErrTypeMismatch,
			"capability %q on entity %d holds %T", probe.Capability(), e.ID(), c)
	}
	return comp, nil
}

// HasComponent reports whether the entity carries a component of concrete
// type T.
func HasComponent[T any, PT component.Ptr[T]](e *entity.Entity) bool {
	probe := PT(new(T))
	return e.Has(probe.Capability())
}

// RemoveComponent detaches the component of concrete type T from the entity.
func RemoveComponent[T any, PT component.Ptr[T]](e *entity.Entity) error {
	probe := PT(new(T))
	return e.RemoveComponent(probe.Capability())
}
