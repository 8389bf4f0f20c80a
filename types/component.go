package types

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// GenericCapability is the reserved marker behind the erased Component
// interface. A concrete component must declare its own capability; reporting
// the marker (or nothing at all) is a configuration mistake by the component
// author, not a runtime data error.
const GenericCapability = "component"

var ErrInvalidCapability = eris.New("component must declare a capability other than the generic marker")

// Component is the type-erased unit of simulation data attached to an entity.
type Component interface {
	// Capability returns the name of the read capability this component
	// fulfils. It is the lookup key for the component on an entity.
	Capability() string

	// Clone returns an independent deep copy of the component. The copy must
	// not share mutable sub-objects with the receiver.
	Clone() (Component, error)

	// CopyTo overwrites target's field data with the receiver's values. It
	// fails when target's concrete type differs from the receiver's. The
	// receiver is left unchanged.
	CopyTo(target Component) error
}

// AsyncCapable marks a component that tolerates multiple logical writers
// within a single tick. Write schedulers consult the tag; the engine itself
// only guarantees it survives cloning.
type AsyncCapable interface {
	Component
	AsyncWriteSafe() bool
}

func IsAsyncCapable(c Component) bool {
	a, ok := c.(AsyncCapable)
	return ok && a.AsyncWriteSafe()
}

// ValidateCapability rejects a component whose declared capability is empty
// or equal to the generic marker.
func ValidateCapability(c Component) error {
	capability := c.Capability()
	if capability == "" || capability == GenericCapability {
		return eris.Wrapf(ErrInvalidCapability, "component type %T declares capability %q", c, capability)
	}
	return nil
}

func SerializeComponentSchema(component Component) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	schema, err := componentSchema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

func IsComponentValid(component Component, jsonSchemaBytes []byte) (bool, error) {
	componentSchemaBytes, err := SerializeComponentSchema(component)
	if err != nil {
		return false, err
	}
	return IsSchemaValid(componentSchemaBytes, jsonSchemaBytes)
}

func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}
