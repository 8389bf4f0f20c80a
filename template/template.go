// Package template holds the named, immutable recipes entities are stamped
// from. A template owns its prototype components outright: the constructor
// clones what it is given and instantiation clones again, so a live
// prototype reference never escapes.
package template

import (
	"github.com/rotisserie/eris"

	"github.com/helix-sim/helix/types"
)

var (
	ErrNotFound          = eris.New("template not found")
	ErrDuplicateTemplate = eris.New("template already registered")
	ErrSchemaConflict    = eris.New("capability schema conflicts with a previously registered component")
)

// Provider resolves templates by name for the entity service.
type Provider interface {
	Get(name string) (*Template, error)
}

type Template struct {
	name       string
	prototypes []types.Component
}

// New builds a template from the given prototype components, keeping
// independent clones in the supplied order.
func New(name string, prototypes ...types.Component) (*Template, error) {
	if name == "" {
		return nil, eris.New("template name must not be empty")
	}
	owned := make([]types.Component, 0, len(prototypes))
	for _, proto := range prototypes {
		if err := types.ValidateCapability(proto); err != nil {
			return nil, err
		}
		clone, err := proto.Clone()
		if err != nil {
			return nil, eris.Wrapf(err, "template %q", name)
		}
		owned = append(owned, clone)
	}
	return &Template{name: name, prototypes: owned}, nil
}

func (t *Template) Name() string {
	return t.name
}

// Instantiate returns fresh clones of the prototype components, in recipe
// order, ready to be attached to a new entity.
func (t *Template) Instantiate() ([]types.Component, error) {
	components := make([]types.Component, 0, len(t.prototypes))
	for _, proto := range t.prototypes {
		clone, err := proto.Clone()
		if err != nil {
			return nil, eris.Wrapf(err, "template %q", t.name)
		}
		components = append(components, clone)
	}
	return components, nil
}

// Capabilities returns the capability names of the prototype components in
// recipe order.
func (t *Template) Capabilities() []string {
	capabilities := make([]string, 0, len(t.prototypes))
	for _, proto := range t.prototypes {
		capabilities = append(capabilities, proto.Capability())
	}
	return capabilities
}

// Registry is the default Provider. Registration happens once at startup;
// reads are lock-free thereafter.
type Registry struct {
	templates map[string]*Template
	schemas   map[string][]byte
}

func NewRegistry() *Registry {
	return &Registry{
		templates: map[string]*Template{},
		schemas:   map[string][]byte{},
	}
}

// Register adds t to the registry. Duplicate names are rejected, and every
// prototype component must be JSON-serializable with a schema matching any
// component previously registered under the same capability. All checks run
// before any state change.
func (r *Registry) Register(t *Template) error {
	if _, ok := r.templates[t.name]; ok {
		return eris.Wrapf(ErrDuplicateTemplate, "template %q", t.name)
	}
	schemas := make(map[string][]byte, len(t.prototypes))
	for _, proto := range t.prototypes {
		schema, err := types.SerializeComponentSchema(proto)
		if err != nil {
			return eris.Wrapf(err, "template %q", t.name)
		}
		if existing, ok := r.schemas[proto.Capability()]; ok {
			same, err := types.IsSchemaValid(schema, existing)
			if err != nil {
				return err
			}
			if !same {
				return eris.Wrapf(ErrSchemaConflict, "template %q capability %q", t.name, proto.Capability())
			}
		}
		schemas[proto.Capability()] = schema
	}
	for capability, schema := range schemas {
		r.schemas[capability] = schema
	}
	r.templates[t.name] = t
	return nil
}

func (r *Registry) Get(name string) (*Template, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, eris.Wrapf(ErrNotFound, "template %q", name)
	}
	return t, nil
}

// Schema returns the stored JSON schema for a capability, for diagnostics.
func (r *Registry) Schema(capability string) ([]byte, bool) {
	schema, ok := r.schemas[capability]
	return schema, ok
}
