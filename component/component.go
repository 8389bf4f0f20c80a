// Package component provides the generic helper layer concrete components
// delegate their erased Clone/CopyTo methods to. The helpers perform the
// concrete-type check at the erased boundary and deep-copy field data through
// the engine codec.
package component

import (
	"github.com/rotisserie/eris"

	"github.com/helix-sim/helix/codec"
	"github.com/helix-sim/helix/types"
)

var ErrTypeMismatch = eris.New("component type mismatch")

// Ptr constrains PT to a pointer to a concrete component struct that
// implements the erased Component interface.
type Ptr[T any] interface {
	*T
	types.Component
}

// Clone deep-copies src and returns the copy behind the erased interface.
func Clone[T any, PT Ptr[T]](src PT) (types.Component, error) {
	dst, err := codec.Clone((*T)(src))
	if err != nil {
		return nil, eris.Wrapf(err, "cannot clone component %T", src)
	}
	return PT(dst), nil
}

// CopyInto copies src's field data onto target. It fails with ErrTypeMismatch
// when target's concrete type differs from src's, and leaves src unchanged.
func CopyInto[T any, PT Ptr[T]](src PT, target types.Component) error {
	dst, ok := target.(PT)
	if !ok {
		return eris.Wrapf(ErrTypeMismatch, "cannot copy %T onto %T", src, target)
	}
	fields, err := codec.Clone((*T)(src))
	if err != nil {
		return eris.Wrapf(err, "cannot copy component %T", src)
	}
	*(*T)(dst) = *fields
	return nil
}
