// Package tag provides the key type naming a group of registry entries.
//
// A tag key pairs the identifier of the registry it applies to with the
// identifier of the group itself. Membership is stored registry-side;
// this package only defines the name.
package tag

import (
	"github.com/suparena/registrystore/identifier"
)

// Key names a tag within one registry. The type parameter ties the key
// to the registry's entry type at compile time and has no runtime
// representation.
//
// Key is a comparable value type usable as a map key.
type Key[T any] struct {
	registry identifier.Identifier
	id       identifier.Identifier
}

// NewKey creates a tag key for the registry named by registry.
func NewKey[T any](registry, id identifier.Identifier) Key[T] {
	return Key[T]{registry: registry, id: id}
}

// Registry returns the identifier of the registry this tag applies to.
func (k Key[T]) Registry() identifier.Identifier {
	return k.registry
}

// ID returns the identifier of the tag itself.
func (k Key[T]) ID() identifier.Identifier {
	return k.id
}

// IsZero reports whether k is the zero value.
func (k Key[T]) IsZero() bool {
	return k.registry.IsZero() && k.id.IsZero()
}

// String renders the key as "TagKey[<registry> / <id>]".
func (k Key[T]) String() string {
	return "TagKey[" + k.registry.String() + " / " + k.id.String() + "]"
}
