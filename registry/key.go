/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/suparena/registrystore/identifier"
)

// Key is a typed key for a value in a registry, pairing the identifier
// of the owning registry with the identifier of the value. The type
// parameter is a compile-time marker only; equality, hashing and map
// usage compare the identifier pair by value, never by allocation.
//
// The registry component never changes after construction.
type Key[T any] struct {
	registry identifier.Identifier
	value    identifier.Identifier
}

// RootID returns the identifier of the root registry, the registry
// that nominally contains all other registries. Keys created by
// KeyOfRegistry are parented on it.
func RootID() identifier.Identifier {
	return identifier.MustNew(identifier.DefaultNamespace, "root")
}

// NewKey creates a key for a value in the registry identified by the
// given registry key.
func NewKey[T Registration](registry Key[Registry[T]], value identifier.Identifier) Key[T] {
	return Key[T]{registry: registry.value, value: value}
}

// KeyOfRegistry creates the key of a registry itself, parented on the
// root registry.
func KeyOfRegistry[T Registration](registry identifier.Identifier) Key[Registry[T]] {
	return Key[Registry[T]]{registry: RootID(), value: registry}
}

// IsOf reports whether this key belongs to the registry with the given
// identifier.
func (k Key[T]) IsOf(registry identifier.Identifier) bool {
	return k.registry == registry
}

// CastKey reinterprets a key under a different entry type. It succeeds
// only when the key belongs to the given registry; no new identifiers
// are allocated. The second result is false when the registries differ.
func CastKey[E Registration, T any](k Key[T], registry Key[Registry[E]]) (Key[E], bool) {
	if !k.IsOf(registry.value) {
		return Key[E]{}, false
	}
	return Key[E]{registry: k.registry, value: k.value}, true
}

// Value returns the identifier of the value this key names.
func (k Key[T]) Value() identifier.Identifier {
	return k.value
}

// Registry returns the identifier of the registry this key belongs to.
func (k Key[T]) Registry() identifier.Identifier {
	return k.registry
}

// IsZero reports whether k is the zero value.
func (k Key[T]) IsZero() bool {
	return k.registry.IsZero() && k.value.IsZero()
}

// String renders the key as "RegistryKey[<registry> / <value>]".
func (k Key[T]) String() string {
	return "RegistryKey[" + k.registry.String() + " / " + k.value.String() + "]"
}
