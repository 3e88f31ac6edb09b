/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registrystore

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/registry"
)

// typeIndex is a registry of Go types and the registry identifier their
// values are attached under. Later bindings for the same type win.

var (
	typeIndex = make(map[reflect.Type]identifier.Identifier)
	mu        sync.RWMutex
)

// Attach registers the freezer under the given registry identifier and
// records the Go type binding so For can find the registry by type later.
func Attach[T registry.Registration](m Manager, id identifier.Identifier, f *registry.Freezer[T]) error {
	if err := m.Add(id, f); err != nil {
		return err
	}

	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	typeIndex[t] = id
	return nil
}

// Lookup retrieves the freezer registered under the given identifier,
// typed for entries of T.
func Lookup[T registry.Registration](m Manager, id identifier.Identifier) (*registry.Freezer[T], error) {
	v, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	f, ok := v.(*registry.Freezer[T])
	if !ok {
		return nil, fmt.Errorf("registry %s does not hold entries of the requested type", id)
	}
	return f, nil
}

// For finds the registry freezer holding values of type T, if any
// was attached.
func For[T registry.Registration](m Manager) (*registry.Freezer[T], error) {
	id, ok := BoundRegistry[T]()
	if !ok {
		var zero T
		return nil, errors.NewNotFoundError("registry for type", fmt.Sprintf("%T", zero))
	}

	return Lookup[T](m, id)
}

// BoundRegistry retrieves the registry identifier type T is attached under, if any.
func BoundRegistry[T registry.Registration]() (identifier.Identifier, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	id, ok := typeIndex[t]
	return id, ok
}
