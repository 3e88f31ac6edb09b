/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/suparena/registrystore/freeze"
	"github.com/suparena/registrystore/identifier"
)

// Freezer carries a registry through its lifecycle: open while the
// Builder collects registrations, sealed into an immutable Registry
// once frozen. It is the registry instantiation of freeze.Freezer;
// Get panics until Freeze has run.
type Freezer[T Registration] = freeze.Freezer[*Registry[T], FreezeOpts[T], *Builder[T]]

// NewFreezer returns an open Freezer seeded with an empty Builder.
func NewFreezer[T Registration]() *Freezer[T] {
	return freeze.New[*Registry[T], FreezeOpts[T]](NewBuilder[T]())
}

// Register registers a value into a freezer's builder. It panics when
// the freezer is already frozen; registration is a setup-phase
// operation.
func Register[T Registration](f *Freezer[T], value T, id identifier.Identifier) (int, error) {
	var raw int
	var err error
	f.Edit(func(b *Builder[T]) {
		raw, err = b.Register(value, id)
	})
	return raw, err
}
