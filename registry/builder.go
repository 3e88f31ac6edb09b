/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/registry/tag"
)

// Builder collects (value, identifier) pairs before a registry is
// frozen. Entries are append-only and keep insertion order; an entry's
// position is its raw id once frozen. Builder is not safe for
// concurrent use; population happens single-threaded during setup and
// the freezer hands the builder off exactly once.
type Builder[T Registration] struct {
	entries []builderEntry[T]
	byID    map[identifier.Identifier]int
}

type builderEntry[T Registration] struct {
	value T
	id    identifier.Identifier
}

// NewBuilder returns an empty builder.
func NewBuilder[T Registration]() *Builder[T] {
	return &Builder[T]{}
}

// Register appends a value under the given identifier and returns the
// raw id the entry will hold after freeze. A zero identifier is
// rejected as invalid; a duplicate identifier fails with
// errors.ErrAlreadyRegistered and leaves the builder unchanged. The
// value's raw id is not assigned here; that happens at freeze time so
// ids always reflect final insertion order.
func (b *Builder[T]) Register(value T, id identifier.Identifier) (int, error) {
	if id.IsZero() {
		return 0, errors.NewInvalidIdentifierError("", "zero identifier")
	}
	if _, exists := b.byID[id]; exists {
		return 0, errors.NewAlreadyRegisteredError(id.String())
	}
	if b.byID == nil {
		b.byID = make(map[identifier.Identifier]int)
	}
	raw := len(b.entries)
	b.byID[id] = raw
	b.entries = append(b.entries, builderEntry[T]{value: value, id: id})
	return raw, nil
}

// Len returns the number of registered entries.
func (b *Builder[T]) Len() int {
	return len(b.entries)
}

// FreezeOpts configures the freeze of a builder into a registry.
type FreezeOpts[T Registration] struct {
	// Key is the key of the registry being built.
	Key Key[Registry[T]]

	// Default optionally names the registry's default entry. When it
	// does not resolve to a registered entry the registry simply has no
	// default; an unresolved default is never an error.
	Default identifier.Identifier
}

// Freeze builds the immutable registry from the collected entries. For
// each entry in insertion order it assigns the raw id through the
// Registration capability, wraps the value in a Holder keyed under the
// registry, and indexes it by identifier and by key. The builder must
// not be used afterwards.
func (b *Builder[T]) Freeze(opts FreezeOpts[T]) *Registry[T] {
	entries := make([]*Holder[T], len(b.entries))
	idMap := make(map[identifier.Identifier]int, len(b.entries))
	keyMap := make(map[Key[T]]int, len(b.entries))

	for i, e := range b.entries {
		e.value.AcceptRawID(i)
		h := &Holder[T]{
			key:   NewKey(opts.Key, e.id),
			value: e.value,
		}
		entries[i] = h
		idMap[e.id] = i
		keyMap[h.key] = i
	}

	def := -1
	if !opts.Default.IsZero() {
		if raw, ok := idMap[opts.Default]; ok {
			def = raw
		}
	}

	return &Registry[T]{
		key:     opts.Key,
		def:     def,
		entries: entries,
		idMap:   idMap,
		keyMap:  keyMap,
		tags:    make(map[tag.Key[T]][]int),
	}
}
