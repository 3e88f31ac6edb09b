/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registrystore

import (
	"sort"
	"sync"

	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
)

// Manager is a higher-level interface that manages a collection of registry
// freezers under their registry identifiers.
// Note that its methods are not generic; they use the empty interface (any) to
// store and retrieve freezers.
type Manager interface {
	// Add registers a freezer under the given registry identifier (for example, "arena:materials").
	Add(id identifier.Identifier, freezer any) error
	// Get retrieves the registered freezer for a given registry identifier.
	// The caller must type-assert the returned value to the appropriate freezer type.
	Get(id identifier.Identifier) (any, error)
	// Keys returns the identifiers of all registered freezers, sorted by string form.
	Keys() []identifier.Identifier
}

// registryManager is a thread-safe implementation of the Manager interface.
type registryManager struct {
	mu       sync.RWMutex
	freezers map[identifier.Identifier]any
}

// NewManager creates and returns a new Manager implementation.
func NewManager() Manager {
	return &registryManager{
		freezers: make(map[identifier.Identifier]any),
	}
}

// Add stores the provided freezer under the given registry identifier.
func (rm *registryManager) Add(id identifier.Identifier, freezer any) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if _, exists := rm.freezers[id]; exists {
		return errors.NewAlreadyRegisteredError(id.String())
	}
	rm.freezers[id] = freezer
	return nil
}

// Get retrieves the freezer associated with the given registry identifier.
func (rm *registryManager) Get(id identifier.Identifier) (any, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	f, exists := rm.freezers[id]
	if !exists {
		return nil, errors.NewNotFoundError("registry", id.String())
	}
	return f, nil
}

// Keys returns all registered registry identifiers sorted by string form.
func (rm *registryManager) Keys() []identifier.Identifier {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	keys := make([]identifier.Identifier, 0, len(rm.freezers))
	for id := range rm.freezers {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
