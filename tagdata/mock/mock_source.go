/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the tagdata.Source interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/tagdata"
)

// Source is a mock implementation of tagdata.Source for testing
type Source struct {
	mu       sync.RWMutex
	defs     map[identifier.Identifier]tagdata.File
	loadErr  error
	loadFunc func(ctx context.Context) (map[identifier.Identifier]tagdata.File, error)
}

// New creates a new mock Source
func New() *Source {
	return &Source{
		defs: make(map[identifier.Identifier]tagdata.File),
	}
}

// WithLoadError makes Load return an error
func (s *Source) WithLoadError(err error) *Source {
	s.loadErr = err
	return s
}

// WithLoadFunc sets a custom load function for testing
func (s *Source) WithLoadFunc(f func(ctx context.Context) (map[identifier.Identifier]tagdata.File, error)) *Source {
	s.loadFunc = f
	return s
}

// Set seeds one tag definition and returns the source for chaining
func (s *Source) Set(id identifier.Identifier, f tagdata.File) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defs[id] = f
	return s
}

// Load returns a copy of the seeded definitions
func (s *Source) Load(ctx context.Context) (map[identifier.Identifier]tagdata.File, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.loadFunc != nil {
		return s.loadFunc(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[identifier.Identifier]tagdata.File, len(s.defs))
	for id, f := range s.defs {
		out[id] = f
	}
	return out, nil
}

// Count returns the number of seeded definitions
func (s *Source) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.defs)
}

// Clear removes all seeded definitions
func (s *Source) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defs = make(map[identifier.Identifier]tagdata.File)
}
