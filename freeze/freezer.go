/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package freeze

import (
	"sync"
	"sync/atomic"
)

// Freezable describes a mutable seed that can be built into an immutable
// value of type I, given an options value of type O. Implementations
// must not retain the seed after Freeze returns; the produced value is
// the only thing allowed to survive.
type Freezable[I, O any] interface {
	Freeze(opts O) I
}

// Freezer is a one-shot cell around a mutable seed of type M that is
// consumed exactly once to produce an immutable value of type I.
//
// A Freezer starts open, holding the seed. Freeze takes the seed,
// builds I and seals the cell; from then on Get returns the sealed
// value without locking. Both freezing twice and reading before the
// seal are contract violations and panic. Callers unsure of the state
// check IsFrozen first.
type Freezer[I, O any, M Freezable[I, O]] struct {
	mu     sync.Mutex
	seed   M
	taken  bool
	sealed atomic.Pointer[I]
}

// New returns an open Freezer holding the given seed.
func New[I, O any, M Freezable[I, O]](seed M) *Freezer[I, O, M] {
	return &Freezer[I, O, M]{seed: seed}
}

// Freeze consumes the seed and seals the cell with the built value.
// Under concurrent calls exactly one caller performs the transition;
// every other call panics. Freeze never runs the build twice.
func (f *Freezer[I, O, M]) Freeze(opts O) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.taken {
		panic("freezer: already frozen")
	}
	seed := f.seed
	var zero M
	f.seed = zero
	f.taken = true

	frozen := seed.Freeze(opts)
	f.sealed.Store(&frozen)
}

// Edit runs fn with the open seed, under the same lock Freeze takes,
// so edits and the freeze hand-off never interleave. It panics when
// the cell is already sealed; the seed is gone by then.
func (f *Freezer[I, O, M]) Edit(fn func(seed M)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.taken {
		panic("freezer: already frozen")
	}
	fn(f.seed)
}

// Get returns the sealed value. It panics if the Freezer has not been
// frozen; it never substitutes a zero value for a missing seal.
func (f *Freezer[I, O, M]) Get() I {
	p := f.sealed.Load()
	if p == nil {
		panic("freezer: not frozen yet")
	}
	return *p
}

// IsFrozen reports whether the cell has been sealed. After IsFrozen
// returns true, Get never panics.
func (f *Freezer[I, O, M]) IsFrozen() bool {
	return f.sealed.Load() != nil
}

// Identity wraps a value that is already immutable so it can seed a
// Freezer directly. Freezing is a no-op hand-off of the wrapped value.
type Identity[T any] struct {
	Value T
}

// Freeze returns the wrapped value unchanged.
func (v Identity[T]) Freeze(struct{}) T {
	return v.Value
}

// NewIdentity returns an open Freezer that seals into the given value
// itself, with no options.
func NewIdentity[T any](value T) *Freezer[T, struct{}, Identity[T]] {
	return New[T, struct{}](Identity[T]{Value: value})
}
