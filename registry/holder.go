/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sync"

	"github.com/suparena/registrystore/registry/tag"
)

// Holder binds one registered value to its key and to the tags it is a
// member of. Holders are created by the freeze step, exactly one per
// entry, and live as long as their registry. Only the tag list changes
// afterwards, and only through the registry's BindTags.
type Holder[T Registration] struct {
	key   Key[T]
	value T

	mu   sync.RWMutex
	tags []tag.Key[T]
}

// Key returns the registry key of this entry.
func (h *Holder[T]) Key() Key[T] {
	return h.key
}

// Value returns the held value.
func (h *Holder[T]) Value() T {
	return h.value
}

// IsIn reports whether this entry is a member of the given tag.
func (h *Holder[T]) IsIn(t tag.Key[T]) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, have := range h.tags {
		if have == t {
			return true
		}
	}
	return false
}

// Tags returns a snapshot of the tags this entry belongs to.
func (h *Holder[T]) Tags() []tag.Key[T] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]tag.Key[T], len(h.tags))
	copy(out, h.tags)
	return out
}

// setTags replaces the holder's tag cache. Called only by BindTags
// inside the registry's writer critical section.
func (h *Holder[T]) setTags(tags []tag.Key[T]) {
	h.mu.Lock()
	h.tags = tags
	h.mu.Unlock()
}
