/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/registry/tag"
)

// Registry is the immutable result of freezing a Builder: an ordered
// arena of holders addressed by raw id, with identifier and key indices
// kept in strict agreement, an optional default entry, and a tag index
// that keeps mutating after the freeze under its own lock.
//
// Registries are created only by Builder.Freeze. Entry lookups never
// lock; only the tag index does.
type Registry[T Registration] struct {
	key     Key[Registry[T]]
	def     int // raw id of the default entry, -1 when absent
	entries []*Holder[T]
	idMap   map[identifier.Identifier]int
	keyMap  map[Key[T]]int

	mu   sync.RWMutex
	tags map[tag.Key[T]][]int
}

// Key returns the key of this registry.
func (r *Registry[T]) Key() Key[Registry[T]] {
	return r.key
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// ByID looks up an entry by identifier, returning its raw id and
// holder. Absence is reported through ok, not an error.
func (r *Registry[T]) ByID(id identifier.Identifier) (int, *Holder[T], bool) {
	raw, ok := r.idMap[id]
	if !ok {
		return 0, nil, false
	}
	return raw, r.entries[raw], true
}

// ByKey looks up an entry by registry key, returning its raw id and
// holder.
func (r *Registry[T]) ByKey(k Key[T]) (int, *Holder[T], bool) {
	raw, ok := r.keyMap[k]
	if !ok {
		return 0, nil, false
	}
	return raw, r.entries[raw], true
}

// ByRawID looks up an entry by raw id.
func (r *Registry[T]) ByRawID(raw int) (*Holder[T], bool) {
	if raw < 0 || raw >= len(r.entries) {
		return nil, false
	}
	return r.entries[raw], true
}

// ContainsID reports whether an entry with the given identifier exists.
func (r *Registry[T]) ContainsID(id identifier.Identifier) bool {
	_, ok := r.idMap[id]
	return ok
}

// ContainsKey reports whether an entry with the given key exists.
func (r *Registry[T]) ContainsKey(k Key[T]) bool {
	_, ok := r.keyMap[k]
	return ok
}

// IsDefaulted reports whether this registry has a default entry. It is
// the guard for DefaultEntry.
func (r *Registry[T]) IsDefaulted() bool {
	return r.def >= 0
}

// DefaultEntry returns the raw id and holder of the default entry. It
// panics when the registry has no default; a registry is presumed
// defaulted by the callers that use this, so absence is a contract
// violation rather than a lookup miss.
func (r *Registry[T]) DefaultEntry() (int, *Holder[T]) {
	if r.def < 0 {
		panic(fmt.Sprintf("registry %s: no default entry", r.key.Value()))
	}
	return r.def, r.entries[r.def]
}

// Entries returns a snapshot of all holders in raw-id order.
func (r *Registry[T]) Entries() []*Holder[T] {
	out := make([]*Holder[T], len(r.entries))
	copy(out, r.entries)
	return out
}

// Value returns the value at the given raw id. It panics when the id is
// out of range; use ByRawID for lookups that may miss.
func (r *Registry[T]) Value(raw int) T {
	if raw < 0 || raw >= len(r.entries) {
		panic(fmt.Sprintf("registry %s: raw id %d out of range", r.key.Value(), raw))
	}
	return r.entries[raw].value
}

// RawID recovers the raw id of a registered value. The id the value
// accepted at freeze time is verified against the arena, so a value
// that was never registered here reports false rather than a stale or
// foreign id.
func RawID[T interface {
	Registration
	comparable
}](r *Registry[T], value T) (int, bool) {
	raw := value.RawID()
	if raw < 0 || raw >= len(r.entries) {
		return 0, false
	}
	if r.entries[raw].value != value {
		return 0, false
	}
	return raw, true
}

// Tag returns a key for the tag with the given identifier in this
// registry.
func (r *Registry[T]) Tag(id identifier.Identifier) tag.Key[T] {
	return tag.NewKey[T](r.key.Value(), id)
}

// BindTags replaces the registry's entire tag index with the given
// bindings. Every binding is validated first: a zero tag key, a tag
// belonging to another registry, or a raw id out of range fails the
// whole call and leaves the current index untouched. On success the
// map is swapped under the write lock and every holder's tag cache is
// rewritten in the same critical section, so readers observe either
// the whole old index or the whole new one.
//
// Raw-id sets are stored deduplicated in ascending order; holder tag
// lists are ordered by tag string form.
func (r *Registry[T]) BindTags(bindings map[tag.Key[T]][]int) error {
	fresh := make(map[tag.Key[T]][]int, len(bindings))
	for t, raws := range bindings {
		if t.IsZero() {
			return fmt.Errorf("registry %s: bind tags: zero tag key", r.key.Value())
		}
		if t.Registry() != r.key.Value() {
			return fmt.Errorf("registry %s: bind tags: tag %s belongs to registry %s",
				r.key.Value(), t.ID(), t.Registry())
		}
		set := make([]int, 0, len(raws))
		for _, raw := range raws {
			if raw < 0 || raw >= len(r.entries) {
				return fmt.Errorf("registry %s: bind tags: raw id %d out of range for tag %s",
					r.key.Value(), raw, t.ID())
			}
			set = append(set, raw)
		}
		sort.Ints(set)
		set = dedupeSorted(set)
		fresh[t] = set
	}

	holderTags := make([][]tag.Key[T], len(r.entries))
	for t, raws := range fresh {
		for _, raw := range raws {
			holderTags[raw] = append(holderTags[raw], t)
		}
	}
	for _, list := range holderTags {
		sort.Slice(list, func(i, j int) bool { return list[i].String() < list[j].String() })
	}

	r.mu.Lock()
	r.tags = fresh
	for i, h := range r.entries {
		h.setTags(holderTags[i])
	}
	r.mu.Unlock()
	return nil
}

// Tagged returns the holders belonging to the given tag, in raw-id
// order. An unknown tag yields an empty slice.
func (r *Registry[T]) Tagged(t tag.Key[T]) []*Holder[T] {
	r.mu.RLock()
	raws := r.tags[t]
	out := make([]*Holder[T], len(raws))
	for i, raw := range raws {
		out[i] = r.entries[raw]
	}
	r.mu.RUnlock()
	return out
}

// TagKeys returns all tags currently bound in this registry, sorted by
// string form.
func (r *Registry[T]) TagKeys() []tag.Key[T] {
	r.mu.RLock()
	out := make([]tag.Key[T], 0, len(r.tags))
	for t := range r.tags {
		out = append(out, t)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func dedupeSorted(raws []int) []int {
	if len(raws) < 2 {
		return raws
	}
	out := raws[:1]
	for _, raw := range raws[1:] {
		if raw != out[len(out)-1] {
			out = append(out, raw)
		}
	}
	return out
}
