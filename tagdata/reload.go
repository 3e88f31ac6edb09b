/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tagdata

import (
	"context"
	"fmt"

	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/registry"
	"github.com/suparena/registrystore/registry/tag"
)

// Merge combines definition sets in order into one entry per tag. A
// definition with Replace set discards the values collected for that
// tag from earlier sets; otherwise its values append in order. The
// merged files carry Replace cleared.
func Merge(sets ...map[identifier.Identifier]File) map[identifier.Identifier]File {
	out := make(map[identifier.Identifier]File)
	for _, set := range sets {
		for id, f := range set {
			merged := out[id]
			if f.Replace {
				merged.Values = append([]string(nil), f.Values...)
			} else {
				merged.Values = append(merged.Values, f.Values...)
			}
			out[id] = merged
		}
	}
	return out
}

// Apply resolves a definition set against a registry and installs it as
// the registry's complete tag index. Every value must parse as an
// identifier and name a registered entry; the first failure aborts the
// apply with nothing bound, leaving the registry's current tags in
// place. Repeated values collapse to one membership.
func Apply[T registry.Registration](r *registry.Registry[T], defs map[identifier.Identifier]File) error {
	bindings := make(map[tag.Key[T]][]int, len(defs))
	for tagID, def := range defs {
		raws := make([]int, 0, len(def.Values))
		for _, value := range def.Values {
			vid, err := identifier.Parse(value)
			if err != nil {
				return fmt.Errorf("tag %s: %w", tagID, err)
			}
			raw, _, ok := r.ByID(vid)
			if !ok {
				return fmt.Errorf("tag %s: %w", tagID, errors.NewNotFoundError("registry entry", vid.String()))
			}
			raws = append(raws, raw)
		}
		bindings[r.Tag(tagID)] = raws
	}
	return r.BindTags(bindings)
}

// Reload loads every source in order, merges the definition sets and
// applies the result to the registry as one atomic tag-index
// replacement.
func Reload[T registry.Registration](ctx context.Context, r *registry.Registry[T], sources ...Source) error {
	sets := make([]map[identifier.Identifier]File, 0, len(sources))
	for _, src := range sources {
		defs, err := src.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading tag definitions: %w", err)
		}
		sets = append(sets, defs)
	}
	return Apply(r, Merge(sets...))
}
