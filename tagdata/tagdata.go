/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tagdata

import (
	"context"

	"github.com/suparena/registrystore/identifier"
)

// File is one tag definition document: the entries grouped under a tag,
// and whether this document replaces definitions of the same tag from
// earlier sources instead of adding to them.
type File struct {
	// Replace discards values collected from earlier sources for this
	// tag when true.
	Replace bool `json:"replace,omitempty" yaml:"replace,omitempty"`

	// Values lists the entries belonging to the tag, in "namespace:path"
	// identifier form.
	Values []string `json:"values" yaml:"values"`
}

// Source loads a complete set of tag definitions keyed by tag
// identifier. Implementations may read from the filesystem, a database
// or anything else; Load is expected to do I/O and honors the context.
type Source interface {
	Load(ctx context.Context) (map[identifier.Identifier]File, error)
}
