/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package identifier

import (
	"strings"

	"github.com/suparena/registrystore/errors"
)

// DefaultNamespace is the namespace assumed by Parse when the input
// contains no ':' separator.
const DefaultNamespace = "default"

// Identifier is a validated two-part namespaced name. The namespace and
// path are restricted to [a-z0-9_.-], with '/' additionally allowed in
// the path, and both must be non-empty.
//
// Identifier is a comparable value type: equality and map-key behavior
// compare the (namespace, path) pair structurally. The zero value is
// invalid and never produced by a constructor; use IsZero to detect it.
type Identifier struct {
	namespace string
	path      string
}

// New creates an Identifier from its two parts. No normalization (case
// folding, trimming) is performed; invalid input is rejected as is.
func New(namespace, path string) (Identifier, error) {
	if namespace == "" {
		return Identifier{}, errors.NewInvalidIdentifierError(namespace+":"+path, "empty namespace")
	}
	if path == "" {
		return Identifier{}, errors.NewInvalidIdentifierError(namespace+":"+path, "empty path")
	}
	if !isNamespaceValid(namespace) {
		return Identifier{}, errors.NewInvalidIdentifierError(namespace+":"+path, "non [a-z0-9_.-] character in namespace")
	}
	if !isPathValid(path) {
		return Identifier{}, errors.NewInvalidIdentifierError(namespace+":"+path, "non [a-z0-9/._-] character in path")
	}
	return Identifier{namespace: namespace, path: path}, nil
}

// MustNew is like New but panics on invalid input. It is intended for
// identifiers written as literals in source code.
func MustNew(namespace, path string) Identifier {
	id, err := New(namespace, path)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse parses "namespace:path" text, splitting on the first ':'.
// When the separator is absent the namespace defaults to
// DefaultNamespace. Validation is delegated to New.
func Parse(text string) (Identifier, error) {
	if namespace, path, ok := strings.Cut(text, ":"); ok {
		return New(namespace, path)
	}
	return New(DefaultNamespace, text)
}

// MustParse is like Parse but panics on invalid input.
func MustParse(text string) Identifier {
	id, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}

// Namespace returns the namespace part.
func (id Identifier) Namespace() string {
	return id.namespace
}

// Path returns the path part.
func (id Identifier) Path() string {
	return id.path
}

// IsZero reports whether id is the zero value.
func (id Identifier) IsZero() bool {
	return id.namespace == "" && id.path == ""
}

// String renders the identifier as "namespace:path". The output of a
// valid Identifier always round-trips through Parse.
func (id Identifier) String() string {
	return id.namespace + ":" + id.path
}

// MarshalText implements encoding.TextMarshaler using the same
// "namespace:path" form as String, so identifiers serialize as plain
// strings in JSON and YAML documents.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func isNamespaceValid(namespace string) bool {
	for _, c := range namespace {
		if !isAllowed(c, false) {
			return false
		}
	}
	return true
}

func isPathValid(path string) bool {
	for _, c := range path {
		if !isAllowed(c, true) {
			return false
		}
	}
	return true
}

func isAllowed(c rune, allowSlash bool) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.':
		return true
	case c == '/':
		return allowSlash
	default:
		return false
	}
}
