/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tagdata

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/suparena/registrystore/identifier"
)

// FSSource loads tag definitions from a file tree. The first path
// element is the namespace and the rest, minus the extension, is the
// tag path, so "arena/mineable/pick.json" defines the tag
// "arena:mineable/pick". Files and directories whose name starts with
// '.' are skipped; any other file must have a registered format.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource returns a source reading from the given filesystem root.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Load walks the tree and decodes every tag definition file. Two files
// defining the same tag (for example a .json next to a .yaml) are an
// error; so is a file outside a namespace directory.
func (s *FSSource) Load(ctx context.Context) (map[identifier.Identifier]File, error) {
	defs := make(map[identifier.Identifier]File)

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && p != "." {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := tagIDFromPath(p)
		if err != nil {
			return err
		}
		decode, err := GetDecoder(path.Ext(p))
		if err != nil {
			return fmt.Errorf("tag file %s: %w", p, err)
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return fmt.Errorf("tag file %s: %w", p, err)
		}
		f, err := decode(data)
		if err != nil {
			return fmt.Errorf("tag file %s: %w", p, err)
		}

		if _, dup := defs[id]; dup {
			return fmt.Errorf("tag file %s: duplicate definition for tag %s", p, id)
		}
		defs[id] = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// tagIDFromPath derives the tag identifier from a file path relative to
// the source root.
func tagIDFromPath(p string) (identifier.Identifier, error) {
	trimmed := strings.TrimSuffix(p, path.Ext(p))
	namespace, rest, ok := strings.Cut(trimmed, "/")
	if !ok {
		return identifier.Identifier{}, fmt.Errorf("tag file %s: not under a namespace directory", p)
	}
	id, err := identifier.New(namespace, rest)
	if err != nil {
		return identifier.Identifier{}, fmt.Errorf("tag file %s: %w", p, err)
	}
	return id, nil
}
