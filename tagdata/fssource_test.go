/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tagdata

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
)

func TestFSSourceLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"arena/mineable.json": &fstest.MapFile{
			Data: []byte(`{"values": ["arena:stone", "arena:iron"]}`),
		},
		"arena/mineable/pick.yaml": &fstest.MapFile{
			Data: []byte("replace: true\nvalues:\n  - arena:iron\n"),
		},
		"other/soft.yml": &fstest.MapFile{
			Data: []byte("values: [arena:dirt]\n"),
		},
		".hidden/ignored.json": &fstest.MapFile{
			Data: []byte(`not even json`),
		},
		"arena/.keep": &fstest.MapFile{
			Data: []byte(``),
		},
	}

	defs, err := NewFSSource(fsys).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}

	flat, ok := defs[identifier.MustParse("arena:mineable")]
	if !ok {
		t.Fatal("expected arena:mineable to be defined")
	}
	if flat.Replace || len(flat.Values) != 2 {
		t.Errorf("unexpected definition for arena:mineable: %+v", flat)
	}

	nested, ok := defs[identifier.MustParse("arena:mineable/pick")]
	if !ok {
		t.Fatal("expected arena:mineable/pick to be defined")
	}
	if !nested.Replace || len(nested.Values) != 1 || nested.Values[0] != "arena:iron" {
		t.Errorf("unexpected definition for arena:mineable/pick: %+v", nested)
	}

	if _, ok := defs[identifier.MustParse("other:soft")]; !ok {
		t.Error("expected other:soft to be defined")
	}
}

func TestFSSourceRejectsTopLevelFile(t *testing.T) {
	fsys := fstest.MapFS{
		"orphan.json": &fstest.MapFile{Data: []byte(`{"values": []}`)},
	}

	if _, err := NewFSSource(fsys).Load(context.Background()); err == nil {
		t.Error("expected file outside a namespace directory to fail")
	}
}

func TestFSSourceRejectsUnknownFormat(t *testing.T) {
	fsys := fstest.MapFS{
		"arena/bad.toml": &fstest.MapFile{Data: []byte(`values = []`)},
	}

	_, err := NewFSSource(fsys).Load(context.Background())
	if err == nil {
		t.Fatal("expected unknown format to fail")
	}
	if !errors.IsUnknownFormat(err) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestFSSourceRejectsDuplicateTag(t *testing.T) {
	fsys := fstest.MapFS{
		"arena/soft.json": &fstest.MapFile{Data: []byte(`{"values": []}`)},
		"arena/soft.yaml": &fstest.MapFile{Data: []byte("values: []\n")},
	}

	if _, err := NewFSSource(fsys).Load(context.Background()); err == nil {
		t.Error("expected two files defining the same tag to fail")
	}
}

func TestFSSourceRejectsInvalidIdentifier(t *testing.T) {
	fsys := fstest.MapFS{
		"arena/Bad Name.json": &fstest.MapFile{Data: []byte(`{"values": []}`)},
	}

	_, err := NewFSSource(fsys).Load(context.Background())
	if err == nil {
		t.Fatal("expected invalid identifier path to fail")
	}
	if !errors.IsInvalidIdentifier(err) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestFSSourceReportsDecodeErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"arena/broken.json": &fstest.MapFile{Data: []byte(`{"values": [`)},
	}

	if _, err := NewFSSource(fsys).Load(context.Background()); err == nil {
		t.Error("expected malformed file to fail")
	}
}

func TestFSSourceHonorsContext(t *testing.T) {
	fsys := fstest.MapFS{
		"arena/soft.json": &fstest.MapFile{Data: []byte(`{"values": []}`)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFSSource(fsys).Load(ctx); err == nil {
		t.Error("expected canceled context to abort the load")
	}
}
