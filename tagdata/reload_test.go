/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tagdata

import (
	"context"
	stderrors "errors"
	"testing"
	"testing/fstest"

	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
	"github.com/suparena/registrystore/registry"
	"github.com/suparena/registrystore/registry/testmodels"
)

func newMaterialRegistry(t *testing.T, names ...string) *registry.Registry[*testmodels.Material] {
	t.Helper()
	b := registry.NewBuilder[*testmodels.Material]()
	for _, name := range names {
		if _, err := b.Register(testmodels.NewMaterial(name), identifier.MustParse("arena:"+name)); err != nil {
			t.Fatalf("unexpected error registering %q: %v", name, err)
		}
	}
	return b.Freeze(registry.FreezeOpts[*testmodels.Material]{
		Key: registry.KeyOfRegistry[*testmodels.Material](identifier.MustParse("arena:materials")),
	})
}

func TestMerge(t *testing.T) {
	mineable := identifier.MustParse("arena:mineable")
	soft := identifier.MustParse("arena:soft")

	base := map[identifier.Identifier]File{
		mineable: {Values: []string{"arena:stone"}},
		soft:     {Values: []string{"arena:dirt"}},
	}
	overlay := map[identifier.Identifier]File{
		mineable: {Values: []string{"arena:iron"}},
		soft:     {Replace: true, Values: []string{"arena:sand"}},
	}

	merged := Merge(base, overlay)

	got := merged[mineable]
	if len(got.Values) != 2 || got.Values[0] != "arena:stone" || got.Values[1] != "arena:iron" {
		t.Errorf("expected appended values for mineable, got %v", got.Values)
	}

	got = merged[soft]
	if len(got.Values) != 1 || got.Values[0] != "arena:sand" {
		t.Errorf("expected replace to discard earlier values, got %v", got.Values)
	}

	// Merging must not alias the input slices.
	merged[mineable].Values[0] = "changed"
	if base[mineable].Values[0] != "arena:stone" {
		t.Error("expected merge output to be independent of its inputs")
	}
}

func TestApplyBindsResolvedTags(t *testing.T) {
	reg := newMaterialRegistry(t, "stone", "dirt", "iron")

	err := Apply(reg, map[identifier.Identifier]File{
		identifier.MustParse("arena:mineable"): {Values: []string{"arena:stone", "arena:iron", "arena:stone"}},
		identifier.MustParse("arena:soft"):     {Values: []string{"arena:dirt"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mineable := reg.Tag(identifier.MustParse("arena:mineable"))
	tagged := reg.Tagged(mineable)
	if len(tagged) != 2 {
		t.Fatalf("expected repeated values to collapse, got %d entries", len(tagged))
	}

	_, stone, _ := reg.ByID(identifier.MustParse("arena:stone"))
	if !stone.IsIn(mineable) {
		t.Error("expected stone holder cache to agree with the tag index")
	}
}

func TestApplyUnknownValueBindsNothing(t *testing.T) {
	reg := newMaterialRegistry(t, "stone")
	mineable := reg.Tag(identifier.MustParse("arena:mineable"))

	if err := Apply(reg, map[identifier.Identifier]File{
		identifier.MustParse("arena:mineable"): {Values: []string{"arena:stone"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Apply(reg, map[identifier.Identifier]File{
		identifier.MustParse("arena:mineable"): {Values: []string{"arena:stone", "arena:unobtainium"}},
	})
	if err == nil {
		t.Fatal("expected unknown value to fail the apply")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// The failed apply left the previous bindings live.
	if got := len(reg.Tagged(mineable)); got != 1 {
		t.Errorf("expected previous binding to survive, got %d entries", got)
	}
}

func TestApplyRejectsUnparsableValue(t *testing.T) {
	reg := newMaterialRegistry(t, "stone")

	err := Apply(reg, map[identifier.Identifier]File{
		identifier.MustParse("arena:mineable"): {Values: []string{"Not An Identifier"}},
	})
	if err == nil {
		t.Fatal("expected unparsable value to fail")
	}
	if !errors.IsInvalidIdentifier(err) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestApplyEmptySetClearsTags(t *testing.T) {
	reg := newMaterialRegistry(t, "stone")
	mineable := reg.Tag(identifier.MustParse("arena:mineable"))

	if err := Apply(reg, map[identifier.Identifier]File{
		identifier.MustParse("arena:mineable"): {Values: []string{"arena:stone"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Apply(reg, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(reg.Tagged(mineable)); got != 0 {
		t.Errorf("expected empty apply to clear all tags, got %d entries", got)
	}
	if got := len(reg.TagKeys()); got != 0 {
		t.Errorf("expected no tag keys after empty apply, got %d", got)
	}
}

func TestReloadStacksSources(t *testing.T) {
	reg := newMaterialRegistry(t, "stone", "dirt", "iron")

	base := fstest.MapFS{
		"arena/mineable.json": &fstest.MapFile{
			Data: []byte(`{"values": ["arena:stone"]}`),
		},
		"arena/soft.json": &fstest.MapFile{
			Data: []byte(`{"values": ["arena:dirt"]}`),
		},
	}
	overlay := fstest.MapFS{
		"arena/mineable.yaml": &fstest.MapFile{
			Data: []byte("values: [arena:iron]\n"),
		},
		"arena/soft.yaml": &fstest.MapFile{
			Data: []byte("replace: true\nvalues: [arena:iron]\n"),
		},
	}

	err := Reload(context.Background(), reg, NewFSSource(base), NewFSSource(overlay))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mineable := reg.Tagged(reg.Tag(identifier.MustParse("arena:mineable")))
	if len(mineable) != 2 {
		t.Errorf("expected stacked mineable values, got %d entries", len(mineable))
	}

	soft := reg.Tagged(reg.Tag(identifier.MustParse("arena:soft")))
	if len(soft) != 1 {
		t.Fatalf("expected replace to win for soft, got %d entries", len(soft))
	}
	if got := soft[0].Key().Value(); got != identifier.MustParse("arena:iron") {
		t.Errorf("expected soft to hold arena:iron, got %v", got)
	}
}

func TestReloadPropagatesSourceErrors(t *testing.T) {
	reg := newMaterialRegistry(t, "stone")
	boom := stderrors.New("source exploded")

	err := Reload(context.Background(), reg, failingSource{err: boom})
	if err == nil {
		t.Fatal("expected source error to propagate")
	}
	if !stderrors.Is(err, boom) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
}

type failingSource struct {
	err error
}

func (s failingSource) Load(context.Context) (map[identifier.Identifier]File, error) {
	return nil, s.err
}
