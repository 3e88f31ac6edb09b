/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
)

func TestRegisterAssignsSequentialPositions(t *testing.T) {
	b := NewBuilder[*block]()

	for i, name := range []string{"a", "b", "c"} {
		raw, err := b.Register(newBlock(name), identifier.MustParse("arena:"+name))
		if err != nil {
			t.Fatalf("unexpected error registering %q: %v", name, err)
		}
		if raw != i {
			t.Errorf("expected position %d for %q, got %d", i, name, raw)
		}
	}

	if b.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", b.Len())
	}
}

func TestRegisterDuplicateFails(t *testing.T) {
	b := NewBuilder[*block]()

	if _, err := b.Register(newBlock("a"), identifier.MustParse("mod:a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := b.Register(newBlock("other"), identifier.MustParse("mod:a"))
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if !errors.IsAlreadyRegistered(err) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("expected builder unchanged after duplicate, got %d entries", b.Len())
	}
}

func TestRegisterZeroIdentifierFails(t *testing.T) {
	b := NewBuilder[*block]()

	var zero identifier.Identifier
	_, err := b.Register(newBlock("a"), zero)
	if err == nil {
		t.Fatal("expected zero identifier to be rejected")
	}
	if !errors.IsInvalidIdentifier(err) {
		t.Errorf("expected ErrInvalidIdentifier, got %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("expected builder unchanged, got %d entries", b.Len())
	}
}

func TestFreezeAssignsRawIDsInInsertionOrder(t *testing.T) {
	b := NewBuilder[*block]()
	blocks := []*block{newBlock("a"), newBlock("b"), newBlock("c")}
	for _, bl := range blocks {
		if _, err := b.Register(bl, identifier.MustParse("arena:"+bl.name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	reg := b.Freeze(FreezeOpts[*block]{
		Key: KeyOfRegistry[*block](identifier.MustParse("arena:blocks")),
	})

	for i, bl := range blocks {
		if bl.RawID() != i {
			t.Errorf("expected %q to accept raw id %d, got %d", bl.name, i, bl.RawID())
		}
	}

	h, ok := reg.ByRawID(1)
	if !ok {
		t.Fatal("expected raw id 1 to resolve")
	}
	if h.Value().name != "b" {
		t.Errorf("expected raw id 1 to hold %q, got %q", "b", h.Value().name)
	}
}

func TestFreezeBuildsConsistentIndices(t *testing.T) {
	b := NewBuilder[*block]()
	names := []string{"stone", "dirt", "table/center"}
	for _, name := range names {
		if _, err := b.Register(newBlock(name), identifier.MustParse("arena:"+name)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	regKey := KeyOfRegistry[*block](identifier.MustParse("arena:blocks"))
	reg := b.Freeze(FreezeOpts[*block]{Key: regKey})

	if reg.Key() != regKey {
		t.Errorf("unexpected registry key: %v", reg.Key())
	}
	if reg.Len() != len(names) {
		t.Fatalf("expected %d entries, got %d", len(names), reg.Len())
	}

	for i := 0; i < reg.Len(); i++ {
		h, ok := reg.ByRawID(i)
		if !ok {
			t.Fatalf("expected raw id %d to resolve", i)
		}

		rawByID, _, ok := reg.ByID(h.Key().Value())
		if !ok || rawByID != i {
			t.Errorf("id index disagrees at %d: got %d, ok=%v", i, rawByID, ok)
		}

		rawByKey, _, ok := reg.ByKey(h.Key())
		if !ok || rawByKey != i {
			t.Errorf("key index disagrees at %d: got %d, ok=%v", i, rawByKey, ok)
		}

		if h.Key().Registry() != identifier.MustParse("arena:blocks") {
			t.Errorf("holder key bound to wrong registry: %v", h.Key())
		}
	}
}
