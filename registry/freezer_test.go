/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/suparena/registrystore/errors"
	"github.com/suparena/registrystore/identifier"
)

func TestFreezerLifecycle(t *testing.T) {
	f := NewFreezer[*block]()
	if f.IsFrozen() {
		t.Fatal("expected new freezer to be open")
	}

	for i, name := range []string{"stone", "dirt"} {
		raw, err := Register(f, newBlock(name), identifier.MustParse("arena:"+name))
		if err != nil {
			t.Fatalf("unexpected error registering %q: %v", name, err)
		}
		if raw != i {
			t.Errorf("expected raw id %d for %q, got %d", i, name, raw)
		}
	}

	if _, err := Register(f, newBlock("other"), identifier.MustParse("arena:stone")); !errors.IsAlreadyRegistered(err) {
		t.Errorf("expected duplicate registration through the freezer to fail, got %v", err)
	}

	f.Freeze(FreezeOpts[*block]{
		Key:     KeyOfRegistry[*block](identifier.MustParse("arena:blocks")),
		Default: identifier.MustParse("arena:stone"),
	})

	if !f.IsFrozen() {
		t.Fatal("expected freezer to be frozen")
	}

	reg := f.Get()
	if reg.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", reg.Len())
	}
	raw, h, ok := reg.ByID(identifier.MustParse("arena:dirt"))
	if !ok || raw != 1 || h.Value().name != "dirt" {
		t.Errorf("unexpected lookup result (%d, %v, %v)", raw, h, ok)
	}
	if defRaw, _ := reg.DefaultEntry(); defRaw != 0 {
		t.Errorf("expected default entry 0, got %d", defRaw)
	}
}

func TestFreezerFreezeTwicePanics(t *testing.T) {
	f := NewFreezer[*block]()
	if _, err := Register(f, newBlock("stone"), identifier.MustParse("arena:stone")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := FreezeOpts[*block]{Key: KeyOfRegistry[*block](identifier.MustParse("arena:blocks"))}
	f.Freeze(opts)
	first := f.Get()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected second Freeze to panic")
			}
		}()
		f.Freeze(opts)
	}()

	if f.Get() != first {
		t.Error("expected sealed registry to remain the first freeze result")
	}
}

func TestRegisterAfterFreezePanics(t *testing.T) {
	f := NewFreezer[*block]()
	f.Freeze(FreezeOpts[*block]{Key: KeyOfRegistry[*block](identifier.MustParse("arena:blocks"))})

	defer func() {
		if recover() == nil {
			t.Error("expected registration after freeze to panic")
		}
	}()
	Register(f, newBlock("late"), identifier.MustParse("arena:late"))
}

func TestFreezerGetBeforeFreezePanics(t *testing.T) {
	f := NewFreezer[*block]()

	defer func() {
		if recover() == nil {
			t.Error("expected Get on open freezer to panic")
		}
	}()
	f.Get()
}
