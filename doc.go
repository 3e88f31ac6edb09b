/*
Package registrystore provides a registration and freeze-once lifecycle engine
for keyed object collections, offering type-safe registries with dense raw ids,
namespaced identifiers, and concurrently reloadable tag membership.

The library follows a register → freeze → read workflow:
  - Registration phase: values are staged in a builder, one at a time
  - Freeze: the builder is consumed exactly once and the immutable registry is sealed
  - Read phase: lock-free lookups by identifier, key, or raw id

Key Features:
  - Type-safe registries using Go generics
  - Three mutually consistent indices (raw id, identifier, registry key)
  - One-shot freeze lifecycle with panics on misuse
  - Tag membership reloadable at runtime from files or DynamoDB
  - Semantic error types for better error handling
  - Thread-safe registry management
  - Mock tag sources for testing

Basic Usage:

	// Create a manager and a freezer for a registry of materials
	m := registrystore.NewManager()
	materials := registry.NewFreezer[*Material]()
	registrystore.Attach(m, identifier.MustParse("arena:materials"), materials)

	// Register values during startup
	registry.Register(materials, NewMaterial("stone"), identifier.MustParse("arena:stone"))
	registry.Register(materials, NewMaterial("iron"), identifier.MustParse("arena:iron"))

	// Freeze once; the registry becomes immutable and readable without locks
	materials.Freeze(registry.FreezeOpts[*Material]{
	    Key:     registry.KeyOfRegistry[*Material](identifier.MustParse("arena:materials")),
	    Default: identifier.MustParse("arena:stone"),
	})

	// Read phase
	reg := materials.Get()
	_, holder, ok := reg.ByID(identifier.MustParse("arena:iron"))

Tag membership stays mutable after the freeze and is replaced atomically
from tag definition sources:

	src := tagdata.NewFSSource(os.DirFS("data/tags/materials"))
	err := tagdata.Reload(ctx, reg, src)

For more information, see the documentation at https://github.com/suparena/registrystore
*/
package registrystore
