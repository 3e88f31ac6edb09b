/*
Package registry implements the registration and freeze-once lifecycle
for named, typed entries.

A registry is populated during setup through a Builder and then frozen
exactly once into an immutable Registry. After the freeze every entry is
reachable by raw id (its position in registration order), by identifier,
and by typed key, and the three indices always agree.
Tag membership is the one axis that stays mutable, behind its own lock.

Value types take part by implementing Registration with pointer
receivers; the freeze assigns each value its raw id in insertion order:

	type Block struct {
	    rawID int
	    Name  string
	}

	func (b *Block) AcceptRawID(id int) { b.rawID = id }
	func (b *Block) RawID() int         { return b.rawID }

The usual flow runs through a Freezer, which owns the builder while
open and the registry once sealed:

	blocks := registry.NewFreezer[*Block]()
	key := registry.KeyOfRegistry[*Block](identifier.MustParse("arena:blocks"))

	raw, err := registry.Register(blocks, &Block{Name: "stone"}, identifier.MustParse("arena:stone"))
	if err != nil {
	    // duplicate or invalid identifier
	}

	blocks.Freeze(registry.FreezeOpts[*Block]{
	    Key:     key,
	    Default: identifier.MustParse("arena:stone"),
	})

	reg := blocks.Get()
	raw, holder, ok := reg.ByID(identifier.MustParse("arena:stone"))

Duplicate registration is an error and leaves the builder unchanged. A
configured default that never got registered is not an error: the
registry simply reports IsDefaulted() == false, and DefaultEntry panics.

Tag membership is replaced wholesale through BindTags, typically by a
tag-data reload. Readers through Tagged, TagKeys and Holder.IsIn see
either the complete old binding set or the complete new one, never a
partial update.
*/
package registry
