/*
Package freeze provides a generic one-shot transition from a mutable
seed value to an immutable built value.

A Freezer starts open, holding a seed of type M. Calling Freeze consumes
the seed exactly once, builds an immutable value of type I through the
Freezable contract, and seals the cell; after that Get returns the built
value on every call without locking.

	f := freeze.New[*Registry, BuildOpts](builder)
	f.Edit(func(b *Builder) { b.Register(...) })
	f.Freeze(BuildOpts{...})
	reg := f.Get()

While open, the seed is reached only through Edit, which shares the
lock with Freeze so edits and the freeze hand-off never interleave.

The state machine is strictly one way. Freezing a sealed Freezer,
editing a sealed one, and reading an open one are programming errors
and panic; IsFrozen is the guard for callers that cannot know the
state.

Types that are already immutable can be frozen into themselves through
the Identity adapter:

	f := freeze.NewIdentity(config)
	f.Freeze(struct{}{})
	cfg := f.Get()
*/
package freeze
