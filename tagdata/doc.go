/*
Package tagdata loads tag definitions from external sources and applies
them to a frozen registry.

Tag membership is the one axis of a registry that keeps changing after
the freeze. This package owns the reload protocol: definitions are
loaded from one or more sources, merged in source order, resolved
against the registry, and installed in a single atomic replacement of
the registry's tag index.

A tag definition file groups entry identifiers under a tag:

	{
	    "replace": false,
	    "values": ["arena:stone", "arena:dirt"]
	}

The same document in YAML works too; decoders are looked up by file
extension and custom formats can be added with RegisterFormat. With the
FSSource layout the file's path names the tag: a file at
arena/mineable/pick.json in the tree defines the tag
"arena:mineable/pick".

Sources stack like layered data packs. Within Merge, a later definition
with replace set discards the values collected so far for that tag;
otherwise values append:

	defs, _ := tagdata.NewFSSource(base).Load(ctx)
	over, _ := tagdata.NewFSSource(overlay).Load(ctx)
	err := tagdata.Apply(reg, tagdata.Merge(defs, over))

or in one step:

	err := tagdata.Reload(ctx, reg, tagdata.NewFSSource(base), tagdata.NewFSSource(overlay))

Apply is all-or-nothing: an unparsable value or one naming an entry the
registry does not contain fails the whole reload and the previous tag
bindings stay live.
*/
package tagdata
