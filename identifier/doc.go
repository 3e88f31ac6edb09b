/*
Package identifier provides the namespaced name type used as the stable
external key for registry entries.

An Identifier pairs a namespace with a path, rendered as "namespace:path":

	id, err := identifier.New("arena", "table/center")
	id := identifier.MustParse("arena:table/center")
	id := identifier.MustParse("stone") // namespace defaults to "default"

Both parts are validated at construction: lowercase letters, digits and
the characters '_', '-', '.' are allowed, plus '/' in the path. Invalid
input fails with errors.ErrInvalidIdentifier; nothing is normalized or
coerced.

Identifier implements encoding.TextMarshaler and TextUnmarshaler, so it
can be used directly as a JSON or YAML string value and as a map key in
serialized documents.
*/
package identifier
