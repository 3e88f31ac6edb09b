/*
Package ddb provides a DynamoDB implementation of the tagdata.Source interface.

The Source reads the tag definitions of one registry from a single-table
layout:
  - All tags of a registry share one partition (e.g., "TAG#arena:materials")
  - Each item's sort key is the tag identifier (e.g., "arena:mineable")
  - The payload lives in the Replace (BOOL) and Values (L of S) attributes

Key Layout:

The attribute names and the partition prefix are configurable through a
KeyScheme; DefaultKeyScheme matches tables provisioned with the standard
template:

	PK (S)  | SK (S)           | Replace (BOOL) | Values (L)
	--------+------------------+----------------+---------------------------
	TAG#arena:materials | arena:mineable | false | ["arena:stone", "arena:iron"]

Loading:

A Source pages through the partition with configurable options and decodes
every item into a tag definition:

	client, err := ddb.NewClient(accessKey, secretKey, region)
	if err != nil {
	    return err
	}

	src := ddb.NewSource(client, table, identifier.MustParse("arena:materials"),
	    ddb.WithPageSize(25),
	    ddb.WithMaxRetries(5),
	)

	defs, err := src.Load(ctx)

Transient DynamoDB failures (throttling, internal errors) are retried with
linear backoff; everything else fails the load immediately.

Connection settings can also be read from the environment (AWS_ACCESS_KEY,
AWS_SECRET_KEY, AWS_REGION, AWS_DDB_TABLE) via ConfigFromEnv.
*/
package ddb
