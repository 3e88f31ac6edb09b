/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"github.com/suparena/registrystore/identifier"
)

// KeyScheme holds the attribute layout for tag definition items
type KeyScheme struct {
	// PartitionKeyName is the partition key attribute name in the table (e.g., "PK")
	PartitionKeyName string
	// SortKeyName is the sort key attribute name in the table (e.g., "SK")
	SortKeyName string
	// PartitionPrefix is prepended to the registry identifier to form the partition key value (e.g., "TAG#")
	PartitionPrefix string
}

// DefaultKeyScheme is the layout used by tables provisioned with the standard template:
// one item per tag, partitioned by registry, with the tag identifier as the sort key.
var DefaultKeyScheme = KeyScheme{
	PartitionKeyName: "PK",
	SortKeyName:      "SK",
	PartitionPrefix:  "TAG#",
}

// PartitionValue returns the partition key value holding all tag items of a registry
func (ks KeyScheme) PartitionValue(registry identifier.Identifier) string {
	return ks.PartitionPrefix + registry.String()
}
