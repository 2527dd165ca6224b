package utils

import (
	"crypto/sha1" //nolint:gosec // matches the naming scheme of existing databases, not used for security
	"encoding/hex"
	"slices"
	"strings"
)

// maxKeyLength is the length generated names are truncated to.
const maxKeyLength = 30

// Name prefixes for generated identifiers.
const (
	PrimaryKeyPrefix  = "PK_"
	ForeignKeyPrefix  = "FK_"
	RelationKeyPrefix = "REL_"
	UniquePrefix      = "UQ_"
	CheckPrefix       = "CHK_"
	IndexPrefix       = "IDX_"
	TriggerPrefix     = "TR_"
)

// SHA1 returns the hex encoded sha1 digest of value.
func SHA1(value string) string {
	sum := sha1.Sum([]byte(value)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// Key generates a deterministic identifier for the given table and values. The values
// are sorted before hashing so the result doesn't depend on declaration order, and the
// result (prefix included) is truncated to 30 characters. This is the same scheme
// TypeORM uses, which keeps names stable for databases originally created by it.
//
// Example:
//
//	name := utils.Key("PK_", "users", []string{"id"})
//	// Result: "PK_" followed by the first 27 hex characters of sha1("users_id")
func Key(prefix, table string, values []string) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	key := prefix + SHA1(table+"_"+strings.Join(sorted, "_"))
	if len(key) > maxKeyLength {
		key = key[:maxKeyLength]
	}

	return key
}

// PrimaryKeyName generates the name of a primary key constraint.
func PrimaryKeyName(table string, columns []string) string {
	return Key(PrimaryKeyPrefix, table, columns)
}

// ForeignKeyName generates the name of a foreign key constraint.
func ForeignKeyName(table string, columns []string) string {
	return Key(ForeignKeyPrefix, table, columns)
}

// RelationKeyName generates the name of the unique constraint backing a one-to-one relation.
func RelationKeyName(table string, columns []string) string {
	return Key(RelationKeyPrefix, table, columns)
}

// UniqueName generates the name of a unique constraint.
func UniqueName(table string, columns []string) string {
	return Key(UniquePrefix, table, columns)
}

// CheckName generates the name of a check constraint from its expression.
func CheckName(table, expression string) string {
	return Key(CheckPrefix, table, []string{expression})
}

// IndexName generates the name of an index from its columns and optional where clause.
func IndexName(table string, columns []string, where string) string {
	items := slices.Clone(columns)
	if where != "" {
		items = append(items, where)
	}

	return Key(IndexPrefix, table, items)
}

// TriggerName generates the name of a trigger from its definition. actions, scope and
// timing are expected in their lowercase form (e.g. "insert", "row", "before").
func TriggerName(table string, actions []string, scope, timing, functionName string) string {
	items := slices.Clone(actions)
	items = append(items, scope, timing, functionName)
	return Key(TriggerPrefix, table, items)
}
