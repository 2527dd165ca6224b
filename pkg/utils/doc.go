// Package utils provides common utility functions used throughout the sqltools codebase.
//
// This package contains shared helpers used by the schema model, the diff engine and
// the SQL emitter. None of them hold state; every configuration value is passed in.
//
// # Identifier Utilities (identifier.go)
//
// Postgres identifiers are double-quoted with lib/pq so names containing upper case
// letters or reserved words survive round trips:
//
//	utils.QuoteIdentifier("parentId")              // "parentId"
//	utils.QuoteIdentifiers([]string{"a", "b"})     // "a", "b"
//	utils.SnakeCase("createdAt")                   // created_at
//
// # Naming Utilities (naming.go)
//
// Constraint, index and trigger names are derived from a sha1 of the table name and
// the sorted column names, truncated to 30 characters:
//
//	utils.PrimaryKeyName("users", []string{"id"})        // PK_...
//	utils.IndexName("users", []string{"email"}, "")      // IDX_...
//
// # Hash Utilities (hash.go)
//
// Function definitions embed their own content hash in a "-- sql-tools-hash=" comment,
// which lets the diff engine detect changes without comparing full text:
//
//	hash, ok := utils.ExtractFunctionHash(definition)
//
// # Value Utilities (value.go)
//
// SQLValue renders typed defaults as SQL literals:
//
//	utils.SQLValue(true)        // true
//	utils.SQLValue("pending")   // 'pending'
//	utils.SQLValue(utils.Null)  // null
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder is a small fluent builder used by the format package:
//
//	utils.NewSQLBuilder().Drop("TYPE").Name("status").String()
//	// DROP TYPE "status";
package utils
