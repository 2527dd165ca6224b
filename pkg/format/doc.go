// Package format renders schemadiff records as Postgres DDL.
//
// Every record renders to one or more semicolon-terminated statements. Identifiers are
// double-quoted and string literals single-quoted; expressions carried by the schema
// (defaults, check expressions, where clauses, function bodies) are emitted verbatim.
//
// Usage:
//
//	diffs := schemadiff.GenerateDiff(source, target, schemadiff.Options{})
//
//	// Functional API
//	statements := format.Render(diffs, format.Defaults)
//
//	// Object-oriented API
//	formatter := format.New(format.Options{Comments: true})
//	statements := formatter.Statements(diffs...)
//
//	// Write one statement per line
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, diffs...)
//
// With Comments enabled, the reason attached to each record is appended to every
// statement it renders:
//
//	DROP INDEX "IDX_users_email"; -- where clause is different (...)
package format
