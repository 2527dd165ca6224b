package utils

import (
	"strings"
)

// SQLBuilder provides a fluent interface for building Postgres DDL statements.
// It handles identifier quoting and conditional clauses so the SQL emitter can
// describe each statement as a chain of parts.
//
// Example usage:
//
//	sql := utils.NewSQLBuilder().
//		Alter("TABLE").
//		Name("users").
//		Raw("DROP CONSTRAINT").
//		Name("PK_users").
//		String()
//	// Output: ALTER TABLE "users" DROP CONSTRAINT "PK_users";
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 10),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("TABLE")      // CREATE TABLE
//	builder.Create("EXTENSION")  // CREATE EXTENSION
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// CreateOrReplace adds a CREATE OR REPLACE clause with the specified object type.
//
// Example:
//
//	builder.CreateOrReplace("TRIGGER")  // CREATE OR REPLACE TRIGGER
func (b *SQLBuilder) CreateOrReplace(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", "OR", "REPLACE", objectType)
	return b
}

// Drop adds a DROP clause with the specified object type.
//
// Example:
//
//	builder.Drop("INDEX")  // DROP INDEX
func (b *SQLBuilder) Drop(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "DROP", objectType)
	return b
}

// Alter adds an ALTER clause with the specified object type.
//
// Example:
//
//	builder.Alter("TABLE")     // ALTER TABLE
//	builder.Alter("DATABASE")  // ALTER DATABASE
func (b *SQLBuilder) Alter(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "ALTER", objectType)
	return b
}

// IfNotExists adds an IF NOT EXISTS clause. This should be called after CREATE operations.
//
// Example:
//
//	builder.Create("EXTENSION").IfNotExists()  // CREATE EXTENSION IF NOT EXISTS
func (b *SQLBuilder) IfNotExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "NOT", "EXISTS")
	return b
}

// Name adds a double-quoted object name.
//
// Example:
//
//	builder.Name("users")     // "users"
//	builder.Name("parentId")  // "parentId"
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, QuoteIdentifier(name))
	}
	return b
}

// Columns adds a parenthesized list of quoted column names.
//
// Example:
//
//	builder.Columns([]string{"tenantId", "id"})  // ("tenantId", "id")
func (b *SQLBuilder) Columns(names []string) *SQLBuilder {
	b.parts = append(b.parts, "("+QuoteIdentifiers(names)+")")
	return b
}

// Parens adds a parenthesized raw expression, skipping empty expressions.
//
// Example:
//
//	builder.Raw("CHECK").Parens(`"id" > 0`)  // CHECK ("id" > 0)
func (b *SQLBuilder) Parens(expression string) *SQLBuilder {
	if expression != "" {
		b.parts = append(b.parts, "("+expression+")")
	}
	return b
}

// Escaped adds a single-quoted SQL string value.
//
// Example:
//
//	builder.Raw("IS").Escaped("User's name")  // IS 'User''s name'
func (b *SQLBuilder) Escaped(value string) *SQLBuilder {
	b.parts = append(b.parts, QuoteString(value))
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for constructs that don't fit
// the fluent pattern.
//
// Example:
//
//	builder.Raw("DROP NOT NULL")  // DROP NOT NULL
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// RawIf adds raw SQL text only when cond is true.
//
// Example:
//
//	builder.Raw("CREATE").RawIf(index.Unique, "UNIQUE").Raw("INDEX")
func (b *SQLBuilder) RawIf(cond bool, sql string) *SQLBuilder {
	if cond {
		return b.Raw(sql)
	}
	return b
}

// String builds and returns the final SQL statement with a semicolon.
//
// Example:
//
//	sql := builder.Drop("TABLE").Name("users").String()
//	// Returns: `DROP TABLE "users";`
func (b *SQLBuilder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	return strings.Join(b.parts, " ") + ";"
}

// StringWithoutSemicolon builds and returns the final SQL statement without a semicolon.
// Useful for building parts of larger statements.
func (b *SQLBuilder) StringWithoutSemicolon() string {
	return strings.Join(b.parts, " ")
}
