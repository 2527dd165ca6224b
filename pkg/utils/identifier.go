package utils

import (
	"regexp"
	"strings"

	"github.com/lib/pq"
)

var snakeCaseBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// QuoteIdentifier wraps a Postgres identifier in double quotes, escaping any
// embedded quotes.
//
// Examples:
//   - "users" -> "\"users\""
//   - "parentId" -> "\"parentId\""
//   - "odd\"name" -> "\"odd\"\"name\""
//   - "" -> ""
func QuoteIdentifier(name string) string {
	if name == "" {
		return ""
	}

	return pq.QuoteIdentifier(name)
}

// QuoteIdentifiers quotes each identifier and joins them into a comma separated list
// suitable for column lists in constraint and index definitions.
//
// Examples:
//   - ["id"] -> "\"id\""
//   - ["tenantId", "id"] -> "\"tenantId\", \"id\""
func QuoteIdentifiers(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, QuoteIdentifier(name))
	}

	return strings.Join(quoted, ", ")
}

// QuoteString wraps a value in single quotes, doubling any embedded single quotes.
//
// Examples:
//
//	utils.QuoteString("hello") // 'hello'
//	utils.QuoteString("it's")  // 'it''s'
func QuoteString(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// SnakeCase converts a camelCase identifier into snake_case.
//
// Examples:
//   - "createdAt" -> "created_at"
//   - "ownerId" -> "owner_id"
//   - "users" -> "users"
func SnakeCase(name string) string {
	return strings.ToLower(snakeCaseBoundary.ReplaceAllString(name, "${1}_${2}"))
}
