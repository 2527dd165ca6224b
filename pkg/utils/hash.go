package utils

import (
	"regexp"
	"strings"

	"github.com/pseudomuto/sqltools/pkg/consts"
)

var functionHashPattern = regexp.MustCompile(regexp.QuoteMeta(consts.FunctionHashMarker) + `(.*)`)

// FunctionHash computes the content hash of a function definition. The definition is
// expected to embed consts.FunctionHashPlaceholder where the hash comment will go, so
// the hash doesn't depend on itself. Any other textual change (whitespace and case
// included) produces a different hash.
func FunctionHash(definition string) string {
	return SHA1(definition)
}

// ExtractFunctionHash returns the hash embedded in a function definition by a
// single-line "-- sql-tools-hash=<hash>" comment.
//
// Examples:
//   - "AS $$\n  -- sql-tools-hash=abc123\n  SELECT 1\n$$;" -> ("abc123", true)
//   - "AS $$ SELECT 1 $$;" -> ("", false)
func ExtractFunctionHash(definition string) (string, bool) {
	match := functionHashPattern.FindStringSubmatch(definition)
	if match == nil {
		return "", false
	}

	return strings.TrimSpace(match[1]), true
}
