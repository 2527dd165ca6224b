package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// columnTypeLexer defines the lexer for Postgres type declarations
	columnTypeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "QuotedIdent", Pattern: `"(""|[^"])*"`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$.]*`},
		{Name: "Punct", Pattern: `[(),\[\]]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for column types
	parser = participle.MustBuild[typeDecl](
		participle.Lexer(columnTypeLexer),
		participle.Elide("Whitespace"),
	)
)

type (
	// typeDecl is the raw grammar for a column type declaration.
	typeDecl struct {
		// Base type words (e.g. character varying, double precision, "my_enum")
		Words []string `parser:"@(Ident | QuotedIdent)+"`
		// Type modifiers (e.g. (255) or (10, 2))
		Modifiers []string `parser:"('(' @Number (',' @Number)* ')')?"`
		// Words following the modifiers (e.g. timestamp(3) with time zone)
		Suffix []string `parser:"@Ident*"`
		// Array dimensions (e.g. [] or [3])
		Dimensions []*dimension `parser:"@@*"`
	}

	dimension struct {
		Size *string `parser:"'[' @Number? ']'"`
	}
)

// ParseColumnType parses a Postgres column type declaration into its base name,
// optional length and array flag.
//
// Example usage:
//
//	ct, err := parser.ParseColumnType("varchar(36)")
//	// ct.Name == "varchar", *ct.Length == 36, ct.IsArray == false
//
//	ct, err = parser.ParseColumnType("text[]")
//	// ct.Name == "text", ct.Length == nil, ct.IsArray == true
//
// Returns an error if the declaration is empty or malformed.
func ParseColumnType(declaration string) (*ColumnType, error) {
	decl, err := parser.ParseString("", strings.TrimSpace(declaration))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse column type %q", declaration)
	}

	return decl.columnType()
}
