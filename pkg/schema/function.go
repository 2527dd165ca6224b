package schema

import (
	"strings"

	"github.com/pseudomuto/sqltools/pkg/consts"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

type (
	// Function is a stored function. Expression is the complete CREATE OR REPLACE
	// FUNCTION statement and Hash the content hash embedded in it.
	Function struct {
		Name        string
		Expression  string
		Hash        string
		Synchronize bool
	}

	// FunctionOptions describes a function to be rendered by NewFunction.
	FunctionOptions struct {
		Name       string
		Arguments  []string
		ReturnType string
		// Language defaults to SQL
		Language string
		// Behavior is one of immutable, stable or volatile
		Behavior string
		// Parallel is one of safe, unsafe or restricted
		Parallel string
		Strict   bool
		Body     string
		// Synchronize defaults to true when nil
		Synchronize *bool
	}
)

// NewFunction renders the CREATE OR REPLACE FUNCTION statement described by opts.
//
// The statement embeds a "-- sql-tools-hash=<hash>" comment where hash is the sha1 of
// the statement rendered with a fixed placeholder in place of the hash. Any change to
// the options changes the hash.
//
// Example:
//
//	fn := schema.NewFunction(schema.FunctionOptions{
//		Name:       "updated_at",
//		ReturnType: "TRIGGER",
//		Language:   "PLPGSQL",
//		Body:       "BEGIN new.\"updatedAt\" = now(); RETURN new; END;",
//	})
func NewFunction(opts FunctionOptions) *Function {
	hash := utils.FunctionHash(renderFunction(opts, consts.FunctionHashPlaceholder))

	synchronize := true
	if opts.Synchronize != nil {
		synchronize = *opts.Synchronize
	}

	return &Function{
		Name:        opts.Name,
		Expression:  renderFunction(opts, hash),
		Hash:        hash,
		Synchronize: synchronize,
	}
}

// FunctionFromDefinition builds a function from an existing definition, typically one
// read back from a database. Hash is empty when the definition carries no hash comment,
// so the function never matches one built with NewFunction.
func FunctionFromDefinition(name, definition string) *Function {
	hash, _ := utils.ExtractFunctionHash(definition)

	return &Function{
		Name:        name,
		Expression:  definition,
		Hash:        hash,
		Synchronize: true,
	}
}

func renderFunction(opts FunctionOptions, hash string) string {
	lines := []string{
		"CREATE OR REPLACE FUNCTION " + opts.Name + "(" + strings.Join(opts.Arguments, ", ") + ")",
		"RETURNS " + opts.ReturnType,
	}

	var flags []string
	if opts.Parallel != "" {
		flags = append(flags, "PARALLEL "+strings.ToUpper(opts.Parallel))
	}
	if opts.Strict {
		flags = append(flags, "STRICT")
	}
	if opts.Behavior != "" {
		flags = append(flags, strings.ToUpper(opts.Behavior))
	}

	language := opts.Language
	if language == "" {
		language = "SQL"
	}
	flags = append(flags, "LANGUAGE "+language)

	lines = append(lines,
		strings.Join(flags, " "),
		"AS $$",
		"  "+consts.FunctionHashMarker+hash,
		"  "+strings.TrimSpace(opts.Body),
		"$$;",
	)

	return strings.TrimSpace(strings.Join(lines, "\n  "))
}
