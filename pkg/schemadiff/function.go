package schemadiff

import (
	"fmt"

	"github.com/pseudomuto/sqltools/pkg/schema"
)

// compareFunctions compares functions by content hash. A changed function is replaced
// with a single create since the rendered statement is CREATE OR REPLACE.
func compareFunctions(sources, targets []*schema.Function, opts DiffOptions) []Diff {
	return compareByName(sources, targets,
		func(f *schema.Function) string { return f.Name },
		func(source, target *schema.Function) []Diff {
			if ignored(source, target, opts, func(f *schema.Function) bool { return f.Synchronize }) {
				return nil
			}

			switch {
			case target == nil:
				return []Diff{&FunctionCreate{
					DiffBase: base(DiffFunctionCreate, ReasonMissingInTarget),
					Function: source,
				}}
			case source == nil:
				return []Diff{&FunctionDrop{
					DiffBase:     base(DiffFunctionDrop, ReasonMissingInSource),
					FunctionName: target.Name,
				}}
			case source.Hash != target.Hash:
				return []Diff{&FunctionCreate{
					DiffBase: base(DiffFunctionCreate, fmt.Sprintf("function hash has changed (%s vs %s)", source.Hash, target.Hash)),
					Function: source,
				}}
			default:
				return nil
			}
		},
	)
}
