package schemadiff

import (
	"fmt"

	"github.com/pseudomuto/sqltools/pkg/compare"
	"github.com/pseudomuto/sqltools/pkg/schema"
)

// compareEnums compares enum values as ordered lists. Any change, reordering included,
// drops and recreates the type.
func compareEnums(sources, targets []*schema.Enum, opts DiffOptions) []Diff {
	return compareByName(sources, targets,
		func(e *schema.Enum) string { return e.Name },
		func(source, target *schema.Enum) []Diff {
			if ignored(source, target, opts, func(e *schema.Enum) bool { return e.Synchronize }) {
				return nil
			}

			switch {
			case target == nil:
				return []Diff{&EnumCreate{
					DiffBase: base(DiffEnumCreate, ReasonMissingInTarget),
					Enum:     source,
				}}
			case source == nil:
				return []Diff{&EnumDrop{
					DiffBase: base(DiffEnumDrop, ReasonMissingInSource),
					EnumName: target.Name,
				}}
			}

			if compare.Slices(source.Values, target.Values, func(a, b string) bool { return a == b }) {
				return nil
			}

			reason := fmt.Sprintf("enum values has changed (%s vs %s)", describeList(source.Values), describeList(target.Values))
			return []Diff{
				&EnumDrop{DiffBase: base(DiffEnumDrop, reason), EnumName: source.Name},
				&EnumCreate{DiffBase: base(DiffEnumCreate, reason), Enum: source},
			}
		},
	)
}
