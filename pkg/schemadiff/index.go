package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/compare"
	"github.com/pseudomuto/sqltools/pkg/schema"
)

// compareIndexes compares indexes by name. Postgres can't alter an index definition,
// so any difference drops the current index and creates the desired one.
func compareIndexes(sources, targets []*schema.Index) []Diff {
	return compareByName(sources, targets,
		func(i *schema.Index) string { return i.Name },
		func(source, target *schema.Index) []Diff {
			if ignored(source, target, DiffOptions{}, func(i *schema.Index) bool { return i.Synchronize }) {
				return nil
			}

			switch {
			case target == nil:
				return []Diff{&IndexCreate{
					DiffBase: base(DiffIndexCreate, ReasonMissingInTarget),
					Index:    source,
				}}
			case source == nil:
				return []Diff{&IndexDrop{
					DiffBase:  base(DiffIndexDrop, ReasonMissingInSource),
					IndexName: target.Name,
				}}
			}

			reason := indexDifference(source, target)
			if reason == "" {
				return nil
			}

			return []Diff{
				&IndexDrop{DiffBase: base(DiffIndexDrop, reason), IndexName: target.Name},
				&IndexCreate{DiffBase: base(DiffIndexCreate, reason), Index: source},
			}
		},
	)
}

func indexDifference(source, target *schema.Index) string {
	switch {
	case !compare.Sets(source.ColumnNames, target.ColumnNames):
		return areDifferent("columns", describeList(source.ColumnNames), describeList(target.ColumnNames))
	case source.Unique != target.Unique:
		return different("uniqueness", describeBool(source.Unique), describeBool(target.Unique))
	case source.Method() != target.Method():
		return different("using method", source.Method(), target.Method())
	case !compare.Pointers(source.Where, target.Where):
		return different("where clause", describe(source.Where), describe(target.Where))
	case !compare.Pointers(source.Expression, target.Expression):
		return different("expression", describe(source.Expression), describe(target.Expression))
	default:
		return ""
	}
}
