package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/schema"
)

// compareTables compares tables by existence and delegates to the column, constraint,
// index and trigger comparisons. A created table brings its indexes, constraints and
// triggers with it; a dropped table takes them down first.
func compareTables(sources, targets []*schema.Table, opts DiffOptions) []Diff {
	return compareByName(sources, targets,
		func(t *schema.Table) string { return t.Name },
		func(source, target *schema.Table) []Diff {
			if ignored(source, target, opts, func(t *schema.Table) bool { return t.Synchronize }) {
				return nil
			}

			var diffs []Diff
			switch {
			case target == nil:
				diffs = append(diffs, &TableCreate{
					DiffBase:  base(DiffTableCreate, ReasonMissingInTarget),
					TableName: source.Name,
					Columns:   source.Columns,
				})
				diffs = append(diffs, compareIndexes(source.Indexes, nil)...)
				diffs = append(diffs, compareConstraints(source.Constraints, nil)...)
				diffs = append(diffs, compareTriggers(source.Triggers, nil)...)
			case source == nil:
				diffs = append(diffs, compareIndexes(nil, target.Indexes)...)
				diffs = append(diffs, compareConstraints(nil, target.Constraints)...)
				diffs = append(diffs, compareTriggers(nil, target.Triggers)...)
				diffs = append(diffs, &TableDrop{
					DiffBase:  base(DiffTableDrop, ReasonMissingInSource),
					TableName: target.Name,
				})
			default:
				diffs = append(diffs, compareColumns(source.Columns, target.Columns)...)
				diffs = append(diffs, compareConstraints(source.Constraints, target.Constraints)...)
				diffs = append(diffs, compareIndexes(source.Indexes, target.Indexes)...)
				diffs = append(diffs, compareTriggers(source.Triggers, target.Triggers)...)
			}

			return diffs
		},
	)
}
