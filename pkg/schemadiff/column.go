package schemadiff

import (
	"strings"

	"github.com/pseudomuto/sqltools/pkg/compare"
	"github.com/pseudomuto/sqltools/pkg/schema"
)

func columnSynchronized(c *schema.Column) bool { return c.Synchronize }

// compareColumns compares the columns of a table present on both sides.
//
// A change of the rendered type drops and re-adds the column; no cast is attempted.
// Otherwise nullability, default and comment are compared independently and each
// difference yields its own alter record.
func compareColumns(sources, targets []*schema.Column) []Diff {
	return compareByName(sources, targets,
		func(c *schema.Column) string { return c.Name },
		func(source, target *schema.Column) []Diff {
			if ignored(source, target, DiffOptions{}, columnSynchronized) {
				return nil
			}

			switch {
			case target == nil:
				return []Diff{&ColumnAdd{
					DiffBase: base(DiffColumnAdd, ReasonMissingInTarget),
					Column:   source,
				}}
			case source == nil:
				return []Diff{&ColumnDrop{
					DiffBase:   base(DiffColumnDrop, ReasonMissingInSource),
					TableName:  target.TableName,
					ColumnName: target.Name,
				}}
			}

			return compareColumn(source, target)
		},
	)
}

func compareColumn(source, target *schema.Column) []Diff {
	sourceType, targetType := source.SQLType(), target.SQLType()
	if sourceType != targetType {
		reason := different("column type", sourceType, targetType)
		return []Diff{
			&ColumnDrop{DiffBase: base(DiffColumnDrop, reason), TableName: target.TableName, ColumnName: target.Name},
			&ColumnAdd{DiffBase: base(DiffColumnAdd, reason), Column: source},
		}
	}

	var diffs []Diff
	alter := func(reason string, changes ColumnChanges) {
		diffs = append(diffs, &ColumnAlter{
			DiffBase:   base(DiffColumnAlter, reason),
			TableName:  source.TableName,
			ColumnName: source.Name,
			Changes:    changes,
		})
	}

	if source.Nullable != target.Nullable {
		nullable := source.Nullable
		alter(
			different("nullable", describeBool(source.Nullable), describeBool(target.Nullable)),
			ColumnChanges{Nullable: &nullable},
		)
	}

	if !defaultsEqual(source, target) {
		alter(
			different("default", describe(source.Default), describe(target.Default)),
			ColumnChanges{Default: source.Default, DropDefault: source.Default == nil},
		)
	}

	if !compare.Pointers(source.Comment, target.Comment) {
		alter(
			different("comment", describe(source.Comment), describe(target.Comment)),
			ColumnChanges{Comment: source.Comment, DropComment: source.Comment == nil},
		)
	}

	return diffs
}

// defaultsEqual compares column defaults, treating a literal as equal to the same
// literal cast to the column type in either direction, since Postgres reports
// 'active' as 'active'::user_status. This is a textual heuristic; it doesn't
// normalize function calls or numeric formatting.
func defaultsEqual(source, target *schema.Column) bool {
	if eq, needsMoreChecks := compare.NilCheck(source.Default, target.Default); !needsMoreChecks {
		return eq
	}

	sourceDefault, targetDefault := *source.Default, *target.Default
	if sourceDefault == targetDefault {
		return true
	}

	return withTypeCast(sourceDefault, source.SQLType()) == targetDefault ||
		sourceDefault == withTypeCast(targetDefault, target.SQLType())
}

func withTypeCast(value, typ string) string {
	if !strings.HasPrefix(value, "'") {
		value = "'" + value + "'"
	}

	return value + "::" + typ
}
