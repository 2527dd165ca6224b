package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/compare"
	"github.com/pseudomuto/sqltools/pkg/schema"
)

func constraintSynchronized(c schema.Constraint) bool { return c.Base().Synchronize }

// compareConstraints compares constraints kind by kind, in the order primary key,
// foreign key, unique, check. Constraints of different kinds never pair up, even when
// they share a name.
func compareConstraints(sources, targets []schema.Constraint) []Diff {
	var diffs []Diff
	for _, typ := range schema.ConstraintTypes {
		diffs = append(diffs, compareByName(
			constraintsOfType(sources, typ),
			constraintsOfType(targets, typ),
			func(c schema.Constraint) string { return c.Base().Name },
			compareConstraint,
		)...)
	}

	return diffs
}

func constraintsOfType(constraints []schema.Constraint, typ schema.ConstraintType) []schema.Constraint {
	var matched []schema.Constraint
	for _, c := range constraints {
		if c.Type() == typ {
			matched = append(matched, c)
		}
	}

	return matched
}

func compareConstraint(source, target schema.Constraint) []Diff {
	if ignored(source, target, DiffOptions{}, constraintSynchronized) {
		return nil
	}

	switch {
	case target == nil:
		return []Diff{&ConstraintAdd{
			DiffBase:   base(DiffConstraintAdd, ReasonMissingInTarget),
			Constraint: source,
		}}
	case source == nil:
		return []Diff{&ConstraintDrop{
			DiffBase:       base(DiffConstraintDrop, ReasonMissingInSource),
			TableName:      target.Base().TableName,
			ConstraintName: target.Base().Name,
		}}
	}

	reason := ""
	switch s := source.(type) {
	case *schema.PrimaryKeyConstraint:
		t, _ := target.(*schema.PrimaryKeyConstraint)
		reason = comparePrimaryKey(s, t)
	case *schema.ForeignKeyConstraint:
		t, _ := target.(*schema.ForeignKeyConstraint)
		reason = compareForeignKey(s, t)
	case *schema.UniqueConstraint:
		t, _ := target.(*schema.UniqueConstraint)
		reason = compareUnique(s, t)
	case *schema.CheckConstraint:
		// Postgres reformats check expressions when reporting them, so a check with the
		// same name is assumed to be unchanged.
	default:
		reason = "unknown constraint type: " + string(source.Type())
	}

	if reason == "" {
		return nil
	}

	return []Diff{
		&ConstraintDrop{
			DiffBase:       base(DiffConstraintDrop, reason),
			TableName:      target.Base().TableName,
			ConstraintName: target.Base().Name,
		},
		&ConstraintAdd{DiffBase: base(DiffConstraintAdd, reason), Constraint: source},
	}
}

func comparePrimaryKey(source, target *schema.PrimaryKeyConstraint) string {
	if target == nil {
		return "constraint type is different"
	}

	if !compare.Sets(source.ColumnNames, target.ColumnNames) {
		return "Primary key columns are different: (" + describeList(source.ColumnNames) + " vs " + describeList(target.ColumnNames) + ")"
	}

	return ""
}

// compareForeignKey returns the first difference found, checking columns, reference
// columns, reference table and the delete and update actions in that order.
func compareForeignKey(source, target *schema.ForeignKeyConstraint) string {
	switch {
	case target == nil:
		return "constraint type is different"
	case !compare.Sets(source.ColumnNames, target.ColumnNames):
		return areDifferent("columns", describeList(source.ColumnNames), describeList(target.ColumnNames))
	case !compare.Sets(source.ReferenceColumnNames, target.ReferenceColumnNames):
		return areDifferent("reference columns", describeList(source.ReferenceColumnNames), describeList(target.ReferenceColumnNames))
	case source.ReferenceTableName != target.ReferenceTableName:
		return different("reference table", source.ReferenceTableName, target.ReferenceTableName)
	case source.DeleteAction() != target.DeleteAction():
		return "ON DELETE action is different (" + string(source.DeleteAction()) + " vs " + string(target.DeleteAction()) + ")"
	case source.UpdateAction() != target.UpdateAction():
		return "ON UPDATE action is different (" + string(source.UpdateAction()) + " vs " + string(target.UpdateAction()) + ")"
	default:
		return ""
	}
}

func compareUnique(source, target *schema.UniqueConstraint) string {
	if target == nil {
		return "constraint type is different"
	}

	if !compare.Sets(source.ColumnNames, target.ColumnNames) {
		return areDifferent("columns", describeList(source.ColumnNames), describeList(target.ColumnNames))
	}

	return ""
}
