package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/schema"
)

const (
	bucketExtensionCreate = iota
	bucketConstraintDrop
	bucketEnumRecreate
	bucketEnumCreate
	bucketFunctionCreate
	bucketTableCreate
	bucketOther
	bucketPrimaryKeyAdd
	bucketForeignKeyAdd
	bucketConstraintAdd
	bucketExtensionDrop
	bucketCount
)

// Order arranges records so that every statement only depends on objects created by
// earlier statements. Records are grouped in the following order, keeping their
// relative order within each group:
//
//  1. extension creates
//  2. constraint drops
//  3. enum creates
//  4. function creates
//  5. table creates
//  6. everything else (columns, indexes, triggers, parameters, drops)
//  7. primary key adds
//  8. foreign key adds
//  9. other constraint adds
//  10. extension drops
//
// The drop of an enum that is being recreated goes right before the enum creates,
// regardless of where it appears in diffs, since the new type can't be created while
// the old one exists.
func Order(diffs []Diff) []Diff {
	recreated := make(map[string]bool)
	for _, diff := range diffs {
		if create, ok := diff.(*EnumCreate); ok && create.Enum != nil {
			recreated[create.Enum.Name] = true
		}
	}

	var buckets [bucketCount][]Diff
	for _, diff := range diffs {
		b := bucketOf(diff)
		if drop, ok := diff.(*EnumDrop); ok && recreated[drop.EnumName] {
			b = bucketEnumRecreate
		}
		buckets[b] = append(buckets[b], diff)
	}

	ordered := make([]Diff, 0, len(diffs))
	for _, bucket := range buckets {
		ordered = append(ordered, bucket...)
	}

	return ordered
}

func bucketOf(diff Diff) int {
	switch diff.DiffType() {
	case DiffExtensionCreate:
		return bucketExtensionCreate
	case DiffConstraintDrop:
		return bucketConstraintDrop
	case DiffEnumCreate:
		return bucketEnumCreate
	case DiffFunctionCreate:
		return bucketFunctionCreate
	case DiffTableCreate:
		return bucketTableCreate
	case DiffExtensionDrop:
		return bucketExtensionDrop
	case DiffConstraintAdd:
		add, ok := diff.(*ConstraintAdd)
		if !ok || add.Constraint == nil {
			return bucketConstraintAdd
		}

		switch add.Constraint.Type() {
		case schema.ConstraintPrimaryKey:
			return bucketPrimaryKeyAdd
		case schema.ConstraintForeignKey:
			return bucketForeignKeyAdd
		default:
			return bucketConstraintAdd
		}
	default:
		return bucketOther
	}
}
