// Package compare provides generic comparison utilities used by the diff engine.
//
// The helpers cover the recurring shapes of schema comparison: optional values held
// in pointers, ordered lists (enum values, trigger actions), unordered column sets
// and keyed collections whose entries may exist on only one side.
//
// # Usage Examples
//
// Short-circuit on optional values:
//
//	if eq, done := compare.NilCheck(source.Default, target.Default); !done {
//	    return eq
//	}
//
// Compare optional clauses:
//
//	if !compare.Pointers(source.Where, target.Where) {
//	    // where clause is different
//	}
//
// Compare column lists regardless of order:
//
//	compare.Sets(source.Columns, target.Columns)
//
// Walk two keyed collections deterministically:
//
//	for _, name := range compare.KeyUnion(source.Enums, target.Enums) {
//	    ...
//	}
package compare
