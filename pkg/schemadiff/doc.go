// Package schemadiff compares two schema snapshots and produces the ordered list of
// changes that turn the target (what a database holds) into the source (what it
// should hold).
//
// Every entity kind is compared by name over the sorted union of both sides, so the
// output is identical for identical inputs regardless of declaration order:
//
//   - present only in source: a create/add record ("missing in target")
//   - present only in target: a drop record ("missing in source")
//   - present on both sides: a kind-specific comparison, yielding alter records or a
//     drop followed by a create when no in-place change exists
//
// Entities whose Synchronize flag is false on either side never produce records.
//
// Usage:
//
//	diffs := schemadiff.GenerateDiff(source, target, schemadiff.Options{
//		Extensions: schemadiff.DiffOptions{IgnoreExtra: true},
//	})
//
//	for _, diff := range diffs {
//		fmt.Println(diff.DiffType(), diff.DiffReason())
//	}
//
// GenerateDiff returns records in dependency order (see Order). Compare returns them
// in discovery order. Neither returns an error: anything the engine can't compare
// precisely is resolved by a fixed policy and explained in the record's reason.
package schemadiff
