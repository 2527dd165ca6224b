package schemadiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pseudomuto/sqltools/pkg/compare"
	"github.com/pseudomuto/sqltools/pkg/schema"
)

// GenerateDiff compares source (the desired schema) with target (the current schema)
// and returns the changes needed to bring target in line with source, in an order
// that is safe to apply.
//
// Example:
//
//	source, _ := schema.LoadSnapshotFile("schema/source.yaml")
//	target, _ := schema.LoadSnapshotFile("schema/target.yaml")
//
//	diffs := schemadiff.GenerateDiff(source, target, schemadiff.Options{})
//	if len(diffs) == 0 {
//		fmt.Println("schemas are in sync")
//	}
//
//	for _, sql := range format.Render(diffs, format.Defaults) {
//		fmt.Println(sql)
//	}
func GenerateDiff(source, target *schema.Schema, opts Options) []Diff {
	return Order(Compare(source, target, opts))
}

// Compare returns the changes needed to bring target in line with source in discovery
// order: parameters, extensions, functions, enums and then tables. Within a kind,
// entities are visited in lexical name order. A nil schema is treated as empty.
func Compare(source, target *schema.Schema, opts Options) []Diff {
	if source == nil {
		source = &schema.Schema{}
	}

	if target == nil {
		target = &schema.Schema{}
	}

	var diffs []Diff
	diffs = append(diffs, compareParameters(source.Parameters, target.Parameters, opts.Parameters)...)
	diffs = append(diffs, compareExtensions(source.Extensions, target.Extensions, opts.Extensions)...)
	diffs = append(diffs, compareFunctions(source.Functions, target.Functions, opts.Functions)...)
	diffs = append(diffs, compareEnums(source.Enums, target.Enums, opts.Enums)...)
	diffs = append(diffs, compareTables(source.Tables, target.Tables, opts.Tables)...)
	return diffs
}

// compareByName pairs entities by name and compares each pair. Either side of a pair
// is the zero value of T when the entity only exists on the other side.
func compareByName[T comparable](sources, targets []T, name func(T) string, compareFn func(source, target T) []Diff) []Diff {
	sourceMap := make(map[string]T, len(sources))
	for _, item := range sources {
		sourceMap[name(item)] = item
	}

	targetMap := make(map[string]T, len(targets))
	for _, item := range targets {
		targetMap[name(item)] = item
	}

	var diffs []Diff
	for _, key := range compare.KeyUnion(sourceMap, targetMap) {
		diffs = append(diffs, compareFn(sourceMap[key], targetMap[key])...)
	}

	return diffs
}

// different formats the reason for a field that differs between source and target.
func different(field, source, target string) string {
	return fmt.Sprintf("%s is different (%s vs %s)", field, source, target)
}

// areDifferent is different for plural fields such as "columns".
func areDifferent(field, source, target string) string {
	return fmt.Sprintf("%s are different (%s vs %s)", field, source, target)
}

func describe(value *string) string {
	if value == nil {
		return "none"
	}

	return *value
}

func describeBool(value bool) string {
	return strconv.FormatBool(value)
}

func describeList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return strings.Join(parts, ",")
}
