// Package parser provides a participle-based parser for Postgres column type
// declarations.
//
// Snapshots describe columns with the type text Postgres itself reports, for
// example "character varying(255)", "timestamp with time zone" or "integer[]".
// The diff engine needs that text split into a base type name, an optional fixed
// length and an array flag, because the rendered column type is rebuilt from those
// parts before two columns are compared.
//
// Basic usage:
//
//	ct, err := parser.ParseColumnType("character varying(20)[]")
//	if err != nil {
//		return err
//	}
//
//	ct.Name     // "character varying"
//	*ct.Length  // 20
//	ct.IsArray  // true
//
// Type modifiers that aren't a single length (numeric(10,2), timestamp(3) with time
// zone) are kept as part of the name so they survive a round trip unchanged.
package parser
