package schemadiff

import (
	"github.com/pseudomuto/sqltools/pkg/schema"
)

// DiffType identifies the kind of change a record describes.
type DiffType string

const (
	DiffEnumCreate      DiffType = "enum.create"
	DiffEnumDrop        DiffType = "enum.drop"
	DiffParameterSet    DiffType = "parameter.set"
	DiffParameterReset  DiffType = "parameter.reset"
	DiffExtensionCreate DiffType = "extension.create"
	DiffExtensionDrop   DiffType = "extension.drop"
	DiffFunctionCreate  DiffType = "function.create"
	DiffFunctionDrop    DiffType = "function.drop"
	DiffTableCreate     DiffType = "table.create"
	DiffTableDrop       DiffType = "table.drop"
	DiffColumnAdd       DiffType = "column.add"
	DiffColumnAlter     DiffType = "column.alter"
	DiffColumnDrop      DiffType = "column.drop"
	DiffConstraintAdd   DiffType = "constraint.add"
	DiffConstraintDrop  DiffType = "constraint.drop"
	DiffIndexCreate     DiffType = "index.create"
	DiffIndexDrop       DiffType = "index.drop"
	DiffTriggerCreate   DiffType = "trigger.create"
	DiffTriggerDrop     DiffType = "trigger.drop"
)

// Canonical reasons for records created by presence alone.
const (
	ReasonMissingInSource = "missing in source"
	ReasonMissingInTarget = "missing in target"
)

type (
	// Diff is a single schema change. The set of implementations is closed; every
	// record is one of the pointer types declared in this file.
	Diff interface {
		DiffType() DiffType
		DiffReason() string
		diff()
	}

	// DiffBase contains the fields shared by every record.
	//
	// Embedding this struct in record types provides the Diff methods:
	//
	//	type EnumDrop struct {
	//	    DiffBase
	//	    EnumName string
	//	}
	DiffBase struct {
		// Type is the kind of change
		Type DiffType
		// Reason explains why the change is needed; never empty
		Reason string
	}

	EnumCreate struct {
		DiffBase
		Enum *schema.Enum
	}

	EnumDrop struct {
		DiffBase
		EnumName string
	}

	// ParameterSet carries the full source parameter.
	ParameterSet struct {
		DiffBase
		Parameter *schema.Parameter
	}

	ParameterReset struct {
		DiffBase
		DatabaseName  string
		ParameterName string
	}

	ExtensionCreate struct {
		DiffBase
		Extension *schema.Extension
	}

	ExtensionDrop struct {
		DiffBase
		ExtensionName string
	}

	// FunctionCreate is used both for new functions and to replace changed ones.
	FunctionCreate struct {
		DiffBase
		Function *schema.Function
	}

	FunctionDrop struct {
		DiffBase
		FunctionName string
	}

	TableCreate struct {
		DiffBase
		TableName string
		Columns   []*schema.Column
	}

	TableDrop struct {
		DiffBase
		TableName string
	}

	ColumnAdd struct {
		DiffBase
		Column *schema.Column
	}

	// ColumnAlter changes a single aspect of an existing column.
	ColumnAlter struct {
		DiffBase
		TableName  string
		ColumnName string
		Changes    ColumnChanges
	}

	// ColumnChanges lists the in-place changes of a ColumnAlter. Unset fields are left
	// untouched.
	ColumnChanges struct {
		Nullable *bool
		Default  *string
		// DropDefault removes the default; Default is nil when set
		DropDefault bool
		Storage     schema.ColumnStorage
		Comment     *string
		// DropComment removes the comment; Comment is nil when set
		DropComment bool
	}

	ColumnDrop struct {
		DiffBase
		TableName  string
		ColumnName string
	}

	ConstraintAdd struct {
		DiffBase
		Constraint schema.Constraint
	}

	ConstraintDrop struct {
		DiffBase
		TableName      string
		ConstraintName string
	}

	IndexCreate struct {
		DiffBase
		Index *schema.Index
	}

	IndexDrop struct {
		DiffBase
		IndexName string
	}

	// TriggerCreate is used both for new triggers and to replace changed ones.
	TriggerCreate struct {
		DiffBase
		Trigger *schema.Trigger
	}

	TriggerDrop struct {
		DiffBase
		TableName   string
		TriggerName string
	}
)

// DiffType implements Diff.
func (d *DiffBase) DiffType() DiffType {
	return d.Type
}

// DiffReason implements Diff.
func (d *DiffBase) DiffReason() string {
	return d.Reason
}

func (d *DiffBase) diff() {}

func base(typ DiffType, reason string) DiffBase {
	return DiffBase{Type: typ, Reason: reason}
}
