package schema

import (
	"strconv"
)

type (
	// ColumnStorage is the TOAST storage mode of a column.
	ColumnStorage string

	// Column is a single table column.
	Column struct {
		TableName string
		Name      string
		// Type is the base type name (e.g. "character varying", "uuid")
		Type string
		// EnumName, when set, replaces Type in the rendered column type
		EnumName string
		Length   *int
		IsArray  bool
		Nullable bool
		// Default is a raw SQL expression (e.g. "now()", "'pending'")
		Default  *string
		Identity bool
		// Storage is empty when the column uses the type's default storage
		Storage     ColumnStorage
		Comment     *string
		Synchronize bool
	}
)

const (
	StorageDefault  ColumnStorage = "default"
	StorageExternal ColumnStorage = "external"
	StorageExtended ColumnStorage = "extended"
	StorageMain     ColumnStorage = "main"
	StoragePlain    ColumnStorage = "plain"
)

// SQLType renders the column type used both in DDL and when comparing columns.
//
// Examples:
//   - {Type: "character varying", Length: 255} -> "character varying(255)"
//   - {Type: "enum", EnumName: "user_status"} -> "user_status"
//   - {Type: "text", IsArray: true} -> "text[]"
func (c *Column) SQLType() string {
	typ := c.Type
	if c.EnumName != "" {
		typ = c.EnumName
	}

	switch {
	case c.IsArray:
		length := ""
		if c.Length != nil {
			length = strconv.Itoa(*c.Length)
		}
		typ += "[" + length + "]"
	case c.Length != nil:
		typ += "(" + strconv.Itoa(*c.Length) + ")"
	}

	return typ
}
