package schema

type (
	// Table is a database table along with everything attached to it.
	Table struct {
		Name string
		// Columns are kept in declaration order, which is the CREATE TABLE order
		Columns     []*Column
		Constraints []Constraint
		Indexes     []*Index
		Triggers    []*Trigger
		Synchronize bool
	}

	// Index is a table index. ColumnNames and Expression may be used together, in
	// which case the expression is indexed after the columns.
	Index struct {
		Name        string
		TableName   string
		ColumnNames []string
		Expression  *string
		Unique      bool
		// Using is the access method, btree when nil
		Using *string
		// With holds storage parameters (e.g. "fillfactor = 70")
		With        *string
		Where       *string
		Synchronize bool
	}
)

// DefaultIndexMethod is the access method used when an index doesn't specify one.
const DefaultIndexMethod = "btree"

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, column := range t.Columns {
		if column.Name == name {
			return column
		}
	}

	return nil
}

// Method returns the index access method, defaulting to btree.
func (i *Index) Method() string {
	if i.Using == nil || *i.Using == "" {
		return DefaultIndexMethod
	}

	return *i.Using
}
