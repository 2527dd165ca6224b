package schema

// Schema is a snapshot of a database's structure.
type Schema struct {
	// Name identifies the snapshot in logs and errors (e.g. "source", "postgres")
	Name       string
	Tables     []*Table
	Enums      []*Enum
	Functions  []*Function
	Extensions []*Extension
	Parameters []*Parameter
}

// Table returns the table with the given name, or nil.
func (s *Schema) Table(name string) *Table {
	for _, table := range s.Tables {
		if table.Name == name {
			return table
		}
	}

	return nil
}

type (
	// Enum is a user defined enum type.
	Enum struct {
		Name string
		// Values are ordered; reordering values is a change
		Values      []string
		Synchronize bool
	}

	// Extension is an installed Postgres extension.
	Extension struct {
		Name        string
		Synchronize bool
	}

	// ParameterScope determines whether a parameter is persisted for the database or
	// only set for the current session.
	ParameterScope string

	// Parameter is a configuration setting such as search_path.
	Parameter struct {
		Name  string
		Value string
		Scope ParameterScope
		// DatabaseName is the database the parameter applies to when Scope is database
		DatabaseName string
		Synchronize  bool
	}
)

const (
	ParameterScopeDatabase ParameterScope = "database"
	ParameterScopeUser     ParameterScope = "user"
)
