package schema

type (
	// ConstraintType identifies the kind of a table constraint.
	ConstraintType string

	// ActionType is a referential action of a foreign key.
	ActionType string

	// Constraint is one of PrimaryKeyConstraint, ForeignKeyConstraint, UniqueConstraint or
	// CheckConstraint. The set is closed; type switches over it are exhaustive.
	Constraint interface {
		Type() ConstraintType
		Base() *ConstraintBase
		constraint()
	}

	// ConstraintBase contains the fields shared by all constraints.
	ConstraintBase struct {
		Name        string
		TableName   string
		Synchronize bool
	}

	// PrimaryKeyConstraint is a table's primary key.
	PrimaryKeyConstraint struct {
		ConstraintBase
		ColumnNames []string
	}

	// ForeignKeyConstraint references rows of another table. OnDelete and OnUpdate are
	// empty when not specified, which Postgres treats as NO ACTION.
	ForeignKeyConstraint struct {
		ConstraintBase
		ColumnNames          []string
		ReferenceTableName   string
		ReferenceColumnNames []string
		OnDelete             ActionType
		OnUpdate             ActionType
	}

	// UniqueConstraint enforces uniqueness over a set of columns.
	UniqueConstraint struct {
		ConstraintBase
		ColumnNames []string
	}

	// CheckConstraint enforces a boolean expression on every row.
	CheckConstraint struct {
		ConstraintBase
		Expression string
	}
)

const (
	ConstraintPrimaryKey ConstraintType = "primary-key"
	ConstraintForeignKey ConstraintType = "foreign-key"
	ConstraintUnique     ConstraintType = "unique"
	ConstraintCheck      ConstraintType = "check"
)

const (
	ActionNoAction   ActionType = "NO ACTION"
	ActionRestrict   ActionType = "RESTRICT"
	ActionCascade    ActionType = "CASCADE"
	ActionSetNull    ActionType = "SET NULL"
	ActionSetDefault ActionType = "SET DEFAULT"
)

// ConstraintTypes lists every constraint kind in the order the diff engine visits them.
var ConstraintTypes = []ConstraintType{
	ConstraintPrimaryKey,
	ConstraintForeignKey,
	ConstraintUnique,
	ConstraintCheck,
}

// Base returns the shared constraint fields.
func (c *ConstraintBase) Base() *ConstraintBase { return c }

func (c *ConstraintBase) constraint() {}

func (c *PrimaryKeyConstraint) Type() ConstraintType { return ConstraintPrimaryKey }
func (c *ForeignKeyConstraint) Type() ConstraintType { return ConstraintForeignKey }
func (c *UniqueConstraint) Type() ConstraintType     { return ConstraintUnique }
func (c *CheckConstraint) Type() ConstraintType      { return ConstraintCheck }

// DeleteAction returns OnDelete, defaulting to NO ACTION.
func (c *ForeignKeyConstraint) DeleteAction() ActionType {
	return actionOrDefault(c.OnDelete)
}

// UpdateAction returns OnUpdate, defaulting to NO ACTION.
func (c *ForeignKeyConstraint) UpdateAction() ActionType {
	return actionOrDefault(c.OnUpdate)
}

func actionOrDefault(action ActionType) ActionType {
	if action == "" {
		return ActionNoAction
	}

	return action
}
