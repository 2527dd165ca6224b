package format

import (
	"github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

// constraintAdd renders ALTER TABLE "t" ADD CONSTRAINT "n" followed by the constraint
// definition. Foreign keys always spell out both referential actions.
//
// Example output:
//
//	ALTER TABLE "posts" ADD CONSTRAINT "FK_..." FOREIGN KEY ("authorId") REFERENCES "users" ("id") ON UPDATE NO ACTION ON DELETE CASCADE;
func (f *Formatter) constraintAdd(d *schemadiff.ConstraintAdd) string {
	base := d.Constraint.Base()
	b := utils.NewSQLBuilder().
		Alter("TABLE").
		Name(base.TableName).
		Raw("ADD CONSTRAINT").
		Name(base.Name)

	switch c := d.Constraint.(type) {
	case *schema.PrimaryKeyConstraint:
		b.Raw("PRIMARY KEY").Columns(c.ColumnNames)
	case *schema.ForeignKeyConstraint:
		b.Raw("FOREIGN KEY").
			Columns(c.ColumnNames).
			Raw("REFERENCES").
			Name(c.ReferenceTableName).
			Columns(c.ReferenceColumnNames).
			Raw("ON UPDATE").Raw(string(c.UpdateAction())).
			Raw("ON DELETE").Raw(string(c.DeleteAction()))
	case *schema.UniqueConstraint:
		b.Raw("UNIQUE").Columns(c.ColumnNames)
	case *schema.CheckConstraint:
		b.Raw("CHECK").Parens(c.Expression)
	default:
		return ""
	}

	return b.String()
}

func (f *Formatter) constraintDrop(d *schemadiff.ConstraintDrop) string {
	return utils.NewSQLBuilder().
		Alter("TABLE").
		Name(d.TableName).
		Raw("DROP CONSTRAINT").
		Name(d.ConstraintName).
		String()
}
