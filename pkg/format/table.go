package format

import (
	"strings"

	"github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

// tableCreate renders the CREATE TABLE statement followed by a comment statement and
// a storage alter for every column that needs one.
//
// Example output:
//
//	CREATE TABLE "users" ("id" uuid NOT NULL DEFAULT uuid_generate_v4(), "bio" text);
//	COMMENT ON COLUMN "users"."bio" IS 'About me';
func (f *Formatter) tableCreate(d *schemadiff.TableCreate) []string {
	columns := make([]string, len(d.Columns))
	for i, column := range d.Columns {
		columns[i] = columnDefinition(column)
	}

	statements := []string{
		utils.NewSQLBuilder().
			Create("TABLE").
			Name(d.TableName).
			Parens(strings.Join(columns, ", ")).
			String(),
	}

	for _, column := range d.Columns {
		if column.Comment != nil {
			statements = append(statements, columnComment(d.TableName, column.Name, column.Comment))
		}

		if column.Storage != "" {
			statements = append(statements, f.columnAlter(d.TableName, column.Name, schemadiff.ColumnChanges{
				Storage: column.Storage,
			})...)
		}
	}

	return statements
}

func (f *Formatter) tableDrop(d *schemadiff.TableDrop) string {
	return utils.NewSQLBuilder().Drop("TABLE").Name(d.TableName).String()
}

func (f *Formatter) columnAdd(d *schemadiff.ColumnAdd) string {
	return utils.NewSQLBuilder().
		Alter("TABLE").
		Name(d.Column.TableName).
		Raw("ADD").
		Raw(columnDefinition(d.Column)).
		String()
}

func (f *Formatter) columnDrop(d *schemadiff.ColumnDrop) string {
	return utils.NewSQLBuilder().
		Alter("TABLE").
		Name(d.TableName).
		Raw("DROP COLUMN").
		Name(d.ColumnName).
		String()
}

// columnAlter renders one statement per change, in the order nullable, default,
// storage and comment.
func (f *Formatter) columnAlter(table, column string, changes schemadiff.ColumnChanges) []string {
	alter := func() *utils.SQLBuilder {
		return utils.NewSQLBuilder().Alter("TABLE").Name(table).Raw("ALTER COLUMN").Name(column)
	}

	var statements []string
	if changes.Nullable != nil {
		if *changes.Nullable {
			statements = append(statements, alter().Raw("DROP NOT NULL").String())
		} else {
			statements = append(statements, alter().Raw("SET NOT NULL").String())
		}
	}

	switch {
	case changes.Default != nil:
		statements = append(statements, alter().Raw("SET DEFAULT").Raw(*changes.Default).String())
	case changes.DropDefault:
		statements = append(statements, alter().Raw("DROP DEFAULT").String())
	}

	if changes.Storage != "" {
		statements = append(statements, alter().Raw("SET STORAGE").Raw(strings.ToUpper(string(changes.Storage))).String())
	}

	if changes.Comment != nil || changes.DropComment {
		statements = append(statements, columnComment(table, column, changes.Comment))
	}

	return statements
}

// columnDefinition renders "name" type followed by its modifiers.
func columnDefinition(column *schema.Column) string {
	b := utils.NewSQLBuilder().
		Name(column.Name).
		Raw(column.SQLType()).
		RawIf(!column.Nullable, "NOT NULL")

	if column.Default != nil {
		b.Raw("DEFAULT").Raw(*column.Default)
	}

	return b.RawIf(column.Identity, "GENERATED ALWAYS AS IDENTITY").StringWithoutSemicolon()
}

// columnComment renders a COMMENT ON COLUMN statement. A nil comment removes it.
func columnComment(table, column string, comment *string) string {
	b := utils.NewSQLBuilder().
		Raw("COMMENT ON COLUMN").
		Raw(utils.QuoteIdentifier(table) + "." + utils.QuoteIdentifier(column)).
		Raw("IS")

	if comment == nil {
		return b.Raw("NULL").String()
	}

	return b.Escaped(*comment).String()
}
