package format

import (
	"strings"

	"github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

// enumCreate renders CREATE TYPE "name" AS ENUM ('a','b');
func (f *Formatter) enumCreate(d *schemadiff.EnumCreate) string {
	values := make([]string, len(d.Enum.Values))
	for i, v := range d.Enum.Values {
		values[i] = utils.QuoteString(v)
	}

	return utils.NewSQLBuilder().
		Create("TYPE").
		Name(d.Enum.Name).
		Raw("AS ENUM").
		Parens(strings.Join(values, ",")).
		String()
}

func (f *Formatter) enumDrop(d *schemadiff.EnumDrop) string {
	return utils.NewSQLBuilder().Drop("TYPE").Name(d.EnumName).String()
}

// parameterSet renders [ALTER DATABASE "db"] SET name TO value; the value is emitted
// verbatim since it may be a list (e.g. search_path).
func (f *Formatter) parameterSet(d *schemadiff.ParameterSet) string {
	b := utils.NewSQLBuilder()
	if d.Parameter.Scope == schema.ParameterScopeDatabase {
		b.Alter("DATABASE").Name(d.Parameter.DatabaseName)
	}

	return b.Raw("SET").Raw(d.Parameter.Name).Raw("TO").Raw(d.Parameter.Value).String()
}

func (f *Formatter) parameterReset(d *schemadiff.ParameterReset) string {
	return utils.NewSQLBuilder().
		Alter("DATABASE").
		Name(d.DatabaseName).
		Raw("RESET").
		Name(d.ParameterName).
		String()
}

func (f *Formatter) extensionCreate(d *schemadiff.ExtensionCreate) string {
	return utils.NewSQLBuilder().Create("EXTENSION").IfNotExists().Name(d.Extension.Name).String()
}

func (f *Formatter) extensionDrop(d *schemadiff.ExtensionDrop) string {
	return utils.NewSQLBuilder().Drop("EXTENSION").Name(d.ExtensionName).String()
}

// functionCreate emits the stored definition, which is already a complete
// CREATE OR REPLACE FUNCTION statement.
func (f *Formatter) functionCreate(d *schemadiff.FunctionCreate) string {
	return d.Function.Expression
}

func (f *Formatter) functionDrop(d *schemadiff.FunctionDrop) string {
	return utils.NewSQLBuilder().Drop("FUNCTION").Raw(d.FunctionName).String()
}
