package format

import (
	"github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

// indexCreate renders CREATE [UNIQUE] INDEX "n" ON "t" [USING m] (cols[, expr])
// [WITH (w)] [WHERE c]; USING is omitted for btree, the default method. The
// expression follows the columns as the last index element.
func (f *Formatter) indexCreate(d *schemadiff.IndexCreate) string {
	index := d.Index
	b := utils.NewSQLBuilder().
		Raw("CREATE").
		RawIf(index.Unique, "UNIQUE").
		Raw("INDEX").
		Name(index.Name).
		Raw("ON").
		Name(index.TableName)

	if method := index.Method(); method != schema.DefaultIndexMethod {
		b.Raw("USING").Raw(method)
	}

	elements := utils.QuoteIdentifiers(index.ColumnNames)
	if index.Expression != nil && *index.Expression != "" {
		if elements != "" {
			elements += ", "
		}
		elements += *index.Expression
	}
	b.Parens(elements)

	if index.With != nil {
		b.Raw("WITH").Parens(*index.With)
	}

	if index.Where != nil {
		b.Raw("WHERE").Raw(*index.Where)
	}

	return b.String()
}

func (f *Formatter) indexDrop(d *schemadiff.IndexDrop) string {
	return utils.NewSQLBuilder().Drop("INDEX").Name(d.IndexName).String()
}
