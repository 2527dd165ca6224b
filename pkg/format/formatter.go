package format

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
)

type (
	// Options controls rendering.
	Options struct {
		// Comments appends " -- <reason>" to every statement
		Comments bool `yaml:"comments"`
	}

	// Formatter renders diff records as SQL statements.
	Formatter struct {
		options Options
	}
)

// Defaults renders statements without comments.
var Defaults = Options{}

// New creates a Formatter with the given options.
func New(opts Options) *Formatter {
	return &Formatter{options: opts}
}

// Statements renders items in order. A record may render to several statements (e.g.
// a table create followed by its column comments); records of unknown types render to
// nothing.
func (f *Formatter) Statements(items ...schemadiff.Diff) []string {
	var statements []string
	for _, item := range items {
		for _, sql := range f.statement(item) {
			if f.options.Comments {
				sql += " -- " + item.DiffReason()
			}
			statements = append(statements, sql)
		}
	}

	return statements
}

// Format writes the rendered statements to w, one per line.
func (f *Formatter) Format(w io.Writer, items ...schemadiff.Diff) error {
	for _, sql := range f.Statements(items...) {
		if _, err := io.WriteString(w, sql+"\n"); err != nil {
			return errors.Wrap(err, "failed to write statement")
		}
	}

	return nil
}

// Render renders items with the given options (convenience function).
func Render(items []schemadiff.Diff, opts Options) []string {
	return New(opts).Statements(items...)
}

// Format writes items to w with the given options (convenience function).
func Format(w io.Writer, opts Options, items ...schemadiff.Diff) error {
	return New(opts).Format(w, items...)
}

func (f *Formatter) statement(item schemadiff.Diff) []string {
	switch d := item.(type) {
	case *schemadiff.EnumCreate:
		return one(f.enumCreate(d))
	case *schemadiff.EnumDrop:
		return one(f.enumDrop(d))
	case *schemadiff.ParameterSet:
		return one(f.parameterSet(d))
	case *schemadiff.ParameterReset:
		return one(f.parameterReset(d))
	case *schemadiff.ExtensionCreate:
		return one(f.extensionCreate(d))
	case *schemadiff.ExtensionDrop:
		return one(f.extensionDrop(d))
	case *schemadiff.FunctionCreate:
		return one(f.functionCreate(d))
	case *schemadiff.FunctionDrop:
		return one(f.functionDrop(d))
	case *schemadiff.TableCreate:
		return f.tableCreate(d)
	case *schemadiff.TableDrop:
		return one(f.tableDrop(d))
	case *schemadiff.ColumnAdd:
		return one(f.columnAdd(d))
	case *schemadiff.ColumnAlter:
		return f.columnAlter(d.TableName, d.ColumnName, d.Changes)
	case *schemadiff.ColumnDrop:
		return one(f.columnDrop(d))
	case *schemadiff.ConstraintAdd:
		return one(f.constraintAdd(d))
	case *schemadiff.ConstraintDrop:
		return one(f.constraintDrop(d))
	case *schemadiff.IndexCreate:
		return one(f.indexCreate(d))
	case *schemadiff.IndexDrop:
		return one(f.indexDrop(d))
	case *schemadiff.TriggerCreate:
		return one(f.triggerCreate(d))
	case *schemadiff.TriggerDrop:
		return one(f.triggerDrop(d))
	default:
		return nil
	}
}

func one(sql string) []string {
	if sql == "" {
		return nil
	}

	return []string{sql}
}
