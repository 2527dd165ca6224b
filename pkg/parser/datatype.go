package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ColumnType is the structured form of a column type declaration.
type ColumnType struct {
	// Name is the base type, words separated by a single space
	Name string
	// Length is set when the declaration carries a single modifier, e.g. varchar(36)
	Length *int
	// IsArray is true when the declaration has at least one [] dimension
	IsArray bool
	// Dimension is the size of the first array dimension, e.g. integer[3]
	Dimension *int
}

// String renders the type back into declaration form. Only the first array
// dimension is kept, so "integer[3][]" renders as "integer[3]".
func (c *ColumnType) String() string {
	var sb strings.Builder
	sb.WriteString(c.Name)

	if c.Length != nil {
		sb.WriteString("(" + strconv.Itoa(*c.Length) + ")")
	}

	if c.IsArray {
		size := ""
		if c.Dimension != nil {
			size = strconv.Itoa(*c.Dimension)
		}
		sb.WriteString("[" + size + "]")
	}

	return sb.String()
}

func (d *typeDecl) columnType() (*ColumnType, error) {
	words := make([]string, 0, len(d.Words))
	for _, word := range d.Words {
		words = append(words, unquote(word))
	}

	ct := &ColumnType{
		Name:    strings.Join(words, " "),
		IsArray: len(d.Dimensions) > 0,
	}

	switch {
	case len(d.Modifiers) == 1 && len(d.Suffix) == 0:
		length, err := strconv.Atoi(d.Modifiers[0])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid length for type %s", ct.Name)
		}
		ct.Length = &length
	case len(d.Modifiers) > 0:
		ct.Name += "(" + strings.Join(d.Modifiers, ",") + ")"
	}

	if len(d.Suffix) > 0 {
		ct.Name += " " + strings.Join(d.Suffix, " ")
	}

	if ct.IsArray && d.Dimensions[0].Size != nil {
		size, err := strconv.Atoi(*d.Dimensions[0].Size)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid array size for type %s", ct.Name)
		}
		ct.Dimension = &size
	}

	return ct, nil
}

func unquote(word string) string {
	if len(word) < 2 || word[0] != '"' {
		return word
	}

	return strings.ReplaceAll(word[1:len(word)-1], `""`, `"`)
}
