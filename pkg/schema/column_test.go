package schema_test

import (
	"testing"

	. "github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/pseudomuto/sqltools/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestColumn_SQLType(t *testing.T) {
	tests := []struct {
		name     string
		column   Column
		expected string
	}{
		{name: "plain", column: Column{Type: "uuid"}, expected: "uuid"},
		{name: "length", column: Column{Type: "character varying", Length: utils.Ptr(255)}, expected: "character varying(255)"},
		{name: "array", column: Column{Type: "text", IsArray: true}, expected: "text[]"},
		{name: "sized array", column: Column{Type: "integer", IsArray: true, Length: utils.Ptr(3)}, expected: "integer[3]"},
		{name: "enum", column: Column{Type: "enum", EnumName: "user_status"}, expected: "user_status"},
		{name: "enum array", column: Column{Type: "enum", EnumName: "user_status", IsArray: true}, expected: "user_status[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.column.SQLType())
		})
	}
}

func TestIndex_Method(t *testing.T) {
	require.Equal(t, "btree", (&Index{}).Method())
	require.Equal(t, "btree", (&Index{Using: utils.Ptr("")}).Method())
	require.Equal(t, "gin", (&Index{Using: utils.Ptr("gin")}).Method())
}

func TestForeignKeyConstraint_Actions(t *testing.T) {
	fk := &ForeignKeyConstraint{}
	require.Equal(t, ActionNoAction, fk.DeleteAction())
	require.Equal(t, ActionNoAction, fk.UpdateAction())

	fk.OnDelete = ActionCascade
	require.Equal(t, ActionCascade, fk.DeleteAction())
	require.Equal(t, ConstraintForeignKey, fk.Type())
	require.Same(t, &fk.ConstraintBase, fk.Base())
}
