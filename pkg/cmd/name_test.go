package cmd

import (
	"testing"

	"github.com/pseudomuto/sqltools/pkg/cmd/testutil"
	"github.com/pseudomuto/sqltools/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestNameCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "primary key",
			args:     []string{"pk", "users", "id"},
			expected: utils.PrimaryKeyName("users", []string{"id"}),
		},
		{
			name:     "foreign key",
			args:     []string{"FK", "posts", "authorId"},
			expected: utils.ForeignKeyName("posts", []string{"authorId"}),
		},
		{
			name:     "relation",
			args:     []string{"rel", "profiles", "userId"},
			expected: utils.RelationKeyName("profiles", []string{"userId"}),
		},
		{
			name:     "unique",
			args:     []string{"uq", "users", "tenantId", "email"},
			expected: utils.UniqueName("users", []string{"email", "tenantId"}),
		},
		{
			name:     "check",
			args:     []string{"chk", "users", `"age" > 0`},
			expected: utils.CheckName("users", `"age" > 0`),
		},
		{
			name:     "index",
			args:     []string{"idx", "users", "email"},
			expected: utils.IndexName("users", []string{"email"}, ""),
		},
		{
			name:     "partial index",
			args:     []string{"--where", `"deletedAt" IS NULL`, "idx", "users", "email"},
			expected: utils.IndexName("users", []string{"email"}, `"deletedAt" IS NULL`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := testutil.RunCommand(t, name(), tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.expected+"\n", out)
		})
	}
}

func TestNameCommand_Errors(t *testing.T) {
	_, err := testutil.RunCommand(t, name(), "pk", "users")
	require.ErrorContains(t, err, "expected a kind, a table and at least one column")

	_, err = testutil.RunCommand(t, name(), "fn", "users", "id")
	require.ErrorContains(t, err, "unknown kind: fn")
}
