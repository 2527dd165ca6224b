package utils_test

import (
	"testing"
	"time"

	"github.com/pseudomuto/sqltools/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestSQLValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		ok       bool
	}{
		{name: "nil", input: nil, expected: "", ok: false},
		{name: "null", input: utils.Null, expected: "null", ok: true},
		{name: "int", input: 42, expected: "42", ok: true},
		{name: "negative int64", input: int64(-7), expected: "-7", ok: true},
		{name: "float", input: 1.5, expected: "1.5", ok: true},
		{name: "true", input: true, expected: "true", ok: true},
		{name: "false", input: false, expected: "false", ok: true},
		{name: "string", input: "active", expected: "'active'", ok: true},
		{name: "string with quote", input: "it's", expected: "'it''s'", ok: true},
		{name: "function", input: func() string { return "now()" }, expected: "now()", ok: true},
		{
			name:     "time",
			input:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			expected: "'2024-01-02T03:04:05.000Z'",
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := utils.SQLValue(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, value)
		})
	}
}
