package schemadiff_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqltools/pkg/format"
	"github.com/pseudomuto/sqltools/pkg/schema"
	. "github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	tests := []struct {
		name string
		opts format.Options
	}{
		{name: "create_schema", opts: format.Defaults},
		{name: "alter_schema", opts: format.Options{Comments: true}},
		{name: "drop_schema", opts: format.Defaults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := schema.LoadSnapshotFile(filepath.Join("testdata", tt.name, "source.yaml"))
			require.NoError(t, err)

			target, err := schema.LoadSnapshotFile(filepath.Join("testdata", tt.name, "target.yaml"))
			require.NoError(t, err)

			diffs := GenerateDiff(source, target, Options{})

			var buf bytes.Buffer
			require.NoError(t, format.Format(&buf, tt.opts, diffs...))
			golden.Assert(t, buf.String(), tt.name+".sql")

			// a snapshot never differs from itself
			require.Empty(t, GenerateDiff(source, source, Options{}))
			require.Empty(t, GenerateDiff(target, target, Options{}))
		})
	}
}
