package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqltools/pkg/consts"
	"github.com/stretchr/testify/require"
)

// SnapshotFixture is a temporary directory holding a source and a target snapshot.
type SnapshotFixture struct {
	Dir    string
	Source string
	Target string
	t      *testing.T
}

// Snapshots writes the given source and target snapshot documents to a temporary
// directory.
func Snapshots(t *testing.T, source, target string) *SnapshotFixture {
	t.Helper()

	dir := t.TempDir()
	f := &SnapshotFixture{
		Dir:    dir,
		Source: filepath.Join(dir, "source.yaml"),
		Target: filepath.Join(dir, "target.yaml"),
		t:      t,
	}

	f.WriteSource(source)
	f.WriteTarget(target)
	return f
}

// WriteSource replaces the source snapshot.
func (f *SnapshotFixture) WriteSource(content string) {
	f.t.Helper()
	require.NoError(f.t, os.WriteFile(f.Source, []byte(content), consts.ModeFile))
}

// WriteTarget replaces the target snapshot.
func (f *SnapshotFixture) WriteTarget(content string) {
	f.t.Helper()
	require.NoError(f.t, os.WriteFile(f.Target, []byte(content), consts.ModeFile))
}

// MigrationsDir returns the path of the (not yet created) migration directory.
func (f *SnapshotFixture) MigrationsDir() string {
	return filepath.Join(f.Dir, consts.DefaultMigrationDir)
}

// Args returns the --source and --target flags pointing at the fixture.
func (f *SnapshotFixture) Args() []string {
	return []string{"--source", f.Source, "--target", f.Target}
}
