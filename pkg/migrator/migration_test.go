package migrator_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/pseudomuto/sqltools/pkg/consts"
	. "github.com/pseudomuto/sqltools/pkg/migrator"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrationDir(t *testing.T) {
	dir := fstest.MapFS{
		"20261018130000_add_email.sql": {Data: []byte(`ALTER TABLE "users" ADD "email" text;` + "\n")},
		"20261018120000.sql":           {Data: []byte(`CREATE TABLE "users" ("id" integer NOT NULL);` + "\n")},
		"README.md":                    {Data: []byte("# migrations")},
	}

	migrations, err := LoadMigrationDir(dir)
	require.NoError(t, err)
	require.Len(t, migrations.Migrations, 2)
	require.Equal(t, 2, migrations.SumFile.Files())

	require.Equal(t, &Migration{
		Version: "20261018120000",
		File:    "20261018120000.sql",
		SQL:     `CREATE TABLE "users" ("id" integer NOT NULL);` + "\n",
	}, migrations.Migrations[0])
	require.Equal(t, "20261018130000", migrations.Migrations[1].Version)
	require.Equal(t, "add_email", migrations.Migrations[1].Name)

	// no sum file yet
	ok, err := migrations.Validate()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMigrationDir_Validate(t *testing.T) {
	root := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), consts.ModeFile))
	}

	empty, err := LoadMigrationDir(os.DirFS(root))
	require.NoError(t, err)

	ok, err := empty.Validate()
	require.NoError(t, err)
	require.True(t, ok)

	write("20261018120000.sql", `DROP TABLE "users";`+"\n")

	migrations, err := LoadMigrationDir(os.DirFS(root))
	require.NoError(t, err)
	require.NoError(t, migrations.WriteSumFile(root))

	migrations, err = LoadMigrationDir(os.DirFS(root))
	require.NoError(t, err)

	ok, err = migrations.Validate()
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("modified migration", func(t *testing.T) {
		write("20261018120000.sql", `DROP TABLE "posts";`+"\n")

		migrations, err := LoadMigrationDir(os.DirFS(root))
		require.NoError(t, err)

		ok, err := migrations.Validate()
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, migrations.Rehash())
		require.NoError(t, migrations.WriteSumFile(root))

		ok, err = migrations.Validate()
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("nil filesystem", func(t *testing.T) {
		_, err := (&MigrationDir{}).Validate()
		require.Error(t, err)
		require.Error(t, (&MigrationDir{}).Rehash())
	})
}

func TestGenerateMigrationFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "migrations")

	_, err := GenerateMigrationFile(root, "", nil)
	require.ErrorIs(t, err, ErrNoChanges)

	path, err := GenerateMigrationFile(root, "addEmail", []string{
		`ALTER TABLE "users" ADD "email" text;`,
		`CREATE INDEX "IDX_email" ON "users" ("email");`,
	})
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^\d{14}_add_email\.sql$`), filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `ALTER TABLE "users" ADD "email" text;`+"\n"+`CREATE INDEX "IDX_email" ON "users" ("email");`+"\n", string(content))

	sum, err := os.ReadFile(filepath.Join(root, consts.SumFile))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(sum)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], filepath.Base(path)+" h1:"))

	migrations, err := LoadMigrationDir(os.DirFS(root))
	require.NoError(t, err)

	ok, err := migrations.Validate()
	require.NoError(t, err)
	require.True(t, ok)
}
