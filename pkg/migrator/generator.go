package migrator

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/consts"
	"github.com/pseudomuto/sqltools/pkg/utils"
)

var (
	// ErrNoChanges is returned when there are no statements to write.
	ErrNoChanges = errors.New("no differences found")

	nameReplacer = strings.NewReplacer(" ", "_", "-", "_")
)

// GenerateMigrationFile writes statements, one per line, to a new migration file in
// dir and updates the directory's sum file. The file is named after the current UTC
// time and, when given, the snake_cased name. The directory is created if needed.
//
// Example:
//
//	path, err := migrator.GenerateMigrationFile("migrations", "addEmail", []string{
//		`ALTER TABLE "users" ADD "email" character varying NOT NULL;`,
//	})
//	// path: migrations/20261018120000_add_email.sql
//
// Returns ErrNoChanges when statements is empty.
func GenerateMigrationFile(dir, name string, statements []string) (string, error) {
	if len(statements) == 0 {
		return "", ErrNoChanges
	}

	if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
		return "", errors.Wrapf(err, "failed to create migration directory: %s", dir)
	}

	filename := time.Now().UTC().Format(consts.MigrationTimeFormat)
	if name != "" {
		filename += "_" + utils.SnakeCase(nameReplacer.Replace(name))
	}

	path := filepath.Join(dir, filename+".sql")
	if _, err := os.Stat(path); err == nil {
		return "", errors.Errorf("migration file already exists: %s", path)
	}

	content := strings.Join(statements, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), consts.ModeFile); err != nil {
		return "", errors.Wrapf(err, "failed to write migration file: %s", path)
	}

	migrations, err := LoadMigrationDir(os.DirFS(dir))
	if err != nil {
		return "", err
	}

	if err := migrations.WriteSumFile(dir); err != nil {
		return "", err
	}

	return path, nil
}
