package migrator

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/consts"
)

type (
	// Migration is a single migration file.
	Migration struct {
		// Version is the timestamp prefix of the file name (e.g. "20261018120000")
		Version string
		// Name is the optional suffix of the file name (e.g. "add_email")
		Name string
		// File is the file's path relative to the migration directory
		File string
		// SQL is the file's content
		SQL string
	}

	// MigrationDir is a directory of migrations along with its integrity record.
	MigrationDir struct {
		// Migrations are sorted by file name, which is application order
		Migrations []*Migration
		// SumFile is computed from the migrations currently on disk
		SumFile *SumFile

		// stored is the sum file found in the directory, nil when there is none
		stored *SumFile
		fs     fs.FS
	}
)

// LoadMigrationDir loads every .sql file in dir (walked in lexical order) along with
// the directory's sqltools.sum, if present.
//
// Example:
//
//	dir, err := migrator.LoadMigrationDir(os.DirFS("migrations"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, m := range dir.Migrations {
//		fmt.Println(m.Version, m.Name)
//	}
func LoadMigrationDir(dir fs.FS) (*MigrationDir, error) {
	m := &MigrationDir{fs: dir}
	if err := m.load(); err != nil {
		return nil, err
	}

	f, err := dir.Open(consts.SumFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return m, nil
	case err != nil:
		return nil, errors.Wrapf(err, "failed to open: %s", consts.SumFile)
	}
	defer func() { _ = f.Close() }()

	if m.stored, err = LoadSumFile(f); err != nil {
		return nil, errors.Wrapf(err, "failed to load: %s", consts.SumFile)
	}

	return m, nil
}

// Rehash reloads the migrations from disk and recomputes the sum file. Use
// WriteSumFile to persist the result.
func (m *MigrationDir) Rehash() error {
	if m.fs == nil {
		return errors.New("cannot rehash: filesystem reference is nil")
	}

	return m.load()
}

// Validate reports whether the stored sum file matches the migrations on disk. A
// directory without migrations is valid without a sum file.
func (m *MigrationDir) Validate() (bool, error) {
	if m.fs == nil {
		return false, errors.New("cannot validate: filesystem reference is nil")
	}

	if m.stored == nil {
		return len(m.Migrations) == 0, nil
	}

	return m.SumFile.Equal(m.stored), nil
}

// WriteSumFile writes the computed sum file to sqltools.sum in dir, which is expected
// to be the directory the migrations were loaded from.
func (m *MigrationDir) WriteSumFile(dir string) error {
	path := filepath.Join(dir, consts.SumFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, consts.ModeFile)
	if err != nil {
		return errors.Wrapf(err, "failed to create sum file: %s", path)
	}
	defer func() { _ = f.Close() }()

	if _, err := m.SumFile.WriteTo(f); err != nil {
		return errors.Wrapf(err, "failed to write sum file: %s", path)
	}

	m.stored = m.SumFile
	return nil
}

func (m *MigrationDir) load() error {
	m.Migrations = nil
	m.SumFile = NewSumFile()

	return fs.WalkDir(m.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || path.Ext(p) != ".sql" {
			return nil
		}

		f, err := m.fs.Open(p)
		if err != nil {
			return errors.Wrapf(err, "failed to open: %s", p)
		}
		defer func() { _ = f.Close() }()

		content, err := io.ReadAll(f)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration: %s", p)
		}

		m.Migrations = append(m.Migrations, newMigration(p, string(content)))
		m.SumFile.AddFile(p, content)
		return nil
	})
}

func newMigration(file, sql string) *Migration {
	base := strings.TrimSuffix(path.Base(file), ".sql")
	version, name, _ := strings.Cut(base, "_")

	return &Migration{
		Version: version,
		Name:    name,
		File:    file,
		SQL:     sql,
	}
}
