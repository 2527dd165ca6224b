package cmd

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/config"
	"github.com/pseudomuto/sqltools/pkg/consts"
	"github.com/pseudomuto/sqltools/pkg/format"
	"github.com/pseudomuto/sqltools/pkg/migrator"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/urfave/cli/v3"
)

// generate creates a CLI command that writes the diff between the snapshots to a new
// migration file.
//
// The existing migrations are validated against sqltools.sum first, so a migration
// is never generated on top of files that were edited after being recorded. After
// writing the file the sum file is updated to include it.
//
// Example usage:
//
//	sqltools generate --name add_users
//	# Generated migration: migrations/20261018120000_add_users.sql
func generate(cfg *config.Config, opts schemadiff.Options, fmtOpts format.Options) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write the diff between the snapshots to a new migration file",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Descriptive suffix for the migration file name",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Migration directory (overrides the configured dir)",
			},
			&cli.BoolFlag{
				Name:  "comments",
				Usage: "Append the reason for each change as a SQL comment",
				Value: fmtOpts.Comments,
			},
		}, snapshotFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := migrationsDir(cfg, cmd)
			if err := validateMigrations(dir); err != nil {
				return err
			}

			paths, err := resolveSnapshots(cfg, cmd)
			if err != nil {
				return err
			}

			changes, err := computeDiff(paths, opts)
			if err != nil {
				return err
			}

			statements := format.Render(changes, format.Options{Comments: cmd.Bool("comments")})
			path, err := migrator.GenerateMigrationFile(dir, cmd.String("name"), statements)
			if errors.Is(err, migrator.ErrNoChanges) {
				printNotice(cmd.Root().Writer, "No changes found")
				return nil
			}
			if err != nil {
				return errors.Wrap(err, "failed to generate migration")
			}

			printSuccess(cmd.Root().Writer, "Generated migration: %s", path)
			return nil
		},
	}
}

func migrationsDir(cfg *config.Config, cmd *cli.Command) string {
	if dir := cmd.String("dir"); dir != "" {
		return dir
	}

	if cfg != nil && cfg.Dir != "" {
		return cfg.Dir
	}

	return consts.DefaultMigrationDir
}

// validateMigrations checks the migrations in dir against the recorded sum file. A
// missing directory is valid since it'll be created with the first migration.
func validateMigrations(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	migrations, err := migrator.LoadMigrationDir(os.DirFS(dir))
	if err != nil {
		return errors.Wrap(err, "failed to load migration directory")
	}

	valid, err := migrations.Validate()
	if err != nil {
		return errors.Wrap(err, "failed to validate migration directory")
	}
	if !valid {
		return errors.New("migration directory failed validation - files have been modified (run `sqltools rehash` to accept the changes)")
	}

	return nil
}
