package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/config"
	"github.com/pseudomuto/sqltools/pkg/migrator"
	"github.com/urfave/cli/v3"
)

// rehash creates a CLI command for regenerating the sum file for all migrations.
//
// The command loads every migration file from the migration directory, recomputes
// the chained hashes and overwrites sqltools.sum. Use it after intentionally editing
// a migration, otherwise generate refuses to run.
//
// Example usage:
//
//	sqltools rehash
func rehash(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "rehash",
		Usage: "Regenerate the sum file for all migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Migration directory (overrides the configured dir)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := migrationsDir(cfg, cmd)
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				return errors.Errorf("migrations directory does not exist: %s", dir)
			}

			migrations, err := migrator.LoadMigrationDir(os.DirFS(dir))
			if err != nil {
				return errors.Wrap(err, "failed to load migration directory")
			}

			if err := migrations.Rehash(); err != nil {
				return errors.Wrap(err, "failed to rehash migrations")
			}

			if err := migrations.WriteSumFile(dir); err != nil {
				return err
			}

			_, err = fmt.Fprintf(
				cmd.Root().Writer,
				"Successfully rehashed %d migration(s) and updated sum file\n",
				len(migrations.Migrations),
			)
			return err
		},
	}
}
