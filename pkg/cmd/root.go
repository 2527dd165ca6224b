package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the sqltools CLI application and runs it with the given arguments
// once the fx application starts. The application shuts down with exit code 1 when
// the command fails.
//
// Example usage:
//
//	fx.New(
//		fx.Supply(os.Args, &cmd.Version{Version: "v1.0.0"}),
//		fx.Provide(func() context.Context { return ctx }),
//		config.Module,
//		cmd.Module,
//	).Run()
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqltools",
		Usage: "Generate Postgres migrations from schema snapshots",
		Description: `sqltools compares a snapshot of the desired schema with a snapshot of the
current database and prints (or writes to a migration file) the ordered DDL
needed to bring the database in line with the desired schema.`,
		Version:  p.Version.Version,
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
