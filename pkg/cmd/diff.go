package cmd

import (
	"context"

	"github.com/k0kubun/pp/v3"
	"github.com/pseudomuto/sqltools/pkg/config"
	"github.com/pseudomuto/sqltools/pkg/format"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/urfave/cli/v3"
)

func diff(cfg *config.Config, opts schemadiff.Options, fmtOpts format.Options) *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "Print the SQL needed to migrate the target schema to the source schema",
		Description: `Compares the source snapshot (desired schema) with the target snapshot
(current database) and prints the ordered statements that turn the target into
the source. Nothing is printed when the schemas are identical.

Snapshots come from sqltools.yaml unless --source or --target are given.`,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "comments",
				Usage: "Append the reason for each change as a SQL comment",
				Value: fmtOpts.Comments,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Dump the computed changes instead of SQL",
			},
		}, snapshotFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths, err := resolveSnapshots(cfg, cmd)
			if err != nil {
				return err
			}

			changes, err := computeDiff(paths, opts)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if cmd.Bool("debug") {
				printer := pp.New()
				printer.SetOutput(w)
				printer.SetColoringEnabled(isTerminal(w))
				_, err := printer.Println(changes)
				return err
			}

			return printSQL(w, format.Render(changes, format.Options{Comments: cmd.Bool("comments")}))
		},
	}
}
