package cmd

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/config"
	"github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/urfave/cli/v3"
)

type snapshotPaths struct {
	source string
	target string
}

func snapshotFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "Snapshot of the desired schema (overrides the configured source)",
		},
		&cli.StringFlag{
			Name:  "target",
			Usage: "Snapshot of the current database schema (overrides the configured target)",
		},
	}
}

// resolveSnapshots returns the snapshot paths for the command. Flags take precedence
// over the configuration, which may be nil.
func resolveSnapshots(cfg *config.Config, cmd *cli.Command) (snapshotPaths, error) {
	var paths snapshotPaths
	if cfg != nil {
		paths.source = cfg.Source
		paths.target = cfg.Target
	}

	if v := cmd.String("source"); v != "" {
		paths.source = v
	}
	if v := cmd.String("target"); v != "" {
		paths.target = v
	}

	if paths.source == "" {
		return paths, errors.New("no source snapshot given (use --source or set source in the config)")
	}
	if paths.target == "" {
		return paths, errors.New("no target snapshot given (use --target or set target in the config)")
	}

	return paths, nil
}

// computeDiff loads both snapshots and returns the ordered changes between them.
func computeDiff(paths snapshotPaths, opts schemadiff.Options) ([]schemadiff.Diff, error) {
	source, err := schema.LoadSnapshotFile(paths.source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load source snapshot")
	}

	target, err := schema.LoadSnapshotFile(paths.target)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load target snapshot")
	}

	changes := schemadiff.GenerateDiff(source, target, opts)
	slog.Debug("Compared snapshots", "source", paths.source, "target", paths.target, "changes", len(changes))
	return changes, nil
}
