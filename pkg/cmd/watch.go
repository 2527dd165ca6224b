package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/config"
	"github.com/pseudomuto/sqltools/pkg/format"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"github.com/urfave/cli/v3"
)

const watchDebounce = 200 * time.Millisecond

// watch creates a CLI command that prints the diff between the snapshots every time
// either of them changes.
//
// The directories containing the snapshots are watched rather than the files so
// editors that save by renaming a temporary file are picked up. Load failures are
// logged and the command keeps watching.
//
// Example usage:
//
//	sqltools watch --source schema/source.yaml --target schema/target.yaml
func watch(cfg *config.Config, opts schemadiff.Options, fmtOpts format.Options) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Print the diff whenever either snapshot changes",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "comments",
				Usage: "Append the reason for each change as a SQL comment",
				Value: fmtOpts.Comments,
			},
		}, snapshotFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths, err := resolveSnapshots(cfg, cmd)
			if err != nil {
				return err
			}

			w := &snapshotWatcher{
				paths: paths,
				run: func() error {
					changes, err := computeDiff(paths, opts)
					if err != nil {
						return err
					}

					out := cmd.Root().Writer
					statements := format.Render(changes, format.Options{Comments: cmd.Bool("comments")})
					if len(statements) == 0 {
						printNotice(out, "-- no changes")
						return nil
					}

					_, _ = fmt.Fprintln(out, "--", time.Now().Format(time.TimeOnly))
					return printSQL(out, statements)
				},
			}

			return w.watch(ctx)
		},
	}
}

type snapshotWatcher struct {
	paths snapshotPaths
	run   func() error
}

func (w *snapshotWatcher) watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer func() { _ = fsw.Close() }()

	files := map[string]bool{
		filepath.Clean(w.paths.source): true,
		filepath.Clean(w.paths.target): true,
	}

	dirs := map[string]bool{}
	for file := range files {
		dir := filepath.Dir(file)
		if dirs[dir] {
			continue
		}

		if err := fsw.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch: %s", dir)
		}
		dirs[dir] = true
	}

	w.rerun()

	// stopped until a relevant event arrives
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if files[filepath.Clean(event.Name)] {
				timer.Reset(watchDebounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Snapshot watcher error", "err", err)

		case <-timer.C:
			w.rerun()
		}
	}
}

func (w *snapshotWatcher) rerun() {
	if err := w.run(); err != nil {
		slog.Error("Failed to diff snapshots", "err", err)
	}
}
