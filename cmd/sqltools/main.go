package main

import (
	"context"
	"os"

	"github.com/pseudomuto/sqltools/pkg/cmd"
	"github.com/pseudomuto/sqltools/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.Provide(context.Background),
		config.Module,
		cmd.Module,
		fx.NopLogger,
	).Run()
}
