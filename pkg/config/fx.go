package config

import (
	"os"

	"github.com/pseudomuto/sqltools/pkg/consts"
	"go.uber.org/fx"
)

// EnvConfigFile overrides the location of the configuration file.
const EnvConfigFile = "SQLTOOLS_CONFIG"

var Module = fx.Module("config", fx.Provide(
	// Loads the configuration if the file exists. Returns nil otherwise so commands
	// that take their input from flags (or don't need any) still work.
	func() (*Config, error) {
		path := Path()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(path)
	},
	(*Config).DiffOptions,
	(*Config).FormatOptions,
))

// Path returns the configuration file location: $SQLTOOLS_CONFIG when set, otherwise
// sqltools.yaml in the working directory.
func Path() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}

	return consts.ConfigFile
}
