package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/consts"
	"github.com/pseudomuto/sqltools/pkg/format"
	"github.com/pseudomuto/sqltools/pkg/schemadiff"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration.
type Config struct {
	// Source is the snapshot of the desired schema
	Source string `yaml:"source"`

	// Target is the snapshot of the current database schema
	Target string `yaml:"target"`

	// Dir specifies the directory where migration files are stored
	Dir string `yaml:"dir"`

	// Comments appends the reason for each change to the generated statements
	Comments bool `yaml:"comments"`

	// Ignore suppresses creates (missing) or drops (extra) per entity kind
	Ignore schemadiff.Options `yaml:"ignore"`
}

// LoadConfig parses a project configuration from r. Dir defaults to
// consts.DefaultMigrationDir. An empty document yields the defaults.
//
// Example:
//
//	yamlData := `
//	source: schema/source.yaml
//	target: schema/target.yaml
//	dir: db/migrations
//	ignore:
//	  extensions:
//	    extra: true
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Migration dir: %s\n", cfg.Dir)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Dir == "" {
		cfg.Dir = consts.DefaultMigrationDir
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// DiffOptions returns the comparison options. A nil config compares everything.
func (c *Config) DiffOptions() schemadiff.Options {
	if c == nil {
		return schemadiff.Options{}
	}

	return c.Ignore
}

// FormatOptions returns the rendering options. A nil config uses format.Defaults.
func (c *Config) FormatOptions() format.Options {
	if c == nil {
		return format.Defaults
	}

	return format.Options{Comments: c.Comments}
}
