package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the default project configuration file name
	ConfigFile = "sqltools.yaml"

	// DefaultMigrationDir is used when the configuration doesn't specify a migration directory
	DefaultMigrationDir = "migrations"

	// SumFile is the name of the integrity file kept alongside migrations
	SumFile = "sqltools.sum"

	// MigrationTimeFormat is the UTC timestamp layout used to name generated migration files
	MigrationTimeFormat = "20060102150405"

	// FunctionHashMarker prefixes the content hash comment embedded in function bodies
	FunctionHashMarker = "-- sql-tools-hash="

	// FunctionHashPlaceholder is substituted for the hash while the hash itself is computed
	FunctionHashPlaceholder = "SQL_TOOLS_HASH_PLACEHOLDER"
)
