// Package cmd provides the CLI commands for the sqltools tool.
//
// Each command is implemented as a function returning a *cli.Command (urfave/cli/v3)
// and registered with the fx "commands" group, so dependencies such as the project
// configuration are injected rather than looked up.
//
// # Available Commands
//
//   - diff: print the SQL needed to bring the target snapshot in line with the source
//   - generate: write that SQL to a new migration file and update sqltools.sum
//   - watch: re-run diff whenever either snapshot changes
//   - rehash: regenerate sqltools.sum from the migrations on disk
//   - trigger: decode a pg_trigger.tgtype bitmask
//   - name: print the deterministic name of a constraint or index
//
// # Configuration
//
// Commands read sqltools.yaml from the working directory ($SQLTOOLS_CONFIG overrides
// the location) when present:
//
//	source: schema/source.yaml
//	target: schema/target.yaml
//	dir: db/migrations
//	comments: true
//	ignore:
//	  extensions:
//	    extra: true
//
// The --source and --target flags take precedence over the configured snapshots.
//
// # Example Usage
//
//	sqltools diff --source source.yaml --target target.yaml
//	sqltools generate --name add_users
//	sqltools trigger 5
//	sqltools name pk users id
package cmd
