package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/utils"
	"github.com/urfave/cli/v3"
)

var keyNamers = map[string]func(table string, columns []string) string{
	"pk":  utils.PrimaryKeyName,
	"fk":  utils.ForeignKeyName,
	"rel": utils.RelationKeyName,
	"uq":  utils.UniqueName,
}

// name creates a CLI command that prints the generated name of a constraint or
// index. Snapshots may omit these names, in which case the same ones are used.
//
// Example usage:
//
//	sqltools name pk users id
//	sqltools name idx users email --where '"deletedAt" IS NULL'
//	sqltools name chk users '"age" > 0'
func name() *cli.Command {
	return &cli.Command{
		Name:      "name",
		Usage:     "Print the generated name of a constraint or index",
		ArgsUsage: "<pk|fk|rel|uq|chk|idx> <table> <column|expression>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "where",
				Usage: "Where clause of a partial index (idx only)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 3 {
				return errors.New("expected a kind, a table and at least one column")
			}

			kind, table, values := strings.ToLower(args[0]), args[1], args[2:]

			var key string
			switch kind {
			case "chk":
				key = utils.CheckName(table, strings.Join(values, " "))
			case "idx":
				key = utils.IndexName(table, values, cmd.String("where"))
			default:
				namer, ok := keyNamers[kind]
				if !ok {
					return errors.Errorf("unknown kind: %s", kind)
				}

				key = namer(table, values)
			}

			_, err := fmt.Fprintln(cmd.Root().Writer, key)
			return err
		},
	}
}
