package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqltools/pkg/schema"
	"github.com/urfave/cli/v3"
)

// trigger creates a CLI command that decodes a pg_trigger.tgtype value, which helps
// when hand-writing trigger entries for a snapshot from a catalog query.
//
// Example usage:
//
//	sqltools trigger 7
//	# scope: row
//	# timing: before
//	# actions: insert
func trigger() *cli.Command {
	return &cli.Command{
		Name:      "trigger",
		Usage:     "Decode a pg_trigger.tgtype bitmask",
		ArgsUsage: "<tgtype>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("expected exactly one trigger type")
			}

			code, err := strconv.Atoi(cmd.Args().First())
			if err != nil {
				return errors.Wrapf(err, "invalid trigger type: %s", cmd.Args().First())
			}

			tt, err := schema.ParseTriggerType(code)
			if err != nil {
				return err
			}

			actions := make([]string, len(tt.Actions))
			for i, a := range tt.Actions {
				actions[i] = string(a)
			}

			w := cmd.Root().Writer
			_, _ = fmt.Fprintf(w, "scope: %s\n", tt.Scope)
			_, _ = fmt.Fprintf(w, "timing: %s\n", tt.Timing)
			_, err = fmt.Fprintf(w, "actions: %s\n", strings.Join(actions, ", "))
			return err
		},
	}
}
