package cli

import (
	"context"
	"errors"
	"fmt"

	"recs-admin/internal/console"
	"recs-admin/internal/transport"
	"recs-admin/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var commandHelp = map[console.Command]struct {
	short   string
	example string
}{
	console.CommandCreate: {
		"Create a recommendation from the given fields",
		`  recctl create --name "Blue Widget Combo" --product-id 10 --recommended-product-id 20 --type cross-sell`,
	},
	console.CommandRetrieve: {
		"Retrieve the recommendation with --id",
		`  recctl retrieve --id 42`,
	},
	console.CommandUpdate: {
		"Replace the fields of the recommendation with --id",
		`  recctl update --id 42 --name "Blue Widget Combo" --product-id 10 --recommended-product-id 21 --type up-sell`,
	},
	console.CommandDelete: {
		"Delete the recommendation with --id",
		`  recctl delete --id 42`,
	},
	console.CommandSearch: {
		"Search recommendations matching every non-empty field",
		`  recctl search --product-id 10
  recctl search --type cross-sell --json`,
	},
}

// NewCommandCmd creates the subcommand that runs cmd once against the
// service.
func NewCommandCmd(cmd console.Command, opts *Options) *cobra.Command {
	help := commandHelp[cmd]
	return &cobra.Command{
		Use:     string(cmd),
		Short:   help.short,
		Example: help.example,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runCommand(c.Context(), c, cmd, opts)
		},
	}
}

// ErrCommandFailed is returned when the service rejected the command. The
// service message has already been printed.
var ErrCommandFailed = errors.New("command failed")

func runCommand(ctx context.Context, c *cobra.Command, cmd console.Command, opts *Options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	client := transport.NewClient(opts.baseURL(), logger.Component("transport"))
	recConsole := console.New(client, logger.Component("console"))

	// a one-shot session stands in for the page
	s := console.NewSessions().Get(uuid.New())
	state := opts.Form
	view := recConsole.Execute(ctx, s, cmd, &state)

	out := c.OutOrStdout()
	if opts.JSON {
		if err := printJSON(out, view); err != nil {
			return err
		}
	} else {
		printView(out, view)
	}

	if view.Message != console.MessageSuccess && view.Message != console.MessageDeleted {
		return fmt.Errorf("%w: %s", ErrCommandFailed, view.Message)
	}
	return nil
}
