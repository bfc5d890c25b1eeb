// Package command defines the console's cobra command tree. Commands
// talk to the remote API through the shared App collaborators and
// render grids and notifications; no business logic lives here.
package command

import (
	"github.com/spf13/cobra"

	"salespulse/app"
)

var (
	verbose bool

	// console is initialized once per invocation by the root command.
	console *app.App
)

// NewRoot builds the root command and its subcommand tree.
func NewRoot(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "salespulse",
		Short:   "Sales Pulse - garment trading administration console",
		Version: version,
		Long: `Sales Pulse is the administration console of a garment trading
operation: contacts, visit purposes, field visits with photo evidence,
and sales orders with per-size quantity line items.

It is a thin client: every record lives behind the remote Sales Pulse
REST API. Log in first, then use the subcommands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			console, err = app.Initialize(verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if console != nil {
				console.Close()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newContactsCmd(),
		newPurposesCmd(),
		newVisitsCmd(),
		newOrdersCmd(),
		newUsersCmd(),
		newConfigCmd(),
	)
	return root
}
