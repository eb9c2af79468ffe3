package cli

import (
	"github.com/spf13/cobra"

	"github.com/naatacademy/kalaamdesk/internal/transfer"
)

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <kind>",
		Short: "Print a collection",
		Long: `Print a collection.

Text output shows one record per line (id and display field); json output
prints the full transfer document.`,
		Args: cobra.ExactArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}
}

func runShow(opts *RootOptions, name string, cmd *cobra.Command) error {
	kind, err := lookupKind(opts, name)
	if err != nil {
		return err
	}
	db, err := openCache(opts)
	if err != nil {
		return err
	}
	defer db.Close()

	col, err := db.Get(kind.Name)
	if err != nil {
		return WrapExitError(ExitCommandError, "read collection", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		data, err := transfer.Export(col)
		if err != nil {
			return WrapExitError(ExitCommandError, "serialize collection", err)
		}
		out.Textf("%s", data)
		return nil
	}

	if len(col) == 0 {
		out.Textf("no records in %q\n", kind.Name)
		return nil
	}
	for _, rec := range col {
		out.Textf("%-14s %s\n", rec.ID(), rec.String(kind.DisplayField))
	}
	return nil
}
