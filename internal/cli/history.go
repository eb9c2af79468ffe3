package cli

import "github.com/spf13/cobra"

// NewHistoryCommand creates the history command.
func NewHistoryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history <kind>",
		Short: "List saved revisions of a collection, newest first",
		Args:  cobra.ExactArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}
}

type revisionSummary struct {
	ID      string `json:"id"`
	SavedAt string `json:"saved_at"`
}

func runHistory(opts *RootOptions, name string, cmd *cobra.Command) error {
	kind, err := lookupKind(opts, name)
	if err != nil {
		return err
	}
	db, err := openCache(opts)
	if err != nil {
		return err
	}
	defer db.Close()

	revs, err := db.Revisions(kind.Name)
	if err != nil {
		return WrapExitError(ExitCommandError, "read revisions", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		summaries := make([]revisionSummary, 0, len(revs))
		for _, r := range revs {
			summaries = append(summaries, revisionSummary{ID: r.ID, SavedAt: r.SavedAt})
		}
		return out.PrintJSON(summaries)
	}

	if len(revs) == 0 {
		out.Textf("no revisions for %q\n", kind.Name)
		return nil
	}
	for _, r := range revs {
		out.Textf("%s  %s\n", r.ID, r.SavedAt)
	}
	return nil
}
