package cli

import "github.com/spf13/cobra"

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known collection kinds and their record counts",
		Args:  cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}
}

type kindSummary struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Records int    `json:"records"`
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	reg, err := loadRegistry(opts)
	if err != nil {
		return err
	}
	db, err := openCache(opts)
	if err != nil {
		return err
	}
	defer db.Close()

	var summaries []kindSummary
	for _, kind := range reg.Kinds() {
		col, err := db.Get(kind.Name)
		if err != nil {
			return WrapExitError(ExitCommandError, "read collection", err)
		}
		summaries = append(summaries, kindSummary{
			Name:    kind.Name,
			Title:   kind.Title,
			Records: len(col),
		})
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.PrintJSON(summaries)
	}
	for _, s := range summaries {
		out.Textf("%-12s %-14s %d records\n", s.Name, s.Title, s.Records)
	}
	return nil
}
