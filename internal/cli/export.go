package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naatacademy/kalaamdesk/internal/transfer"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <kind>",
		Short: "Export a collection as a transfer document",
		Long: `Export a collection as a transfer document.

Without -o the document is written to the kind's fixed export filename
(e.g. kalaam.json). Use "-o -" for stdout.`,
		Args: cobra.ExactArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default: the kind's export filename, \"-\" for stdout)")

	return cmd
}

func runExport(opts *ExportOptions, name string, cmd *cobra.Command) error {
	kind, err := lookupKind(opts.RootOptions, name)
	if err != nil {
		return err
	}
	db, err := openCache(opts.RootOptions)
	if err != nil {
		return err
	}
	defer db.Close()

	col, err := db.Get(kind.Name)
	if err != nil {
		return WrapExitError(ExitCommandError, "read collection", err)
	}
	data, err := transfer.Export(col)
	if err != nil {
		return WrapExitError(ExitCommandError, "serialize collection", err)
	}

	target := opts.Output
	if target == "" {
		target = kind.ExportFile
	}
	if target == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return WrapExitError(ExitCommandError, "write export", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "exported %d records to %s\n", len(col), target)
	return nil
}
