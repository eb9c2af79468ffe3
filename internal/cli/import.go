package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/naatacademy/kalaamdesk/internal/transfer"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Yes bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <kind> <file>",
		Short: "Import a transfer document, replacing the whole collection",
		Long: `Import a transfer document, replacing the whole collection.

The document is parsed and validated first; only after an explicit
confirmation is the live collection replaced. A rejected document or a
declined confirmation leaves the collection untouched.`,
		Args: cobra.ExactArgs(2),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "replace without prompting")

	return cmd
}

func runImport(opts *ImportOptions, name, path string, cmd *cobra.Command) error {
	kind, err := lookupKind(opts.RootOptions, name)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "open document", err)
	}
	defer f.Close()

	pending, err := transfer.Parse(f)
	if err != nil {
		return WrapExitError(ExitFailure, "Import Error", err)
	}

	if !opts.Yes {
		prompt := fmt.Sprintf("This will replace all data in '%s' with %d records. Continue? [y/N] ",
			kind.CacheKey(), pending.Len())
		if !confirmOnStdin(cmd, prompt) {
			fmt.Fprintln(cmd.ErrOrStderr(), "import cancelled, collection untouched")
			return nil
		}
	}

	db, err := openCache(opts.RootOptions)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Set(kind.Name, pending.Collection()); err != nil {
		return WrapExitError(ExitCommandError, "replace collection", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "imported %d records into %q\n", pending.Len(), kind.Name)
	return nil
}

// confirmOnStdin asks a yes/no question on the command's input stream.
// Anything but "y"/"yes" declines.
func confirmOnStdin(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
