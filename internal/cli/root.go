// Package cli implements the kalaamdesk admin commands over a SQLite cache
// file: inspecting collections, exporting and importing transfer documents,
// and listing the revision audit trail.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naatacademy/kalaamdesk/internal/cache"
	"github.com/naatacademy/kalaamdesk/internal/catalog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	CachePath string
	KindsPath string
	Format    string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the kalaamdesk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kalaamdesk",
		Short: "Content catalog cache administration",
		Long:  "Manage the multilingual content catalog cache: collections, transfer documents and revision history.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.CachePath, "cache", "kalaamdesk.db", "path to the cache database")
	cmd.PersistentFlags().StringVar(&opts.KindsPath, "kinds", "", "path to a kinds registry file (default: embedded)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openCache opens the cache database named by the global flag.
func openCache(opts *RootOptions) (*cache.SQLite, error) {
	db, err := cache.Open(opts.CachePath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open cache", err)
	}
	return db, nil
}

// loadRegistry loads the kinds registry: the override file when given,
// otherwise the embedded default.
func loadRegistry(opts *RootOptions) (*catalog.Registry, error) {
	if opts.KindsPath == "" {
		return catalog.Default(), nil
	}
	reg, err := catalog.LoadFile(opts.KindsPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load kinds", err)
	}
	return reg, nil
}

// lookupKind resolves a kind argument against the registry.
func lookupKind(opts *RootOptions, name string) (catalog.Kind, error) {
	reg, err := loadRegistry(opts)
	if err != nil {
		return catalog.Kind{}, err
	}
	kind, ok := reg.Lookup(name)
	if !ok {
		return catalog.Kind{}, NewExitError(ExitCommandError, fmt.Sprintf("unknown kind %q", name))
	}
	return kind, nil
}
