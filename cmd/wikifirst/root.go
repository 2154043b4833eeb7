// Package main provides the entry point for the wikifirst CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wikifirst.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikifirst",
		Short: "Extract the first link of every article from a wiki export",
		Long: `wikifirst streams a MediaWiki XML export and emits, for every article,
the first meaningful wiki link in its body text - the data needed to
build a link graph or play the "first link" chasing game.

Redirect stubs, disambiguation pages, template blocks, citations, and
parenthetical asides are filtered out before the link is chosen. Dumps
are processed in a single forward pass, so arbitrarily large exports
fit in constant memory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExtractCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
