// Package version provides the version subcommand for the oneliners CLI.
// The variables below are populated at build time via ldflags.
package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version of the build.
	Version = "unreleased"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// Branch is the git branch the binary was built from.
	Branch = "unknown"
)

// Command returns the version subcommand.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version: %s\nCommit: %s\nBranch: %s\n", Version, Commit, Branch)
		},
	}
}
