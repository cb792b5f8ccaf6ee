package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the pkgsmith command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgsmith",
		Short: "pkgsmith - package scaffolding from reusable templates",
		Long: `pkgsmith scaffolds new Julia packages from a reusable template: it creates
the directory tree, initializes a git repository, and generates README,
license, ignore file, test entrypoint and per-plugin CI/documentation
configuration.

Templates are assembled interactively, from command-line flags, or from a
YAML template file, and compose independent plugins (Travis CI, AppVeyor,
GitLab CI, Codecov, Coveralls, Documenter, GitHub Pages).`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newCreateCommand())
	rootCmd.AddCommand(newLicensesCommand())
	rootCmd.AddCommand(newPluginsCommand())

	return rootCmd
}
