package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgsmith/pkgsmith/internal/core/scaffold"
	"github.com/pkgsmith/pkgsmith/internal/infrastructure/terminal"
	"github.com/pkgsmith/pkgsmith/internal/licenses"
)

// newLicensesCommand creates the licenses subcommand.
func newLicensesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "licenses [identifier]",
		Short: "List known licenses, or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				text, err := licenses.Resolve(args[0])
				if err != nil {
					return err
				}
				fmt.Print(text)
				return nil
			}
			for _, code := range licenses.Codes() {
				fmt.Println(code)
			}
			return nil
		},
	}
	return cmd
}

// newPluginsCommand creates the plugins subcommand.
func newPluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List available plugin kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range scaffold.Kinds() {
				fmt.Printf("%-10s %s\n", kind.Code, terminal.Muted.Render(kind.Summary))
			}
			return nil
		},
	}
}
