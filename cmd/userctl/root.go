package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "userctl",
		Short:        "User registry admin tools",
		SilenceUsage: true,
	}
	cmd.AddCommand(newTemplateCmd())
	cmd.AddCommand(newImportCmd())
	return cmd
}
