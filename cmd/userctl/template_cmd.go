package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app "github.com/mohammadpnp/user-registry/internal/application/user"
	"github.com/mohammadpnp/user-registry/internal/infrastructure/spreadsheet"
)

func newTemplateCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the blank import spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := app.NewGenerateTemplate(spreadsheet.NewWriter()).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, tmpl.Content, 0o644); err != nil {
				return fmt.Errorf("write template: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(tmpl.Content))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", app.TemplateFileName, "Output path")
	return cmd
}
