package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	app "github.com/mohammadpnp/user-registry/internal/application/user"
	"github.com/mohammadpnp/user-registry/internal/bootstrap"
	"github.com/mohammadpnp/user-registry/internal/config"
	"github.com/mohammadpnp/user-registry/internal/infrastructure/file"
	"github.com/mohammadpnp/user-registry/internal/logging"
)

var errImportRejected = errors.New("import rejected")

type importOutput struct {
	Command    string `json:"command"`
	File       string `json:"file"`
	DurationMS int64  `json:"duration_ms"`
	Result     any    `json:"result"`
}

func newImportCmd() *cobra.Command {
	var (
		baseDir  string
		maxBytes int64
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import users from an xlsx file into the configured database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			source := file.NewLocalSource(baseDir, maxBytes)

			content, err := source.ReadFile(ctx, args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

			stores, err := bootstrap.OpenStores(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer stores.Close()

			uc := bootstrap.NewImportUseCase(cfg, logger, stores.Users, stores.BulkInserter, nil)

			start := time.Now()
			result, err := uc.Execute(ctx, app.ImportUsersFromSpreadsheetInput{Content: content})
			if err != nil {
				return err
			}

			if err := writeJSON(cmd.OutOrStdout(), importOutput{
				Command:    "import",
				File:       source.Resolve(args[0]),
				DurationMS: time.Since(start).Milliseconds(),
				Result:     result,
			}); err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("%w: %s", errImportRejected, result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", ".", "Directory relative paths resolve against")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", file.DefaultMaxBytes, "Largest file accepted, in bytes")
	return cmd
}
