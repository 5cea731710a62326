package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/notequiz-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

var migrateCommands = []string{
	postgres.MigrateUp,
	postgres.MigrateDown,
	postgres.MigrateStatus,
	postgres.MigrateVersion,
	postgres.MigrateReset,
	postgres.MigrateUpTo,
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [" + strings.Join(migrateCommands, "|") + "] [version]",
		Short:     "Apply or inspect database schema migrations",
		Long:      "Runs goose against the migrations embedded in the binary. up-to takes a target version.",
		ValidArgs: migrateCommands,
		Args:      validateMigrateArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, log, err := loadAppConfig(*configPath)
			if err != nil {
				return err
			}

			db, err := openDatabase(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("error closing database connection", slog.String("error", err.Error()))
				}
			}()

			return postgres.Migrate(ctx, db, log, args[0], args[1:]...)
		},
	}
}

func validateMigrateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a migration command is required: %s", strings.Join(migrateCommands, ", "))
	}

	command := args[0]
	known := false
	for _, c := range migrateCommands {
		if c == command {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown migration command %q", command)
	}

	if command == postgres.MigrateUpTo {
		if len(args) != 2 {
			return fmt.Errorf("up-to requires exactly one version argument")
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("%s takes no arguments", command)
	}
	return nil
}
