package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/noteapp/persistence/v1/schema"
	"github.com/ribgsilva/noteapp/platform/database"
	"github.com/ribgsilva/noteapp/platform/env"
	"github.com/ribgsilva/noteapp/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command returns the "schema" command group. The database is opened before the first sub command runs;
// closing it is left to the caller.
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes schema",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if sys.R.Database != nil {
				return nil
			}
			return initVars(cmd.Context(), log)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("creating schema")
			if err := schema.Create(cmd.Context()); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
			cmd.Println("created schema")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Deletes the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("deleting schema")
			if err := schema.Drop(cmd.Context()); err != nil {
				return fmt.Errorf("failed to delete schema: %w", err)
			}
			cmd.Println("deleted schema")
			return nil
		},
	})

	return cmd
}

func initVars(ctx context.Context, log *zap.SugaredLogger) error {
	env.Load(log)
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true&clientFoundRows=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.PingAttempts = env.IntDefault(log, "DATABASE_PING_ATTEMPTS", "1")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	db, err := database.Open(ctx, log, database.Config{
		Driver:        sys.Configs.Database.Driver,
		ConnectionURL: sys.Configs.Database.ConnectionURL,
		PingTimeout:   sys.Configs.Database.PingTimeout,
		PingAttempts:  sys.Configs.Database.PingAttempts,
	})
	if err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
