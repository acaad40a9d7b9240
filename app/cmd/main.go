package main

import (
	"context"
	"github.com/ribgsilva/noteapp/app/cmd/schema"
	"github.com/ribgsilva/noteapp/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	// empty logger
	log := zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:          "cmd",
		Short:        "Administrative commands for the notes service",
		SilenceUsage: true,
	}
	root.AddCommand(schema.Command(log))

	err := root.ExecuteContext(context.Background())
	if sys.R.Database != nil {
		if cErr := sys.R.Database.Close(); cErr != nil {
			log.Errorf("could not close db conn gracefully: %s", cErr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}
