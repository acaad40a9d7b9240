package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/noteapp/sys"
)

// Drop removes the notes table and every note in it.
func Drop(ctx context.Context) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	if _, err := db.ExecContext(dbCtx, dropSchema); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}

	return nil
}
