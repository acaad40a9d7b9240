package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/noteapp/sys"
)

// Delete removes the note with id. It returns ErrNotFound when no row has id.
func Delete(ctx context.Context, id uint64) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, id)
	if err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read deleted rows: %w", err)
	}

	invalidate(ctx)

	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
