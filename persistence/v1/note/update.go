package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/noteapp/sys"
)

// Update overwrites title and content of an existing note. id and created_at are never written.
// It returns ErrNotFound when no row has n.Id.
func Update(ctx context.Context, n Note) error {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "UPDATE notes SET title = ?, content = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare update stmt: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(dbCtx, n.Title, n.Content, n.Id)
	if err != nil {
		return fmt.Errorf("failed to exec update stmt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read updated rows: %w", err)
	}

	invalidate(ctx)

	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
