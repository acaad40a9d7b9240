package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/noteapp/sys"
)

// Find returns the note with the given id, reading through the cache.
func Find(ctx context.Context, id uint64) (Note, error) {
	gen, cached := generation(ctx)
	key := itemKey(id, gen)

	var note Note
	if cached && fromCache(ctx, key, &note) {
		return note, nil
	}

	note, err := find(ctx, id)
	if err != nil {
		return Note{}, err
	}

	if cached {
		toCache(ctx, key, note)
	}

	return note, nil
}

func find(ctx context.Context, id uint64) (Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, title, content, created_at FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	defer stmt.Close()

	var note Note
	err = stmt.QueryRowContext(dbCtx, id).Scan(&note.Id, &note.Title, &note.Content, &note.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}
	return note, nil
}
