package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/noteapp/sys"
)

// List returns every note in insertion order, reading through the cache.
func List(ctx context.Context) ([]Note, error) {
	gen, cached := generation(ctx)
	key := listKey(gen)

	notes := []Note{}
	if cached && fromCache(ctx, key, &notes) {
		return notes, nil
	}

	notes, err := list(ctx)
	if err != nil {
		return nil, err
	}

	if cached {
		toCache(ctx, key, notes)
	}

	return notes, nil
}

func list(ctx context.Context) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, title, content, created_at FROM notes ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.Id, &note.Title, &note.Content, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate list rows: %w", err)
	}
	return notes, nil
}
