package note

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/noteapp/persistence/v1/note"
)

func Find(ctx context.Context, id uint64) (Note, error) {
	find, err := note.Find(ctx, id)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("find note %d: %w", id, err)
	}
	return Note(find), nil
}

func List(ctx context.Context) ([]Note, error) {
	list, err := note.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]Note, 0, len(list))
	for _, n := range list {
		notes = append(notes, Note(n))
	}
	return notes, nil
}
