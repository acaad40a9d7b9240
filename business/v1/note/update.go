package note

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/noteapp/persistence/v1/note"
)

// Replace overwrites every mutable field of the note with id.
func Replace(ctx context.Context, id uint64, newN NewNote) (Note, error) {
	current, err := Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	return save(ctx, current, newN)
}

// Update changes only the fields set in upd.
func Update(ctx context.Context, id uint64, upd UpdateNote) (Note, error) {
	current, err := Find(ctx, id)
	if err != nil {
		return Note{}, err
	}

	merged := NewNote{Title: current.Title, Content: current.Content}
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Content != nil {
		merged.Content = *upd.Content
	}
	return save(ctx, current, merged)
}

func save(ctx context.Context, current Note, newN NewNote) (Note, error) {
	newN = newN.trimmed()
	if err := Validate(newN); err != nil {
		return Note{}, err
	}

	current.Title = newN.Title
	current.Content = newN.Content
	err := note.Update(ctx, note.Note(current))
	switch {
	case errors.Is(err, note.ErrNotFound):
		return Note{}, ErrNotFound
	case err != nil:
		return Note{}, fmt.Errorf("update note %d: %w", current.Id, err)
	}
	return current, nil
}
