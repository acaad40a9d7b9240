package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/noteapp/persistence/v1/note"
)

func Create(ctx context.Context, newN NewNote) (Note, error) {
	newN = newN.trimmed()
	if err := Validate(newN); err != nil {
		return Note{}, err
	}

	created, err := note.Insert(ctx, note.NewNote(newN))
	if err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}
	return Note(created), nil
}
