package note

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/noteapp/persistence/v1/note"
)

func Delete(ctx context.Context, id uint64) error {
	err := note.Delete(ctx, id)
	switch {
	case errors.Is(err, note.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}
