package note

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no note has the requested id.
var ErrNotFound = errors.New("note not found")

type Note struct {
	Id        uint64    `json:"id" example:"1"`
	Title     string    `json:"title" example:"my note"`
	Content   string    `json:"content" example:"my note content"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
}

// NewNote carries every mutable field. It is the body of POST and PUT.
type NewNote struct {
	Title   string `json:"title" validate:"required,max=200" example:"my note"`
	Content string `json:"content" validate:"required" example:"my note content"`
}

// UpdateNote is the body of PATCH; nil fields keep their stored value.
type UpdateNote struct {
	Title   *string `json:"title" example:"my note"`
	Content *string `json:"content" example:"my note content"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (n NewNote) trimmed() NewNote {
	return NewNote{
		Title:   strings.TrimSpace(n.Title),
		Content: strings.TrimSpace(n.Content),
	}
}
