package note

import (
	"errors"
	"time"
)

const (
	genKey   = "notes.gen"
	noteKey  = "notes.%d.%d"
	notesKey = "notes.all.%d"
)

// ErrNotFound is returned when no row matches the given id.
var ErrNotFound = errors.New("note not found")

type Note struct {
	Id        uint64
	Title     string
	Content   string
	CreatedAt time.Time
}

type NewNote struct {
	Title   string
	Content string
}
