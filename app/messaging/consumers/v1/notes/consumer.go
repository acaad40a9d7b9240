package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/noteapp/business/v1/note"
	"github.com/ribgsilva/noteapp/sys"
	"gocloud.dev/pubsub"
)

const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

// envelope is note.Event as read from the wire, with data left undecoded until the type is known.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type noteRef struct {
	Id uint64 `json:"id"`
}

type updateData struct {
	Id uint64 `json:"id"`
	note.UpdateNote
}

// Consume receives messages until ctx is cancelled, applying each one on its own goroutine with at most
// maxWorkers running at once. It waits for in-flight messages before returning.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infow("message received", "id", m.LoggableID, "body", string(m.Body))
			// in-flight messages finish even after shutdown starts
			if err := Handle(context.Background(), m.Body); err != nil {
				logger.Errorw("failed to handle message", "id", m.LoggableID, "ERROR", err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Handle decodes a single event and applies it.
func Handle(ctx context.Context, body []byte) error {
	var e envelope
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}

	switch e.Type {
	case EventCreate:
		var c note.NewNote
		if err := json.Unmarshal(e.Data, &c); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		created, err := note.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to create note %+v: %w", c, err)
		}
		sys.R.Log.Infow("note created", "id", created.Id)
	case EventUpdate:
		var u updateData
		if err := json.Unmarshal(e.Data, &u); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		if _, err := note.Update(ctx, u.Id, u.UpdateNote); err != nil {
			return fmt.Errorf("failed to update note %d: %w", u.Id, err)
		}
	case EventDelete:
		var d noteRef
		if err := json.Unmarshal(e.Data, &d); err != nil {
			return fmt.Errorf("failed to parse %s data: %w", e.Type, err)
		}
		if err := note.Delete(ctx, d.Id); err != nil {
			return fmt.Errorf("failed to delete note %d: %w", d.Id, err)
		}
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}
