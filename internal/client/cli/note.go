package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

func (c *Cli) runNote(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing project id. Usage: ecoestate note <project-id>")
	}
	projectID := args[0]

	// Автор заметки — залогиненный агент
	session, err := c.session.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return fmt.Errorf("not authenticated. Please run 'ecoestate login' first")
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	text, err := c.io.ReadInput("Note text: ")
	if err != nil {
		return fmt.Errorf("failed to read note text: %w", err)
	}

	result, err := c.catalog.AddNote(ctx, models.NotePayload{
		ProjectID: projectID,
		Author:    session.Username,
		Text:      text,
	})
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	if result.Queued {
		c.io.Println("Note saved locally; it will sync when online.")
	} else {
		c.io.Println("Note added.")
	}
	return nil
}
