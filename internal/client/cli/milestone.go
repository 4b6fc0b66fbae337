package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/ecoestate/internal/models"
)

func (c *Cli) runMilestone(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: ecoestate milestone <project-id> <milestone-id> <done|undone>")
	}

	var done bool
	switch args[2] {
	case "done":
		done = true
	case "undone":
		done = false
	default:
		return fmt.Errorf("last argument must be 'done' or 'undone', got %q", args[2])
	}

	result, err := c.catalog.UpdateMilestone(ctx, models.MilestonePayload{
		ProjectID:   args[0],
		MilestoneID: args[1],
		Done:        done,
	})
	if err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
	}

	if result.Queued {
		c.io.Println("Milestone updated locally; the change will sync when online.")
	} else {
		c.io.Println("Milestone updated.")
	}
	return nil
}
