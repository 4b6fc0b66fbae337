package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/ecoestate/internal/models"
)

func (c *Cli) runInquire(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing property id. Usage: ecoestate inquire <property-id>")
	}
	propertyID := args[0]

	c.io.Println("=== Buyer Inquiry ===")
	c.io.Println()

	name, err := c.io.ReadInput("Buyer name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	email, err := c.io.ReadInput("Buyer email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	message, err := c.io.ReadInput("Message: ")
	if err != nil {
		return fmt.Errorf("failed to read message: %w", err)
	}

	result, err := c.catalog.SubmitInquiry(ctx, models.InquiryPayload{
		PropertyID: propertyID,
		Name:       name,
		Email:      email,
		Message:    message,
	})
	if err != nil {
		return fmt.Errorf("failed to submit inquiry: %w", err)
	}

	c.io.Println()
	if result.Queued {
		c.io.Println("You are offline: the inquiry is saved locally and will be")
		c.io.Println("sent automatically when the connection is back.")
		c.io.Printf("Queued action: %s\n", result.ActionID)
	} else {
		c.io.Println("Inquiry submitted.")
	}
	return nil
}
