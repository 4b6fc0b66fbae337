package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ecoestate/internal/client/storage"
	"github.com/iudanet/ecoestate/internal/models"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== EcoEstate Status ===")
	c.io.Println()

	// Сессия
	session, err := c.session.Session(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Session: not authenticated")
		c.io.Println("Run 'ecoestate login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		expiresAt := time.Unix(session.ExpiresAt, 0)
		c.io.Printf("Session: %s\n", session.Username)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("Token has expired. Please login again.")
		}
	}
	c.io.Println()

	// Связность и движок синхронизации
	if c.monitor.IsOnline() {
		c.io.Println("Connectivity: online")
	} else {
		c.io.Println("Connectivity: offline (reads served from local cache)")
	}
	c.io.Printf("Sync engine: %s\n", c.catalog.SyncState())
	c.io.Println()

	// Кэш и очередь
	snap, err := c.catalog.CacheStats(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrStorageUnavailable) {
			c.io.Println("Local cache: unavailable (running in network-only mode)")
			return nil
		}
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	c.io.Println("Local cache:")
	for _, kind := range models.CacheKinds {
		line := fmt.Sprintf("  %-13s %d record(s)", string(kind)+":", snap.Records[kind])
		if at, lrErr := c.catalog.LastRefresh(ctx, kind); lrErr == nil && !at.IsZero() {
			line += fmt.Sprintf(", refreshed %s", at.Format(time.RFC3339))
		}
		c.io.Printf("%s\n", line)
	}
	c.io.Println()

	if snap.Pending > 0 {
		c.io.Printf("Pending sync: %d action(s) waiting to be replayed\n", snap.Pending)
		c.io.Println("Run 'ecoestate sync' to replay them now.")
	} else {
		c.io.Println("All offline actions synchronized with server.")
	}

	return nil
}
