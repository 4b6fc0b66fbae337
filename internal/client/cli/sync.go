package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/ecoestate/internal/models"
)

// watchProbeInterval задает частоту health probe в режиме --watch
const watchProbeInterval = 30 * time.Second

func (c *Cli) runSync(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	force := fs.Bool("force", false, "replay actions even past the retry bound")
	watch := fs.Bool("watch", false, "keep running: probe connectivity and replay queued actions as they appear")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *watch {
		return c.runWatch(ctx)
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if !c.monitor.IsOnline() {
		return fmt.Errorf("cannot sync while offline")
	}

	result, err := c.catalog.SyncNow(ctx, *force)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Printf("Replayed:  %d action(s)\n", result.Replayed)
	if result.Failed > 0 {
		c.io.Printf("Failed:    %d (will be retried with backoff)\n", result.Failed)
	}
	if result.Skipped > 0 {
		c.io.Printf("Skipped:   %d (retry bound reached, use --force to replay)\n", result.Skipped)
	}
	c.io.Printf("Remaining: %d\n", result.Remaining)

	if result.Remaining == 0 {
		c.io.Println()
		c.io.Println("All offline actions synchronized with server.")
	}
	return nil
}

// runWatch держит процесс живым: монитор опрашивает сервер, движок
// разгружает очередь на каждом переходе в online. Ctrl+C завершает.
func (c *Cli) runWatch(ctx context.Context) error {
	if c.monitor.IsOnline() {
		c.io.Println("Watching: online, queued actions replay automatically. Ctrl+C to stop.")
	} else {
		c.io.Println("Watching: offline, will sync when connectivity returns. Ctrl+C to stop.")
	}

	if err := c.catalog.Watch(ctx, watchProbeInterval); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	c.io.Println()
	c.io.Println("Watch stopped.")
	return nil
}

func (c *Cli) runRefresh(ctx context.Context, args []string) error {
	kinds := models.CacheKinds
	if len(args) > 0 {
		kinds = []models.EntityKind{models.EntityKind(args[0])}
	}

	for _, kind := range kinds {
		if err := c.catalog.Refresh(ctx, kind); err != nil {
			return err
		}
		c.io.Printf("Refreshed %s\n", kind)
	}
	return nil
}
