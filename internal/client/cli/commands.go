package cli

import (
	"context"
	"fmt"
)

// Run dispatches a single command. Ошибка уходит наверх: main решает
// про exit code.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "properties":
		return c.runProperties(ctx, args)
	case "regions":
		return c.runRegions(ctx)
	case "features":
		return c.runFeatures(ctx)
	case "projects":
		return c.runProjects(ctx)
	case "inquire":
		return c.runInquire(ctx, args)
	case "milestone":
		return c.runMilestone(ctx, args)
	case "note":
		return c.runNote(ctx, args)
	case "refresh":
		return c.runRefresh(ctx, args)
	case "sync":
		return c.runSync(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
