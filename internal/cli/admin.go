package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/mpetrenko/castgate/internal/api"
)

// Admin is the admin overview: automation aggregate stats plus the bot
// table. Admin viewers see it read-only.
func (a *App) Admin(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenAdmin); !ok {
		return nil
	}

	stats, err := a.gateway.GetAutomationStats(ctx)
	if err != nil {
		log.Printf("Could not load stats: %s", api.ErrorMessage(err, "stats unavailable"))
	} else {
		fmt.Printf("Posts: %d total, %d today, %d this week\n", stats.TotalPosts, stats.PostsToday, stats.PostsThisWeek)
		fmt.Printf("Engagements: %d\n", stats.TotalEngagements)
		fmt.Printf("Bots: %d active, %d paused\n", stats.ActiveBots, stats.PausedBots)
	}

	return a.printBots(ctx)
}

func (a *App) printBots(ctx context.Context) error {
	bots, err := a.gateway.GetBotStatuses(ctx)
	if err != nil {
		log.Printf("Could not load bots: %s", api.ErrorMessage(err, "bot list unavailable"))
		return err
	}
	fmt.Printf("%-20s %-10s %8s %7s  %s\n", "BOT", "STATUS", "POSTS", "ERRORS", "NEXT RUN")
	for _, b := range bots {
		fmt.Printf("%-20s %-10s %8d %7d  %s\n", b.Name, b.Status, b.PostsToday, b.Errors, b.NextRun)
	}
	return nil
}

// Automation is the bot control screen: list the bots, then run, pause,
// resume or restart-all. Mutations are refused for read-only admins.
func (a *App) Automation(ctx context.Context) error {
	d, ok := a.enter(ctx, screenAdmin)
	if !ok {
		return nil
	}

	if err := a.printBots(ctx); err != nil {
		return err
	}

	line, err := getSimpleText(a.input, "-Enter action: run|pause|resume <bot>, restart-all, or empty to go back")
	if err != nil {
		return err
	}
	if line == "" {
		return nil
	}
	if d.ReadOnly {
		fmt.Println("Admin Viewer access is read-only; bot controls are disabled.")
		return nil
	}

	var res *api.ActionResult
	switch {
	case line == "restart-all":
		res, err = a.gateway.RestartAllBots(ctx)
	default:
		var action, bot string
		if _, serr := fmt.Sscanf(line, "%s %s", &action, &bot); serr != nil {
			fmt.Println("Usage: run|pause|resume <bot>, restart-all")
			return nil
		}
		switch action {
		case "run":
			res, err = a.gateway.RunBot(ctx, bot)
		case "pause":
			res, err = a.gateway.PauseBot(ctx, bot)
		case "resume":
			res, err = a.gateway.ResumeBot(ctx, bot)
		default:
			fmt.Println("Unknown action:", action)
			return nil
		}
	}
	if err != nil {
		log.Printf("Bot action failed: %s", api.ErrorMessage(err, "bot action failed"))
		return err
	}
	log.Printf("%s", res.Message)
	return nil
}

// Queue lists the automation post queue and offers to retry failed posts.
func (a *App) Queue(ctx context.Context) error {
	d, ok := a.enter(ctx, screenAdmin)
	if !ok {
		return nil
	}

	posts, err := a.gateway.GetPostQueue(ctx)
	if err != nil {
		log.Printf("Could not load queue: %s", api.ErrorMessage(err, "queue unavailable"))
		return err
	}
	failed := 0
	for _, p := range posts {
		fmt.Printf("%-10s %-10s %-22s %s\n", p.Platform, p.Status, p.ScheduledAt, p.Caption)
		if p.Status == "failed" {
			failed++
		}
	}
	if failed == 0 || d.ReadOnly {
		return nil
	}

	answer, err := getSimpleText(a.input, fmt.Sprintf("-%d posts failed. Retry them? (y/n)", failed))
	if err != nil {
		return err
	}
	if answer != "y" {
		return nil
	}
	retried, err := a.gateway.RetryFailedPosts(ctx)
	if err != nil {
		log.Printf("Retry failed: %s", api.ErrorMessage(err, "could not retry posts"))
		return err
	}
	log.Printf("Re-queued %d posts", retried)
	return nil
}

// Activity prints the recent automation activity feed.
func (a *App) Activity(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenAdmin); !ok {
		return nil
	}

	logs, err := a.gateway.GetActivityLogs(ctx, 25)
	if err != nil {
		log.Printf("Could not load activity: %s", api.ErrorMessage(err, "activity unavailable"))
		return err
	}
	for _, l := range logs {
		fmt.Printf("%s  %-10s %-20s %s\n", l.Timestamp, l.Platform, l.Action, l.Details)
	}
	return nil
}

// Users lists all accounts. The gateway enforces the admin requirement
// independently of the local guard.
func (a *App) Users(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenAdmin); !ok {
		return nil
	}

	users, err := a.gateway.ListUsers(ctx)
	if err != nil {
		log.Printf("Could not load users: %s", api.ErrorMessage(err, "user list unavailable"))
		return err
	}
	fmt.Printf("%-38s %-28s %-14s %s\n", "ID", "EMAIL", "ROLE", "PLAN")
	for _, u := range users {
		fmt.Printf("%-38s %-28s %-14s %s\n", u.ID, u.Email, u.Role, u.Plan)
	}
	return nil
}
