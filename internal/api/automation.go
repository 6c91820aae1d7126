package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Automation endpoints are proxied through the gateway to the automation
// service and are admin-only; the gateway enforces that, the client merely
// hides the screen from non-admins.
const automationBase = "/api/v1/automation"

// BotStatus describes one automation bot.
type BotStatus struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	LastRun    string `json:"lastRun,omitempty"`
	NextRun    string `json:"nextRun,omitempty"`
	PostsToday int    `json:"postsToday,omitempty"`
	Errors     int    `json:"errors,omitempty"`
}

// AutomationStats is the aggregate overview of the automation service.
type AutomationStats struct {
	TotalPosts       int `json:"totalPosts"`
	PostsToday       int `json:"postsToday"`
	PostsThisWeek    int `json:"postsThisWeek"`
	TotalEngagements int `json:"totalEngagements"`
	ActiveBots       int `json:"activeBots"`
	PausedBots       int `json:"pausedBots"`
}

// ScheduledPost is one entry of the automation post queue. The automation
// service uses its own status naming: pending, published, failed.
type ScheduledPost struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	Caption     string `json:"caption"`
	ScheduledAt string `json:"scheduledAt"`
	Status      string `json:"status"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ActivityLog is one line of the automation activity feed.
type ActivityLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Platform  string `json:"platform"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details,omitempty"`
	Status    string `json:"status"`
}

// ActionResult is the generic acknowledgment of a bot mutation.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetAutomationStats fetches the automation overview.
func (c *Client) GetAutomationStats(ctx context.Context) (*AutomationStats, error) {
	var out AutomationStats
	if err := c.doJSON(ctx, http.MethodGet, automationBase+"/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBotStatuses fetches the state of all bots.
func (c *Client) GetBotStatuses(ctx context.Context) ([]BotStatus, error) {
	var out []BotStatus
	if err := c.doJSON(ctx, http.MethodGet, automationBase+"/admin/bots/status", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunBot starts the named bot.
func (c *Client) RunBot(ctx context.Context, botName string) (*ActionResult, error) {
	return c.botAction(ctx, botName, "run")
}

// PauseBot pauses the named bot.
func (c *Client) PauseBot(ctx context.Context, botName string) (*ActionResult, error) {
	return c.botAction(ctx, botName, "pause")
}

// ResumeBot restarts the named bot.
func (c *Client) ResumeBot(ctx context.Context, botName string) (*ActionResult, error) {
	return c.botAction(ctx, botName, "restart")
}

func (c *Client) botAction(ctx context.Context, botName, action string) (*ActionResult, error) {
	path := fmt.Sprintf("%s/admin/bots/%s/%s", automationBase, url.PathEscape(botName), action)
	var out ActionResult
	if err := c.doJSON(ctx, http.MethodPost, path, map[string]any{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RestartAllBots restarts every cron-driven bot.
func (c *Client) RestartAllBots(ctx context.Context) (*ActionResult, error) {
	var out ActionResult
	if err := c.doJSON(ctx, http.MethodPost, automationBase+"/admin/cron/restart", map[string]any{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPostQueue fetches the scheduled-post queue.
func (c *Client) GetPostQueue(ctx context.Context) ([]ScheduledPost, error) {
	var out []ScheduledPost
	if err := c.doJSON(ctx, http.MethodGet, automationBase+"/admin/queue", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RetryFailedPosts re-enqueues every failed post and reports how many.
func (c *Client) RetryFailedPosts(ctx context.Context) (retried int, err error) {
	var out struct {
		Success      bool `json:"success"`
		RetriedCount int  `json:"retriedCount"`
	}
	if err := c.doJSON(ctx, http.MethodPost, automationBase+"/admin/retry-failed", map[string]any{}, &out); err != nil {
		return 0, err
	}
	return out.RetriedCount, nil
}

// GetActivityLogs fetches the most recent automation activity.
func (c *Client) GetActivityLogs(ctx context.Context, limit int) ([]ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []ActivityLog
	path := fmt.Sprintf("%s/admin/activity?limit=%d", automationBase, limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
