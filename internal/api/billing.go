package api

import (
	"context"
	"net/http"
)

// PlanUsage is the current plan plus usage counters shown on the plan screen
// and next to the upgrade prompt.
type PlanUsage struct {
	PlanID       string `json:"planId"`
	Name         string `json:"name"`
	UploadsUsed  int    `json:"uploadsUsed"`
	UploadsLimit int    `json:"uploadsLimit"`
}

// PlanSyncResult reports a manual plan re-sync with the payment provider.
type PlanSyncResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PlanID  string `json:"planId,omitempty"`
}

// CurrentPlan fetches the caller's plan and usage.
func (c *Client) CurrentPlan(ctx context.Context) (*PlanUsage, error) {
	var out PlanUsage
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/billing/plan", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncPlan re-reads the subscription from the payment provider. Used when a
// payment went through but the plan did not update.
func (c *Client) SyncPlan(ctx context.Context) (*PlanSyncResult, error) {
	var out PlanSyncResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/billing/sync", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
