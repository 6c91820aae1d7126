package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/mpetrenko/castgate/internal/api"
)

// Plan shows the current plan and upload usage.
func (a *App) Plan(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	plan, err := a.gateway.CurrentPlan(ctx)
	if err != nil {
		log.Printf("Could not load plan: %s", api.ErrorMessage(err, "plan unavailable"))
		return err
	}
	fmt.Printf("Plan: %s (%s)\n", plan.Name, plan.PlanID)
	fmt.Printf("Uploads: %d of %d used\n", plan.UploadsUsed, plan.UploadsLimit)
	return nil
}

// SyncPlan forces a re-sync with the payment provider, used when a checkout
// went through but the plan still shows the old tier.
func (a *App) SyncPlan(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	res, err := a.gateway.SyncPlan(ctx)
	if err != nil {
		log.Printf("Sync failed: %s", api.ErrorMessage(err, "could not sync plan"))
		return err
	}
	if res.Success {
		log.Printf("Plan synced: %s", res.Message)
	} else {
		log.Printf("Plan sync did not change anything: %s", res.Message)
	}
	return nil
}
