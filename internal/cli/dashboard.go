package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/mpetrenko/castgate/internal/api"
)

// Dashboard is the creator home screen: greeting, connected channels and
// the plan usage line.
func (a *App) Dashboard(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	fmt.Printf("Hello, %s!\n", a.session.DisplayName(ctx))

	channels, err := a.gateway.ListChannels(ctx)
	if err != nil {
		log.Printf("Could not load channels: %s", api.ErrorMessage(err, "channel list unavailable"))
	} else if len(channels) == 0 {
		fmt.Println("No channels connected yet (command: connect).")
	} else {
		fmt.Println("Connected channels:")
		for _, ch := range channels {
			fmt.Printf("  %-10s %s\n", ch.Provider, ch.DisplayName)
		}
	}

	plan, err := a.gateway.CurrentPlan(ctx)
	if err != nil {
		log.Printf("Could not load plan: %s", api.ErrorMessage(err, "plan unavailable"))
		return nil
	}
	fmt.Printf("Plan: %s, uploads %d/%d\n", plan.Name, plan.UploadsUsed, plan.UploadsLimit)
	return nil
}

// Channels lists the connected channels with IDs, for use with schedule.
func (a *App) Channels(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	channels, err := a.gateway.ListChannels(ctx)
	if err != nil {
		log.Printf("Could not load channels: %s", api.ErrorMessage(err, "channel list unavailable"))
		return err
	}
	if len(channels) == 0 {
		fmt.Println("No channels connected yet (command: connect).")
		return nil
	}
	for _, ch := range channels {
		fmt.Printf("%s  %-10s %s\n", ch.ID, ch.Provider, ch.DisplayName)
	}

	monetization, err := a.gateway.Monetization(ctx)
	if err == nil && len(monetization) > 0 {
		fmt.Printf("Monetization: %s\n", monetization)
	}
	return nil
}

// Connect links a new provider channel to the account.
func (a *App) Connect(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	provider, err := getSimpleText(a.input, "-Enter provider (youtube, tiktok, instagram)")
	if err != nil {
		return err
	}
	handle, err := getSimpleText(a.input, "-Enter channel handle")
	if err != nil {
		return err
	}

	ch, err := a.gateway.ConnectChannel(ctx, provider, handle)
	if err != nil {
		log.Printf("Connect failed: %s", api.ErrorMessage(err, "could not connect channel"))
		return err
	}
	log.Printf("Connected %s channel %s (id %s)", ch.Provider, ch.DisplayName, ch.ID)
	return nil
}
