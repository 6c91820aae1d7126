package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mpetrenko/castgate/internal/api"
	"github.com/mpetrenko/castgate/internal/services"
)

// JobStatus follows a single job until it reaches a terminal status or the
// user presses Enter.
func (a *App) JobStatus(ctx context.Context, id string) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	conn, err := a.connectPush(ctx)
	if err != nil {
		// No live channel; fall back to a one-shot fetch.
		job, gerr := a.gateway.GetJob(ctx, id)
		if gerr != nil {
			log.Printf("Could not load job: %s", api.ErrorMessage(gerr, "job unavailable"))
			return gerr
		}
		fmt.Printf("%s  %s %d%%  %s\n", job.ID, job.Status, job.Progress, job.Title)
		return nil
	}
	defer conn.Close()

	watcher, err := services.WatchJob(ctx, a.gateway, conn, id)
	if err != nil {
		log.Printf("Could not load job: %s", api.ErrorMessage(err, "job unavailable"))
		return err
	}
	defer watcher.Stop()

	job, _ := watcher.Get(id)
	fmt.Printf("%s  %s %d%%  %s\n", job.ID, job.Status, job.Progress, job.Title)
	if job.Status.Terminal() {
		return nil
	}

	fmt.Println("Following job, press Enter to stop...")
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.input.Lines():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-conn.Done():
			log.Printf("Push channel dropped, refreshing")
			if err := watcher.Refresh(ctx); err != nil {
				log.Printf("Refresh failed: %s", api.ErrorMessage(err, "refresh failed"))
				return err
			}
			job, _ = watcher.Get(id)
			fmt.Printf("%s  %s %d%%  %s\n", job.ID, job.Status, job.Progress, job.Title)
			return nil
		case <-ticker.C:
			current, ok := watcher.Get(id)
			if !ok {
				continue
			}
			if current.Status != job.Status || current.Progress != job.Progress {
				job = current
				fmt.Printf("%s  %s %d%%  %s\n", job.ID, job.Status, job.Progress, job.Title)
			}
			if job.Status.Terminal() {
				return nil
			}
		}
	}
}
