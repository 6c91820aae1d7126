package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mpetrenko/castgate/internal/api"
	"github.com/mpetrenko/castgate/internal/jobs"
	"github.com/mpetrenko/castgate/internal/services"
)

func printJobTable(list []jobs.Job) {
	if len(list) == 0 {
		fmt.Println("No uploads yet (command: schedule).")
		return
	}
	fmt.Printf("%-38s %-10s %8s  %s\n", "ID", "STATUS", "PROGRESS", "TITLE")
	for _, j := range list {
		fmt.Printf("%-38s %-10s %7d%%  %s\n", j.ID, j.Status, j.Progress, j.Title)
	}
}

// Uploads prints the current upload job snapshot.
func (a *App) Uploads(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	list, err := a.gateway.ListJobs(ctx)
	if err != nil {
		log.Printf("Could not load uploads: %s", api.ErrorMessage(err, "upload list unavailable"))
		return err
	}
	printJobTable(list)
	return nil
}

// Watch renders the upload list live: snapshot first, then push events
// merged in until the user presses Enter.
func (a *App) Watch(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	conn, err := a.connectPush(ctx)
	if err != nil {
		log.Printf("Push channel unavailable: %s", err.Error())
		return err
	}
	defer conn.Close()

	watcher, err := services.WatchJobs(ctx, a.gateway, conn)
	if err != nil {
		log.Printf("Could not load uploads: %s", api.ErrorMessage(err, "upload list unavailable"))
		return err
	}
	defer watcher.Stop()

	printJobTable(watcher.Jobs())
	fmt.Println("Watching for updates, press Enter to stop...")

	select {
	case <-a.input.Lines():
	case <-conn.Done():
		// Connection dropped; re-fetch so nothing stays stale.
		log.Printf("Push channel dropped, refreshing snapshot")
		if err := watcher.Refresh(ctx); err != nil {
			log.Printf("Refresh failed: %s", api.ErrorMessage(err, "refresh failed"))
		}
	case <-ctx.Done():
	}

	printJobTable(watcher.Jobs())
	return nil
}

// Schedule walks through scheduling an upload: optional local media file
// (pushed to a presigned URL first), then the schedule call itself. A 403
// quota rejection routes to the plan screen instead of a bare error.
func (a *App) Schedule(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenUser); !ok {
		return nil
	}

	title, err := getSimpleText(a.input, "-Enter title")
	if err != nil {
		return err
	}
	channelID, err := getSimpleText(a.input, "-Enter channel id (empty for default)")
	if err != nil {
		return err
	}
	mediaPath, err := getSimpleText(a.input, "-Enter media file path (empty to attach later)")
	if err != nil {
		return err
	}
	when, err := getSimpleText(a.input, "-Enter schedule time, RFC3339 (empty for now)")
	if err != nil {
		return err
	}
	if when == "" {
		when = time.Now().UTC().Format(time.RFC3339)
	}

	var mediaURL string
	if mediaPath != "" {
		mediaURL, err = a.uploadMedia(ctx, mediaPath)
		if err != nil {
			return err
		}
	}

	job, err := a.gateway.ScheduleUpload(ctx, api.ScheduleUploadRequest{
		Title:       title,
		ChannelID:   channelID,
		MediaURL:    mediaURL,
		ScheduledAt: when,
	})
	if err != nil {
		if api.IsQuotaExceeded(err) {
			log.Printf("%s", api.ErrorMessage(err, "upload limit reached"))
			if plan, perr := a.gateway.CurrentPlan(ctx); perr == nil {
				fmt.Printf("Your %s plan allows %d uploads and %d are used. Upgrade to schedule more.\n",
					plan.Name, plan.UploadsLimit, plan.UploadsUsed)
			}
			return err
		}
		log.Printf("Schedule failed: %s", api.ErrorMessage(err, "could not schedule upload"))
		return err
	}

	log.Printf("Scheduled %q as job %s (%s)", job.Title, job.ID, job.Status)
	return nil
}

// uploadMedia reads a local file and pushes it through the presigned-URL
// flow, returning the media URL to reference in the schedule call.
func (a *App) uploadMedia(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read %s: %s", path, err.Error())
		return "", err
	}

	contentType := "application/octet-stream"
	uploadURL, mediaURL, err := a.gateway.PresignUpload(ctx, path, contentType)
	if err != nil {
		log.Printf("Presign failed: %s", api.ErrorMessage(err, "could not presign upload"))
		return "", err
	}

	if err := a.gateway.UploadToPresignedURL(ctx, uploadURL, data, contentType); err != nil {
		log.Printf("Upload failed: %s", err.Error())
		return "", err
	}
	return mediaURL, nil
}
