package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/mpetrenko/castgate/internal/jobs"
)

// ListJobs fetches the caller's job snapshot in gateway order.
func (c *Client) ListJobs(ctx context.Context) ([]jobs.Job, error) {
	var out []jobs.Job
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetJob fetches a single job, logs included.
func (c *Client) GetJob(ctx context.Context, jobID string) (*jobs.Job, error) {
	var out jobs.Job
	path := fmt.Sprintf("/api/v1/status/%s", url.PathEscape(jobID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScheduleUploadRequest describes a new distribution job.
type ScheduleUploadRequest struct {
	Title       string `json:"title"`
	ChannelID   string `json:"channelId,omitempty"`
	MediaURL    string `json:"mediaUrl,omitempty"`
	ScheduledAt string `json:"scheduledAt"`
	// IdempotencyKey is generated client-side so a retried schedule call
	// cannot create a second job.
	IdempotencyKey string `json:"idempotencyKey"`
}

// ScheduleUpload creates a new job. A quota rejection (HTTP 403) is
// distinguishable via IsQuotaExceeded on the returned error.
func (c *Client) ScheduleUpload(ctx context.Context, req ScheduleUploadRequest) (*jobs.Job, error) {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}
	var out jobs.Job
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/uploads/schedule", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PresignUpload asks the gateway for a one-shot upload URL for the media
// payload. The client PUTs the bytes there before scheduling.
func (c *Client) PresignUpload(ctx context.Context, filename, contentType string) (uploadURL, mediaURL string, err error) {
	body := map[string]string{"filename": filename, "contentType": contentType}
	var out struct {
		UploadURL string `json:"uploadUrl"`
		MediaURL  string `json:"mediaUrl"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/uploads/presign", body, &out); err != nil {
		return "", "", err
	}
	return out.UploadURL, out.MediaURL, nil
}
