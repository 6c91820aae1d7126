// Package jobs holds the in-memory job collection a screen renders and the
// reconciliation of push events into it.
package jobs

import (
	"encoding/json"
	"time"
)

// Status of a distribution job as reported by the gateway.
type Status string

const (
	StatusQueued    Status = "QUEUED"
	StatusRunning   Status = "RUNNING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// Terminal reports whether s is an end state.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Job is one trackable unit of content distribution work.
type Job struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Status      Status          `json:"status"`
	Progress    int             `json:"progress"`
	ScheduledAt time.Time       `json:"scheduledAt"`
	Logs        json.RawMessage `json:"logsJson,omitempty"`
}
