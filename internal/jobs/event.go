package jobs

// EventKind discriminates the three push event variants.
type EventKind int

const (
	// EventUpdate carries a new status and, optionally, new progress.
	EventUpdate EventKind = iota
	// EventDone carries a terminal status and implies progress 100.
	EventDone
	// EventFailed implies StatusFailed; progress is left as-is.
	EventFailed
)

// Event is a parsed push notification about one job. Each event is a
// snapshot of truth for the fields it carries, not a delta.
type Event struct {
	Kind   EventKind
	JobID  string
	Status Status
	// Progress is nil when the event did not carry a progress value; the
	// job's existing progress must then be retained.
	Progress *int
}
