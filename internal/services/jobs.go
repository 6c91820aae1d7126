package services

import (
	"context"
	"sync"

	"github.com/mpetrenko/castgate/internal/jobs"
	"github.com/mpetrenko/castgate/internal/push"
)

// JobFetcher is the snapshot slice of the API client.
type JobFetcher interface {
	ListJobs(ctx context.Context) ([]jobs.Job, error)
	GetJob(ctx context.Context, jobID string) (*jobs.Job, error)
}

// Subscriber is the push-channel slice the watcher needs.
type Subscriber interface {
	Subscribe(h push.Handler) (unsubscribe func())
}

// JobWatcher owns one screen's job collection: it fetches the snapshot,
// merges push events into it for as long as the screen is mounted, and
// detaches on Stop. Each screen builds its own watcher; the collection is
// never shared between screens.
type JobWatcher struct {
	// refetch rebuilds the snapshot this watcher started from: the full
	// list for the uploads screen, the single job for the status screen.
	refetch func(ctx context.Context) ([]jobs.Job, error)

	mu   sync.Mutex
	coll *jobs.Collection

	unsubscribe func()
	stopOnce    sync.Once
}

// WatchJobs fetches the job snapshot and then attaches to the push channel.
// Events referencing jobs the snapshot does not contain are dropped by the
// collection, so the subscribe-after-fetch ordering cannot corrupt state —
// at worst an early event is missed and Refresh picks the job up.
func WatchJobs(ctx context.Context, fetcher JobFetcher, sub Subscriber) (*JobWatcher, error) {
	snapshot, err := fetcher.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	return newWatcher(fetcher.ListJobs, sub, snapshot), nil
}

// WatchJob builds a watcher for a single job, as used by the status screen.
// Its Refresh re-fetches that one job, never the whole list.
func WatchJob(ctx context.Context, fetcher JobFetcher, sub Subscriber, jobID string) (*JobWatcher, error) {
	refetch := func(ctx context.Context) ([]jobs.Job, error) {
		job, err := fetcher.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		return []jobs.Job{*job}, nil
	}
	snapshot, err := refetch(ctx)
	if err != nil {
		return nil, err
	}
	return newWatcher(refetch, sub, snapshot), nil
}

func newWatcher(refetch func(ctx context.Context) ([]jobs.Job, error), sub Subscriber, snapshot []jobs.Job) *JobWatcher {
	w := &JobWatcher{
		refetch: refetch,
		coll:    jobs.NewCollection(snapshot),
	}
	w.unsubscribe = sub.Subscribe(w.apply)
	return w
}

func (w *JobWatcher) apply(ev jobs.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.coll.Apply(ev)
}

// Jobs returns the current rendering order as a copy.
func (w *JobWatcher) Jobs() []jobs.Job {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.coll.Jobs()
}

// Get returns one job by id.
func (w *JobWatcher) Get(id string) (jobs.Job, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.coll.Get(id)
}

// Add prepends a freshly scheduled job, as returned by the schedule call.
func (w *JobWatcher) Add(j jobs.Job) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.coll.Prepend(j)
}

// Refresh re-fetches the snapshot and replaces the collection. This is the
// documented recovery after a push-channel drop; events discarded while a
// job was unknown are reconstructed from the fresh snapshot.
func (w *JobWatcher) Refresh(ctx context.Context) error {
	snapshot, err := w.refetch(ctx)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.coll = jobs.NewCollection(snapshot)
	return nil
}

// Stop detaches the watcher from the push channel. After Stop returns, no
// further event can mutate the collection. Idempotent.
func (w *JobWatcher) Stop() {
	w.stopOnce.Do(w.unsubscribe)
}
