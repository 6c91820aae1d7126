package jobs

// Collection is an ordered set of jobs keyed by id, owned by exactly one
// mounted screen. It is not safe for concurrent use; the owning screen
// applies events on its own goroutine in delivery order.
type Collection struct {
	order    []string
	byID     map[string]*Job
	terminal map[string]struct{}

	// lateUpdates counts update events applied to a job after a terminal
	// event was seen for it. The transport offers no fencing, so such
	// events are applied anyway; the count exists for diagnostics.
	lateUpdates int
}

// NewCollection builds a collection from a snapshot, preserving its order.
// Duplicate ids keep the first occurrence.
func NewCollection(snapshot []Job) *Collection {
	c := &Collection{
		byID:     make(map[string]*Job, len(snapshot)),
		terminal: make(map[string]struct{}),
	}
	for _, j := range snapshot {
		if _, ok := c.byID[j.ID]; ok {
			continue
		}
		job := j
		c.order = append(c.order, j.ID)
		c.byID[j.ID] = &job
	}
	return c
}

// Prepend inserts a freshly scheduled job at the head of the collection,
// matching the "newest first" rendering of the uploads screen. An existing
// job with the same id is replaced in place instead.
func (c *Collection) Prepend(j Job) {
	if existing, ok := c.byID[j.ID]; ok {
		*existing = j
		return
	}
	job := j
	c.order = append([]string{j.ID}, c.order...)
	c.byID[j.ID] = &job
}

// Get returns a copy of the job with the given id.
func (c *Collection) Get(id string) (Job, bool) {
	j, ok := c.byID[id]
	if !ok {
		return Job{}, false
	}
	return *j, true
}

// Jobs returns the jobs in order as a copy; mutating the result does not
// affect the collection.
func (c *Collection) Jobs() []Job {
	out := make([]Job, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

// Len returns the number of jobs held.
func (c *Collection) Len() int { return len(c.order) }

// LateUpdates returns how many update events arrived after a terminal event
// for the same job.
func (c *Collection) LateUpdates() int { return c.lateUpdates }

// Apply merges one push event into the collection and reports whether a job
// was modified.
//
// Rules:
//   - unknown job id: no-op (a later snapshot refresh picks the job up)
//   - update: replace status; replace progress only when the event carries it
//   - done: replace status, force progress to 100
//   - failed: force StatusFailed, leave progress untouched
//
// Applying the same event twice yields the same job state as applying it
// once; fields are assigned, never accumulated.
func (c *Collection) Apply(e Event) bool {
	j, ok := c.byID[e.JobID]
	if !ok {
		return false
	}

	switch e.Kind {
	case EventUpdate:
		if _, done := c.terminal[e.JobID]; done {
			c.lateUpdates++
		}
		j.Status = e.Status
		if e.Progress != nil {
			j.Progress = *e.Progress
		}

	case EventDone:
		j.Status = e.Status
		j.Progress = 100
		c.terminal[e.JobID] = struct{}{}

	case EventFailed:
		j.Status = StatusFailed
		c.terminal[e.JobID] = struct{}{}
	}

	return true
}
