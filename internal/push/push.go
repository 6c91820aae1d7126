// Package push maintains the long-lived WebSocket connection to the gateway
// and fans incoming job events out to screen-scoped handlers. Handlers are
// registered with an explicit unsubscribe so a screen cannot leak its
// handler past its own lifetime.
package push

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mpetrenko/castgate/internal/common"
	"github.com/mpetrenko/castgate/internal/jobs"
	"github.com/mpetrenko/castgate/internal/logging"
)

// Wire event names emitted by the gateway.
const (
	eventJobUpdate = "job:update"
	eventJobDone   = "job:done"
	eventJobFailed = "job:failed"
)

// envelope is the JSON frame carried on the push channel.
type envelope struct {
	Event    string `json:"event"`
	JobID    string `json:"jobId"`
	Status   string `json:"status"`
	Progress *int   `json:"progress,omitempty"`
}

// Handler receives parsed job events. Handlers run on the connection's read
// goroutine and must not block.
type Handler func(jobs.Event)

// Conn is one push-channel connection, authenticated at dial time with the
// current credential.
type Conn struct {
	ws  *websocket.Conn
	log logging.Logger

	mu       sync.Mutex
	handlers map[int]Handler
	nextID   int

	done      chan struct{}
	closeOnce sync.Once
}

// Dial connects to the gateway push endpoint. The credential, when present,
// is sent as a bearer header during the handshake.
func Dial(ctx context.Context, wsURL, credential string, log logging.Logger) (*Conn, error) {
	header := http.Header{}
	if credential != "" {
		header.Set(common.AuthorizationHeader, common.BearerPrefix+credential)
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, err
	}

	c := &Conn{
		ws:       ws,
		log:      log,
		handlers: make(map[int]Handler),
		done:     make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Subscribe registers a handler and returns its unsubscribe func. The
// returned func is idempotent and removes the handler synchronously, so no
// event is delivered after it returns.
func (c *Conn) Subscribe(h Handler) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.handlers[id] = h
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.handlers, id)
			c.mu.Unlock()
		})
	}
}

// Done is closed when the read loop exits, i.e. the connection is gone.
// A disconnect is not fatal: the screen keeps its last state and a manual
// re-fetch is the recovery path.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close tears the connection down. Safe to call more than once.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.ws.Close()
	})
	return err
}

func (c *Conn) readLoop() {
	defer close(c.done)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			// normal teardown path as well as a dropped connection
			c.log.Debug(context.Background(), "push channel closed", "reason", err)
			return
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.log.Warn(context.Background(), "discarding malformed push frame", "error", err)
			continue
		}

		ev, ok := parseEnvelope(env)
		if !ok {
			continue
		}
		c.dispatch(ev)
	}
}

func parseEnvelope(env envelope) (jobs.Event, bool) {
	switch env.Event {
	case eventJobUpdate:
		return jobs.Event{
			Kind:     jobs.EventUpdate,
			JobID:    env.JobID,
			Status:   jobs.Status(env.Status),
			Progress: env.Progress,
		}, true
	case eventJobDone:
		// a done frame without a status still means completion
		status := jobs.Status(env.Status)
		if status == "" {
			status = jobs.StatusSucceeded
		}
		return jobs.Event{
			Kind:   jobs.EventDone,
			JobID:  env.JobID,
			Status: status,
		}, true
	case eventJobFailed:
		return jobs.Event{
			Kind:  jobs.EventFailed,
			JobID: env.JobID,
		}, true
	default:
		return jobs.Event{}, false
	}
}

// dispatch invokes handlers under the lock. That is what makes unsubscribe
// a hard barrier: once it returns, the handler cannot run again.
func (c *Conn) dispatch(ev jobs.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range c.handlers {
		h(ev)
	}
}
