package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Uploads(ctx context.Context) error
	Schedule(ctx context.Context) error
	Watch(ctx context.Context) error
	JobStatus(ctx context.Context, id string) error
	Channels(ctx context.Context) error
	Connect(ctx context.Context) error
	Plan(ctx context.Context) error
	SyncPlan(ctx context.Context) error
	Admin(ctx context.Context) error
	Automation(ctx context.Context) error
	Queue(ctx context.Context) error
	Activity(ctx context.Context) error
	Users(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CastGate CLI.
//
// It takes a line from the shared input pump, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on input EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, input *linePump) {
	for {
		printlnFn(fmt.Sprintf("castgate> %s > ", statusFn()))
		line, ok := input.Next()
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, uploads, schedule, watch, status <id>, channels, connect, plan, sync-plan, verify, admin, bots, queue, activity, users, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "verify":
			_ = a.VerifyEmail(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "uploads", "jobs":
			_ = a.Uploads(ctx)

		case "schedule":
			_ = a.Schedule(ctx)

		case "watch":
			_ = a.Watch(ctx)

		case "status":
			if len(args) == 0 {
				printlnFn("Usage: status <job-id>")
				continue
			}
			_ = a.JobStatus(ctx, args[0])

		case "channels":
			_ = a.Channels(ctx)

		case "connect":
			_ = a.Connect(ctx)

		case "plan":
			_ = a.Plan(ctx)

		case "sync-plan":
			_ = a.SyncPlan(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "bots":
			_ = a.Automation(ctx)

		case "queue":
			_ = a.Queue(ctx)

		case "activity":
			_ = a.Activity(ctx)

		case "users":
			_ = a.Users(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
