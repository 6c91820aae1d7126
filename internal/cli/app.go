// Package cli implements the interactive CastGate dashboard. Each command
// maps to a screen of the original web product; protected screens pass
// through the guard before rendering.
package cli

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mpetrenko/castgate/internal/api"
	"github.com/mpetrenko/castgate/internal/config"
	"github.com/mpetrenko/castgate/internal/logging"
	"github.com/mpetrenko/castgate/internal/push"
	"github.com/mpetrenko/castgate/internal/repositories/metadata"
	"github.com/mpetrenko/castgate/internal/services"
	"github.com/mpetrenko/castgate/internal/session"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *session.Store
	gateway *api.Client
	session services.SessionService
	input   *linePump
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing local database: %s", err.Error())
		return nil, err
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db))

	gateway, err := api.NewClient(c.GatewayHTTPURL, c.RequestTimeout, store)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	return &App{
		config:  c,
		log:     logger,
		store:   store,
		gateway: gateway,
		session: services.NewSessionService(gateway, store),
		input:   newLinePump(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// connectPush dials the push channel with the current credential. Each
// watching screen dials its own connection and closes it on exit.
func (a *App) connectPush(ctx context.Context) (*push.Conn, error) {
	return push.Dial(ctx, a.config.GatewayWSURL, a.store.Get(ctx), a.log)
}
