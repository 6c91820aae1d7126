package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) isLoggedIn() bool {
	return a.session.CredentialPresent(context.Background())
}

func (a *App) getStatus() string {
	ctx := context.Background()
	if !a.session.CredentialPresent(ctx) {
		return "(guest)"
	}
	return fmt.Sprintf("(%s, %s)", a.session.DisplayName(ctx), a.session.Level(ctx).Label())
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to CastGate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.input)
}
