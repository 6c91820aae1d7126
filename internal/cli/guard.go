package cli

import (
	"context"
	"fmt"

	"github.com/mpetrenko/castgate/internal/auth"
)

// Screen requirements of the CLI, mirroring the web product's areas.
var (
	screenUser      = auth.Screen{Requires: auth.ClassUser, RequireVerified: true}
	screenAdmin     = auth.Screen{Requires: auth.ClassAdmin}
	screenVerifying = auth.Screen{Requires: auth.ClassUser}
)

// enter runs the guard for a screen and reports whether rendering may
// proceed. It is called on every screen entry: the credential can change
// between commands (refresh, logout), so decisions are never cached.
func (a *App) enter(ctx context.Context, screen auth.Screen) (auth.Decision, bool) {
	d := auth.Evaluate(
		screen,
		a.session.CredentialPresent(ctx),
		a.session.Claims(ctx),
		a.session.Level(ctx),
	)

	switch d.Action {
	case auth.ActionAllow:
		if d.ReadOnly {
			fmt.Println("Viewing as Admin Viewer: this screen is read-only.")
		}
		return d, true
	case auth.ActionRedirectSignIn:
		fmt.Println("Please sign in first (command: login).")
	case auth.ActionRedirectVerify:
		fmt.Println("Your email is not verified yet (command: verify).")
	case auth.ActionRedirectAdminHome:
		fmt.Println("Admin accounts use the admin screens (command: admin).")
	case auth.ActionRedirectUserHome:
		fmt.Println("This screen is for admins; your home is 'dashboard'.")
	}
	return d, false
}
