package auth

// AccessClass is the audience a screen is built for.
type AccessClass int

const (
	// ClassUser screens belong to the regular-user area.
	ClassUser AccessClass = iota
	// ClassAdmin screens belong to the admin area; admin_viewer may read
	// them but not mutate.
	ClassAdmin
)

// Screen describes the requirements of a protected screen.
type Screen struct {
	Requires        AccessClass
	RequireVerified bool
}

// Action is the guard's render decision.
type Action int

const (
	ActionAllow Action = iota
	ActionRedirectSignIn
	ActionRedirectVerify
	ActionRedirectAdminHome
	ActionRedirectUserHome
)

// Decision is the outcome of evaluating a screen. ReadOnly is set when the
// screen renders with all mutating affordances disabled (admin_viewer on an
// admin screen); callers must show a notice in that case.
type Decision struct {
	Action   Action
	ReadOnly bool
}

// Evaluate runs the guard state machine in strict order, first match wins:
//
//  1. no credential                       -> sign-in
//  2. verification required, not verified -> verification screen
//  3. user screen, admin-variant level    -> admin home
//  4. admin screen, non-admin level       -> user home
//  5. allow (read-only for admin_viewer on an admin screen)
//
// The credential can be cleared or replaced asynchronously (refresh,
// resend-verification), so callers re-evaluate on every screen entry rather
// than caching a decision.
func Evaluate(screen Screen, credentialPresent bool, claims *Claims, level AccessLevel) Decision {
	if !credentialPresent {
		return Decision{Action: ActionRedirectSignIn}
	}
	if screen.RequireVerified && (claims == nil || !claims.EmailVerified) {
		return Decision{Action: ActionRedirectVerify}
	}
	if screen.Requires == ClassUser && level.IsAdminRead() {
		return Decision{Action: ActionRedirectAdminHome}
	}
	if screen.Requires == ClassAdmin && !level.IsAdminRead() {
		return Decision{Action: ActionRedirectUserHome}
	}
	return Decision{
		Action:   ActionAllow,
		ReadOnly: screen.Requires == ClassAdmin && level == LevelAdminViewer,
	}
}
