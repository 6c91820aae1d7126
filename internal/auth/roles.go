package auth

import "strings"

// AccessLevel is the client-derived role classification. It is never used to
// authorize a write; the gateway makes its own decision on every request.
type AccessLevel string

const (
	LevelAdmin       AccessLevel = "admin"
	LevelAdminViewer AccessLevel = "admin_viewer"
	LevelUser        AccessLevel = "user"
	LevelNone        AccessLevel = "none"
)

// ResolveLevel maps the available role signals to an AccessLevel. The claims
// role wins when present; otherwise the role cached at login time is used.
// Matching is case-insensitive and unrecognized strings resolve to LevelNone.
func ResolveLevel(claims *Claims, cachedRole string) AccessLevel {
	role := ""
	if claims != nil && claims.Role != "" {
		role = claims.Role
	} else {
		role = cachedRole
	}

	switch strings.ToLower(role) {
	case "admin":
		return LevelAdmin
	case "admin_viewer":
		return LevelAdminViewer
	case "user":
		return LevelUser
	default:
		return LevelNone
	}
}

// The four predicates below are the only role checks the rest of the client
// is allowed to make, so they cannot drift apart per screen.

// IsAdmin reports a full admin.
func (l AccessLevel) IsAdmin() bool { return l == LevelAdmin }

// IsUser reports a regular user.
func (l AccessLevel) IsUser() bool { return l == LevelUser }

// IsAdminRead reports read access to admin screens (admin or admin_viewer).
func (l AccessLevel) IsAdminRead() bool { return l == LevelAdmin || l == LevelAdminViewer }

// IsAdminFull reports write access on admin screens (admin only).
func (l AccessLevel) IsAdminFull() bool { return l == LevelAdmin }

// Label returns the human-readable form shown in the prompt and headers.
func (l AccessLevel) Label() string {
	switch l {
	case LevelAdmin:
		return "Admin"
	case LevelAdminViewer:
		return "Admin Viewer"
	case LevelUser:
		return "User"
	default:
		return "Guest"
	}
}
