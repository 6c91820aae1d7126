package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_NoCredential_RedirectsToSignIn(t *testing.T) {
	// even an admin screen goes to sign-in first, never to a role redirect
	for _, screen := range []Screen{
		{Requires: ClassUser},
		{Requires: ClassAdmin},
		{Requires: ClassUser, RequireVerified: true},
	} {
		d := Evaluate(screen, false, nil, LevelNone)
		assert.Equal(t, ActionRedirectSignIn, d.Action)
	}
}

func TestEvaluate_VerificationRunsBeforeRoleRedirect(t *testing.T) {
	screen := Screen{Requires: ClassUser, RequireVerified: true}

	// admin-level but unverified: verification wins over the admin-home redirect
	claims := &Claims{Subject: "u", Role: "admin", EmailVerified: false}
	d := Evaluate(screen, true, claims, LevelAdmin)
	assert.Equal(t, ActionRedirectVerify, d.Action)

	// missing claims count as unverified
	d = Evaluate(screen, true, nil, LevelNone)
	assert.Equal(t, ActionRedirectVerify, d.Action)
}

func TestEvaluate_RoleRedirects(t *testing.T) {
	verified := &Claims{Subject: "u", EmailVerified: true}

	// admin on a user screen goes to the admin home
	d := Evaluate(Screen{Requires: ClassUser}, true, verified, LevelAdmin)
	assert.Equal(t, ActionRedirectAdminHome, d.Action)

	d = Evaluate(Screen{Requires: ClassUser}, true, verified, LevelAdminViewer)
	assert.Equal(t, ActionRedirectAdminHome, d.Action)

	// user on an admin screen goes to the user home
	d = Evaluate(Screen{Requires: ClassAdmin}, true, verified, LevelUser)
	assert.Equal(t, ActionRedirectUserHome, d.Action)

	// unrecognized role on an admin screen also falls back to the user home
	d = Evaluate(Screen{Requires: ClassAdmin}, true, verified, LevelNone)
	assert.Equal(t, ActionRedirectUserHome, d.Action)
}

func TestEvaluate_Allow(t *testing.T) {
	verified := &Claims{Subject: "u", EmailVerified: true}

	d := Evaluate(Screen{Requires: ClassUser}, true, verified, LevelUser)
	assert.Equal(t, ActionAllow, d.Action)
	assert.False(t, d.ReadOnly)

	d = Evaluate(Screen{Requires: ClassAdmin}, true, verified, LevelAdmin)
	assert.Equal(t, ActionAllow, d.Action)
	assert.False(t, d.ReadOnly)
}

func TestEvaluate_AdminViewer_ReadOnlyOnAdminScreens(t *testing.T) {
	verified := &Claims{Subject: "u", EmailVerified: true}

	d := Evaluate(Screen{Requires: ClassAdmin}, true, verified, LevelAdminViewer)
	assert.Equal(t, ActionAllow, d.Action)
	assert.True(t, d.ReadOnly)
}
