package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLevel_NormalizesCasing(t *testing.T) {
	tests := []struct {
		role string
		want AccessLevel
	}{
		{"admin", LevelAdmin},
		{"Admin", LevelAdmin},
		{"ADMIN", LevelAdmin},
		{"admin_viewer", LevelAdminViewer},
		{"ADMIN_VIEWER", LevelAdminViewer},
		{"user", LevelUser},
		{"User", LevelUser},
		{"", LevelNone},
		{"superuser", LevelNone},
		{"admin ", LevelNone},
	}

	for _, tc := range tests {
		t.Run("claims:"+tc.role, func(t *testing.T) {
			got := ResolveLevel(&Claims{Role: tc.role}, "")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveLevel_FallsBackToCachedRole(t *testing.T) {
	// no claims at all
	assert.Equal(t, LevelUser, ResolveLevel(nil, "user"))
	// claims without a role
	assert.Equal(t, LevelAdminViewer, ResolveLevel(&Claims{Subject: "u"}, "Admin_Viewer"))
	// claims role wins over the cached one
	assert.Equal(t, LevelAdmin, ResolveLevel(&Claims{Role: "admin"}, "user"))
	// neither present
	assert.Equal(t, LevelNone, ResolveLevel(nil, ""))
}

func TestAccessLevel_PredicatesAgree(t *testing.T) {
	tests := []struct {
		level     AccessLevel
		admin     bool
		user      bool
		adminRead bool
		adminFull bool
	}{
		{LevelAdmin, true, false, true, true},
		{LevelAdminViewer, false, false, true, false},
		{LevelUser, false, true, false, false},
		{LevelNone, false, false, false, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.level), func(t *testing.T) {
			assert.Equal(t, tc.admin, tc.level.IsAdmin())
			assert.Equal(t, tc.user, tc.level.IsUser())
			assert.Equal(t, tc.adminRead, tc.level.IsAdminRead())
			assert.Equal(t, tc.adminFull, tc.level.IsAdminFull())
		})
	}
}

func TestAccessLevel_Label(t *testing.T) {
	assert.Equal(t, "Admin", LevelAdmin.Label())
	assert.Equal(t, "Admin Viewer", LevelAdminViewer.Label())
	assert.Equal(t, "User", LevelUser.Label())
	assert.Equal(t, "Guest", LevelNone.Label())
}
