package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrenko/castgate/internal/api"
	"github.com/mpetrenko/castgate/internal/auth"
	"github.com/mpetrenko/castgate/internal/common"
	"github.com/mpetrenko/castgate/internal/repositories/metadata"
	"github.com/mpetrenko/castgate/internal/session"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return session.NewStore(metadata.NewSQLiteRepository(db))
}

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

// fakeGateway implements AuthGateway for unit tests.
type fakeGateway struct {
	LoginResp  *api.AuthResponse
	LoginErr   error
	SignupResp *api.AuthResponse
	SignupErr  error

	RefreshTokenRet string
	RefreshTokenErr error

	ResendErr error

	LastLoginEmail string
	RefreshCalls   int
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	f.LastLoginEmail = email
	return f.LoginResp, f.LoginErr
}

func (f *fakeGateway) Signup(ctx context.Context, email, password, name string) (*api.AuthResponse, error) {
	return f.SignupResp, f.SignupErr
}

func (f *fakeGateway) RefreshToken(ctx context.Context) (string, error) {
	f.RefreshCalls++
	return f.RefreshTokenRet, f.RefreshTokenErr
}

func (f *fakeGateway) ResendVerification(ctx context.Context) error {
	return f.ResendErr
}

func TestSessionService_Login_SavesTokenAndProfile(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	tok := token(t, jwt.MapClaims{"sub": "u1", "role": "user", "email_verified": true})
	gw := &fakeGateway{LoginResp: &api.AuthResponse{
		Token: tok,
		User:  api.UserInfo{ID: "u1", Email: "a@example.com", Name: "Alice", Role: "User"},
	}}

	svc := NewSessionService(gw, store)
	require.NoError(t, svc.Login(ctx, "a@example.com", "pw"))

	assert.Equal(t, "a@example.com", gw.LastLoginEmail)
	assert.True(t, svc.CredentialPresent(ctx))
	assert.Equal(t, auth.LevelUser, svc.Level(ctx))
	assert.Equal(t, "Alice", svc.DisplayName(ctx))
}

func TestSessionService_Login_FailurePropagates(t *testing.T) {
	store := setupStore(t)
	gw := &fakeGateway{LoginErr: errors.New("bad credentials")}
	svc := NewSessionService(gw, store)

	err := svc.Login(context.Background(), "a@example.com", "pw")
	require.Error(t, err)
	assert.False(t, svc.CredentialPresent(context.Background()))
}

func TestSessionService_Logout_ClearsEverything(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	tok := token(t, jwt.MapClaims{"sub": "u1", "role": "admin"})
	gw := &fakeGateway{LoginResp: &api.AuthResponse{
		Token: tok,
		User:  api.UserInfo{Name: "Alice", Role: "Admin"},
	}}
	svc := NewSessionService(gw, store)
	require.NoError(t, svc.Login(ctx, "a@example.com", "pw"))

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, svc.CredentialPresent(ctx))
	assert.Nil(t, svc.Claims(ctx))
	assert.Equal(t, auth.LevelNone, svc.Level(ctx))
	assert.Equal(t, "Guest", svc.DisplayName(ctx))
}

func TestSessionService_Refresh_ReplacesCredentialWholesale(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, token(t, jwt.MapClaims{"sub": "u1", "email_verified": false})))

	fresh := token(t, jwt.MapClaims{"sub": "u1", "email_verified": true})
	gw := &fakeGateway{RefreshTokenRet: fresh}
	svc := NewSessionService(gw, store)

	verified, err := svc.CheckVerification(ctx)
	require.NoError(t, err)
	assert.True(t, verified)
	assert.Equal(t, 1, gw.RefreshCalls)
	assert.Equal(t, fresh, store.Get(ctx))
}

func TestSessionService_Refresh_WithoutCredential(t *testing.T) {
	store := setupStore(t)
	gw := &fakeGateway{}
	svc := NewSessionService(gw, store)

	err := svc.Refresh(context.Background())
	assert.True(t, errors.Is(err, common.ErrNoCredential))
	assert.Equal(t, 0, gw.RefreshCalls, "gateway must not be called without a credential")
}

func TestSessionService_CheckVerification_StillUnverified(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	stale := token(t, jwt.MapClaims{"sub": "u1", "email_verified": false})
	require.NoError(t, store.Save(ctx, stale))

	gw := &fakeGateway{RefreshTokenRet: stale}
	svc := NewSessionService(gw, store)

	verified, err := svc.CheckVerification(ctx)
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestSessionService_Level_FallsBackToCachedRole(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// token with no role claim; the profile cached at login carries it
	require.NoError(t, store.Save(ctx, token(t, jwt.MapClaims{"sub": "u1"})))
	require.NoError(t, store.SaveProfile(ctx, session.Profile{Role: "Admin_Viewer"}))

	svc := NewSessionService(&fakeGateway{}, store)
	assert.Equal(t, auth.LevelAdminViewer, svc.Level(ctx))
}
