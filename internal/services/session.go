// Package services contains the application services behind the CLI screens:
// session lifecycle on top of the token store, and the snapshot-plus-push
// job watcher.
package services

import (
	"context"
	"fmt"

	"github.com/mpetrenko/castgate/internal/api"
	"github.com/mpetrenko/castgate/internal/auth"
	"github.com/mpetrenko/castgate/internal/common"
	"github.com/mpetrenko/castgate/internal/session"
)

// AuthGateway is the slice of the API client the session service needs.
// Tests substitute a fake.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Signup(ctx context.Context, email, password, name string) (*api.AuthResponse, error)
	RefreshToken(ctx context.Context) (string, error)
	ResendVerification(ctx context.Context) error
}

// SessionService owns the credential lifecycle: obtaining it, replacing it
// wholesale, deriving claims and access level from it, and clearing it.
type SessionService interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, name string) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	ResendVerification(ctx context.Context) error
	// CheckVerification refreshes the credential and reports whether the
	// re-issued claims carry a true email_verified flag.
	CheckVerification(ctx context.Context) (bool, error)

	CredentialPresent(ctx context.Context) bool
	Claims(ctx context.Context) *auth.Claims
	Level(ctx context.Context) auth.AccessLevel
	DisplayName(ctx context.Context) string
}

type sessionService struct {
	gw    AuthGateway
	store *session.Store
}

// NewSessionService binds the session service to the gateway client and the
// local store.
func NewSessionService(gw AuthGateway, store *session.Store) SessionService {
	return &sessionService{gw: gw, store: store}
}

func (s *sessionService) Login(ctx context.Context, email, password string) error {
	resp, err := s.gw.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.adopt(ctx, resp)
}

func (s *sessionService) Signup(ctx context.Context, email, password, name string) error {
	resp, err := s.gw.Signup(ctx, email, password, name)
	if err != nil {
		return err
	}
	return s.adopt(ctx, resp)
}

// adopt persists a fresh credential and caches the profile fields so the
// first screen never renders a "Guest" placeholder while claims decode.
func (s *sessionService) adopt(ctx context.Context, resp *api.AuthResponse) error {
	if err := s.store.Save(ctx, resp.Token); err != nil {
		return err
	}
	if err := s.store.SaveProfile(ctx, session.Profile{
		Name:  resp.User.Name,
		Email: resp.User.Email,
		Role:  resp.User.Role,
	}); err != nil {
		return fmt.Errorf("credential saved but profile cache failed: %w", err)
	}
	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Refresh replaces the credential wholesale with a re-issued one. Without a
// stored credential there is nothing to refresh; the gateway is not called.
func (s *sessionService) Refresh(ctx context.Context) error {
	if s.store.Get(ctx) == "" {
		return common.ErrNoCredential
	}
	token, err := s.gw.RefreshToken(ctx)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, token)
}

func (s *sessionService) ResendVerification(ctx context.Context) error {
	return s.gw.ResendVerification(ctx)
}

func (s *sessionService) CheckVerification(ctx context.Context) (bool, error) {
	if err := s.Refresh(ctx); err != nil {
		return false, err
	}
	c := s.Claims(ctx)
	return c != nil && c.EmailVerified, nil
}

func (s *sessionService) CredentialPresent(ctx context.Context) bool {
	return s.store.Get(ctx) != ""
}

func (s *sessionService) Claims(ctx context.Context) *auth.Claims {
	return auth.ParseClaims(s.store.Get(ctx))
}

func (s *sessionService) Level(ctx context.Context) auth.AccessLevel {
	return auth.ResolveLevel(s.Claims(ctx), s.store.CachedRole(ctx))
}

// DisplayName prefers the cached profile name, then the claims name, then
// the email, and finally the access-level label.
func (s *sessionService) DisplayName(ctx context.Context) string {
	if name := s.store.CachedName(ctx); name != "" {
		return name
	}
	if c := s.Claims(ctx); c != nil {
		if c.Name != "" {
			return c.Name
		}
		if c.Email != "" {
			return c.Email
		}
	}
	if email := s.store.CachedEmail(ctx); email != "" {
		return email
	}
	return s.Level(ctx).Label()
}
