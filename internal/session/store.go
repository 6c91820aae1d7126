// Package session is the single source of truth for the locally held
// credential and the cached profile fields shown before claims can be
// decoded. All reads and writes of that state go through Store.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrenko/castgate/internal/common"
	"github.com/mpetrenko/castgate/internal/repositories/metadata"
)

// Metadata keys under which session state is persisted.
const (
	keyCredential   = "credential"
	keyProfileName  = "profile_name"
	keyProfileEmail = "profile_email"
	keyProfileRole  = "profile_role"
)

// Profile carries the cached display fields. Every field is optional;
// empty fields are left untouched on save.
type Profile struct {
	Name  string
	Email string
	Role  string
}

// Store holds the bearer credential and cached profile fields in the local
// database. A Store with a nil repository is usable: reads report absence
// and writes return ErrStoreNotReady wrapped by the caller-facing error.
type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Save persists the credential, overwriting any prior value. No validation
// is performed; the credential is opaque to the client.
func (s *Store) Save(ctx context.Context, credential string) error {
	if s.repo == nil {
		return fmt.Errorf("failed to save credential: %w", common.ErrStoreNotReady)
	}
	if err := s.repo.Set(ctx, keyCredential, []byte(credential)); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// Get returns the current credential, or an empty string when no credential
// is stored or the backing storage is not available yet. It never fails on
// an absent value.
func (s *Store) Get(ctx context.Context) string {
	if s.repo == nil {
		return ""
	}
	v, err := s.repo.Get(ctx, keyCredential)
	if err != nil {
		return ""
	}
	return string(v)
}

// Clear removes the credential and all cached profile fields in one
// statement, so a reader can never observe the token gone but stale profile
// fields retained.
func (s *Store) Clear(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// SaveProfile caches display fields on a best-effort basis. Only non-empty
// fields overwrite their stored counterparts; the role is normalized to
// lower case on the way in.
func (s *Store) SaveProfile(ctx context.Context, p Profile) error {
	if s.repo == nil {
		return nil
	}
	if p.Name != "" {
		if err := s.repo.Set(ctx, keyProfileName, []byte(p.Name)); err != nil {
			return fmt.Errorf("failed to cache profile name: %w", err)
		}
	}
	if p.Email != "" {
		if err := s.repo.Set(ctx, keyProfileEmail, []byte(p.Email)); err != nil {
			return fmt.Errorf("failed to cache profile email: %w", err)
		}
	}
	if p.Role != "" {
		role := strings.ToLower(p.Role)
		if err := s.repo.Set(ctx, keyProfileRole, []byte(role)); err != nil {
			return fmt.Errorf("failed to cache profile role: %w", err)
		}
	}
	return nil
}

// CachedName returns the cached display name, or "".
func (s *Store) CachedName(ctx context.Context) string {
	return s.cached(ctx, keyProfileName)
}

// CachedEmail returns the cached email, or "".
func (s *Store) CachedEmail(ctx context.Context) string {
	return s.cached(ctx, keyProfileEmail)
}

// CachedRole returns the cached role string, or "". The role resolver falls
// back to this value when the decoded claims carry no role.
func (s *Store) CachedRole(ctx context.Context) string {
	return s.cached(ctx, keyProfileRole)
}

func (s *Store) cached(ctx context.Context, key string) string {
	if s.repo == nil {
		return ""
	}
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(v))
}
