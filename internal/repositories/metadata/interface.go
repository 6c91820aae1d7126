// Package metadata provides a small key-value repository backing the local
// session state (credential and cached profile fields).
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	// Clear removes every key in a single statement so readers never
	// observe a half-cleared state.
	Clear(ctx context.Context) error
}
