package api

import (
	"context"
	"net/http"
)

// AdminUser is one row of the admin users screen.
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
	Plan  string `json:"plan,omitempty"`
}

// ListUsers fetches all accounts. Admin-only; the gateway rejects everyone
// else regardless of what the client shows.
func (c *Client) ListUsers(ctx context.Context) ([]AdminUser, error) {
	var out []AdminUser
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
