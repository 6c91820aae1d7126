package api

import (
	"context"
	"net/http"
)

// UserInfo is the profile block returned by the auth endpoints.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse is the result of login/signup: a fresh credential plus the
// profile used to pre-populate the cached display fields.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account and returns its first credential.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/signup", signupRequest{Email: email, Password: password, Name: name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshToken replaces the credential wholesale. The gateway re-issues the
// token with current claims, which is how the client observes a flipped
// email_verified flag.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/refresh-token", nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ResendVerification asks the gateway to send a new verification email.
func (c *Client) ResendVerification(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/resend-verification", nil, nil)
}

// ForgotPassword starts the password-reset flow for the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", body, nil)
}

// ResetPassword completes the reset flow with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"token": resetToken, "password": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", body, nil)
}
