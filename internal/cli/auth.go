package cli

import (
	"context"
	"errors"
	"log"

	"github.com/mpetrenko/castgate/internal/api"
	"github.com/mpetrenko/castgate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, exchanges them for a bearer token and
// caches the profile fields.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.input, "-Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword()
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			log.Printf("Gateway unavailable, try again later")
		} else {
			log.Printf("Login unsuccessful: %s", api.ErrorMessage(err, "login failed"))
		}
		return err
	}

	log.Printf("Login successful")
	return nil
}

// Register creates a new account and signs in with its first credential.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.input, "-Enter email")
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.input, "-Enter display name (optional)")
	if err != nil {
		return err
	}
	password, err := getPassword()
	if err != nil {
		return err
	}

	if err := a.session.Signup(ctx, email, password, name); err != nil {
		log.Printf("Signup unsuccessful: %s", api.ErrorMessage(err, "signup failed"))
		return err
	}

	log.Printf("Account created. Check your inbox for the verification email (command: verify).")
	return nil
}

// Logout clears the credential and every cached profile field.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Printf("Signed out")
	return nil
}

// ForgotPassword requests a reset email, then optionally applies the reset
// token from that email right away.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.input, "-Enter email")
	if err != nil {
		return err
	}

	if err := a.gateway.ForgotPassword(ctx, email); err != nil {
		log.Printf("Request failed: %s", api.ErrorMessage(err, "could not send reset email"))
		return err
	}
	log.Printf("If an account exists for %s, a reset email is on its way", email)

	resetToken, err := getSimpleText(a.input, "-Paste the reset token (or leave empty to finish later)")
	if err != nil {
		return err
	}
	if resetToken == "" {
		return nil
	}

	password, err := getPassword()
	if err != nil {
		return err
	}
	if err := a.gateway.ResetPassword(ctx, resetToken, password); err != nil {
		log.Printf("Reset failed: %s", api.ErrorMessage(err, "could not reset password"))
		return err
	}
	log.Printf("Password updated, you can log in now")
	return nil
}

// VerifyEmail is the verification screen: resend the email or re-check the
// flag by refreshing the credential.
func (a *App) VerifyEmail(ctx context.Context) error {
	if _, ok := a.enter(ctx, screenVerifying); !ok {
		return nil
	}

	if c := a.session.Claims(ctx); c != nil && c.EmailVerified {
		log.Printf("Email already verified, you are all set")
		return nil
	}

	choice, err := getSimpleText(a.input, "-Type 'resend' to resend the email or 'check' to re-check the flag")
	if err != nil {
		return err
	}

	switch choice {
	case "resend":
		if err := a.session.ResendVerification(ctx); err != nil {
			log.Printf("Failed to resend verification email: %s", api.ErrorMessage(err, "resend failed"))
			return err
		}
		log.Printf("Verification email sent")
	case "check":
		verified, err := a.session.CheckVerification(ctx)
		if err != nil {
			log.Printf("Failed to check verification status: %s", api.ErrorMessage(err, "check failed"))
			return err
		}
		if verified {
			log.Printf("Email verified, welcome!")
		} else {
			log.Printf("Email not yet verified. Please check your inbox and click the verification link.")
		}
	default:
		log.Printf("Unknown choice %q", choice)
	}
	return nil
}
