package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/shelfhub/shelfhub/internal/common"
)

// AuthAPI covers account bootstrap and the credential exchange. Login is the
// only endpoint with a non-JSON request body: the backend expects the
// credentials form-encoded.
type AuthAPI struct {
	c *Client
}

// Login exchanges credentials for a bearer token. The token is returned to
// the caller; persisting it is the session store's job, not the transport's.
func (a *AuthAPI) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	if username == "" {
		return nil, common.ErrorEmptyUsername
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("username", username); err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := w.WriteField("password", password); err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	var out TokenResponse
	err := a.c.do(ctx, http.MethodPost, "auth/login", nil, &buf, w.FormDataContentType(), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckSetup reports whether the instance still needs its first admin account.
func (a *AuthAPI) CheckSetup(ctx context.Context) (*SetupStatus, error) {
	var out SetupStatus
	if err := a.c.getJSON(ctx, "auth/check-setup", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Setup creates the initial admin account on a fresh instance.
func (a *AuthAPI) Setup(ctx context.Context, username, password string) error {
	body := map[string]string{
		"username": username,
		"password": password,
		"role":     "admin",
	}
	return a.c.postJSON(ctx, "auth/setup", body, nil)
}

// RegistrationStatus reports whether self-registration is currently open.
func (a *AuthAPI) RegistrationStatus(ctx context.Context) (*RegistrationStatus, error) {
	var out RegistrationStatus
	if err := a.c.getJSON(ctx, "auth/registration-status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a regular user account.
func (a *AuthAPI) Register(ctx context.Context, username, password string) error {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	return a.c.postJSON(ctx, "auth/register", body, nil)
}

// ChangePassword rotates the current user's credential.
func (a *AuthAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return a.c.postJSON(ctx, "auth/change-password", body, nil)
}
