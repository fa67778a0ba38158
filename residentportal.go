package curbwise

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/curbwise/curbwise-go/routes"
)

// ResidentPortalClient wraps the invite-driven resident onboarding flow.
type ResidentPortalClient struct {
	client *Client
}

func (c *ResidentPortalClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("curbwise: resident portal client not initialized")
	}
	return nil
}

// Register completes an invited resident's registration. The password
// confirmation is checked here, before any network call, so a mismatch
// surfaces synchronously.
func (c *ResidentPortalClient) Register(ctx context.Context, req ResidentRegistration) (LoginResponse, error) {
	if err := c.ensureInitialized(); err != nil {
		return LoginResponse{}, err
	}
	if strings.TrimSpace(req.InviteToken) == "" {
		return LoginResponse{}, ValidationError{Field: "token", Message: "required"}
	}
	if strings.TrimSpace(req.Username) == "" {
		return LoginResponse{}, ValidationError{Field: "username", Message: "required"}
	}
	if req.Password == "" {
		return LoginResponse{}, ValidationError{Field: "password", Message: "required"}
	}
	if req.Password != req.ConfirmPassword {
		return LoginResponse{}, ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}
	var payload LoginResponse
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.ResidentPortalRegister, req, &payload); err != nil {
		return LoginResponse{}, err
	}
	return payload, nil
}

// Invite sends a registration invite to a resident's email address.
func (c *ResidentPortalClient) Invite(ctx context.Context, req ResidentInviteRequest) error {
	if err := c.ensureInitialized(); err != nil {
		return err
	}
	if strings.TrimSpace(req.Email) == "" {
		return ValidationError{Field: "email", Message: "required"}
	}
	return c.client.sendAndDecode(ctx, http.MethodPost, routes.ResidentPortalInvite, req, nil)
}

// VerifyToken checks an invite token before showing the registration form.
func (c *ResidentPortalClient) VerifyToken(ctx context.Context, token string) (InviteTokenStatus, error) {
	if err := c.ensureInitialized(); err != nil {
		return InviteTokenStatus{}, err
	}
	if strings.TrimSpace(token) == "" {
		return InviteTokenStatus{}, ValidationError{Field: "token", Message: "required"}
	}
	path := routes.ResidentPortalVerifyToken + "?" + url.Values{"token": {token}}.Encode()
	var payload InviteTokenStatus
	if err := c.client.sendAndDecode(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return InviteTokenStatus{}, err
	}
	return payload, nil
}
