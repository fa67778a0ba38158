package curbwise

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/curbwise/curbwise-go/routes"
)

// LoginResponse mirrors the token exchange response from POST /login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	User        Principal `json:"user"`
}

// AuthClient wraps the authentication endpoints.
type AuthClient struct {
	client *Client
}

func (a *AuthClient) ensureInitialized() error {
	if a == nil || a.client == nil {
		return fmt.Errorf("curbwise: auth client not initialized")
	}
	return nil
}

// Login exchanges a username and password for a bearer token. The backend
// takes this one request form-encoded rather than as JSON.
func (a *AuthClient) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	if err := a.ensureInitialized(); err != nil {
		return LoginResponse{}, err
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return LoginResponse{}, ValidationError{Message: "username and password required"}
	}
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req, err := a.client.newFormRequest(ctx, routes.Login, form)
	if err != nil {
		return LoginResponse{}, err
	}
	resp, err := a.client.send(req)
	if err != nil {
		return LoginResponse{}, err
	}
	defer resp.Body.Close()
	var payload LoginResponse
	if err := decodeJSON(resp, routes.Login, &payload); err != nil {
		return LoginResponse{}, err
	}
	if payload.AccessToken == "" {
		return LoginResponse{}, DecodeError{Path: routes.Login, Cause: fmt.Errorf("missing access_token in response")}
	}
	return payload, nil
}

// Me returns the principal behind the current bearer credential.
func (a *AuthClient) Me(ctx context.Context) (Principal, error) {
	if err := a.ensureInitialized(); err != nil {
		return Principal{}, err
	}
	var payload Principal
	if err := a.client.sendAndDecode(ctx, http.MethodGet, routes.Me, nil, &payload); err != nil {
		return Principal{}, err
	}
	return payload, nil
}
