package curbwise

import (
	"context"
	"fmt"
	"net/http"

	"github.com/curbwise/curbwise-go/routes"
)

// UsersClient wraps the user administration endpoints. These require an
// admin credential; the backend enforces that, not the client.
type UsersClient struct {
	client *Client
}

func (c *UsersClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("curbwise: users client not initialized")
	}
	return nil
}

// List returns every user account.
func (c *UsersClient) List(ctx context.Context) ([]User, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var payload []User
	if err := c.client.sendAndDecode(ctx, http.MethodGet, routes.Users, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Create registers a new user account.
func (c *UsersClient) Create(ctx context.Context, req UserCreateRequest) (User, error) {
	if err := c.ensureInitialized(); err != nil {
		return User{}, err
	}
	if err := req.Validate(); err != nil {
		return User{}, err
	}
	var payload User
	if err := c.client.sendAndDecode(ctx, http.MethodPost, routes.UsersCreate, req, &payload); err != nil {
		return User{}, err
	}
	return payload, nil
}
