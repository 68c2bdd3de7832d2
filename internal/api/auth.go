package api

import (
	"context"

	"github.com/spec-kit/fittrack/internal/domain"
)

// AuthClient wraps the backend's authentication endpoints. These are the
// two endpoints exempt from the pipeline's forced-logout handling.
type AuthClient struct {
	client *Client
}

// NewAuthClient builds an AuthClient over the shared base client.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// Login exchanges credentials for a bearer token.
func (a *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp domain.LoginResponse
	req := domain.LoginRequest{Username: username, Password: password}
	if err := a.client.post(ctx, "/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. It does not log in; callers chain Login
// themselves.
func (a *AuthClient) Register(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	req := domain.RegisterRequest{Username: username, Password: password}
	if err := a.client.post(ctx, "/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
