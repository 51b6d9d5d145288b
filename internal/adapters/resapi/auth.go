package resapi

import (
	"context"
	"net/http"

	"stayfront/internal/domain"
)

// Auth endpoints return their payloads bare, no envelope.

func (c *Client) Register(ctx context.Context, u domain.UserCreate) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPost, "/users/register", "/users/register", nil, u, bare(&out))
	return out, err
}

// Login exchanges credentials for {access_token, user}. Persisting the pair
// is the session store's job, not this layer's.
func (c *Client) Login(ctx context.Context, cred domain.Credentials) (domain.User, string, error) {
	var out struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        domain.User `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/users/login", "/users/login", nil, cred, bare(&out))
	if err != nil {
		return domain.User{}, "", err
	}
	return out.User, out.AccessToken, nil
}

func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodGet, "/users/me", "/users/me", nil, nil, bare(&out))
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, u domain.UserUpdate) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPut, "/users/me", "/users/me", nil, u, bare(&out))
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, p domain.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/users/me/change-password", "/users/me/change-password", nil, p, nil)
}
