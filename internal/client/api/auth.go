package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SkitsONe/blogctl/internal/client/models"
)

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthPayload, error) {
	var out AuthPayload
	if err := c.do(ctx, http.MethodPost, "/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, data RegisterData) (*AuthPayload, error) {
	var out AuthPayload
	if err := c.do(ctx, http.MethodPost, "/register", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

// Me fetches the current account. Backends answer either with the bare user
// object or with it wrapped under a "user" key; both are accepted.
func (c *Client) Me(ctx context.Context) (*models.UserRecord, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &raw); err != nil {
		return nil, err
	}

	var env struct {
		User *models.UserRecord `json:"user"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.User != nil {
		return env.User, nil
	}

	var user models.UserRecord
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, localError(fmt.Errorf("decoding user: %w", err))
	}
	return &user, nil
}
