package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SkitsONe/blogctl/internal/client/models"
)

func (c *Client) ListPosts(ctx context.Context, params url.Values) ([]models.Post, error) {
	var out []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts", params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPost(ctx context.Context, id models.ID) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePost(ctx context.Context, data PostData) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePost(ctx context.Context, id models.ID, data PostData) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil, nil)
}
