package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// do performs one HTTP exchange. body (when non-nil) is JSON-encoded; out
// (when non-nil) receives the decoded response, tolerating both the
// {"data": ...} envelope and a bare payload. All failures come back as
// *Error; a 401 response additionally evicts the persisted token before the
// error is returned.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqID := uuid.NewString()

	var (
		payload io.Reader
		raw     []byte
	)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return localError(fmt.Errorf("encoding request: %w", err))
		}
		raw = b
		payload = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return localError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// The token presence is logged, never its value.
	tok, err := c.tokens.Load()
	if err != nil {
		c.log.Warn(ctx, "loading token failed", "id", reqID, "error", err)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.log.Debug(ctx, "request",
		"id", reqID, "method", method, "path", path,
		"token", tok != "", "payload", string(raw))

	resp, err := c.http.Do(req)
	if err != nil {
		nerr := normalizeTransport(err)
		c.log.Error(ctx, "request failed",
			"id", reqID, "method", method, "path", path, "error", err)
		return nerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "reading response failed",
			"id", reqID, "method", method, "path", path, "error", err)
		return &Error{Message: networkMessage, Status: StatusNetwork}
	}

	if resp.StatusCode >= 400 {
		nerr := normalizeResponse(resp.StatusCode, data)
		c.log.Error(ctx, "error response",
			"id", reqID, "method", method, "path", path,
			"status", resp.StatusCode, "message", nerr.Message)
		if resp.StatusCode == http.StatusUnauthorized {
			if cerr := c.tokens.Clear(); cerr != nil {
				c.log.Warn(ctx, "token eviction failed", "id", reqID, "error", cerr)
			}
		}
		return nerr
	}

	c.log.Debug(ctx, "response",
		"id", reqID, "method", method, "path", path,
		"status", resp.StatusCode, "payload", string(data))

	if out != nil && len(data) > 0 {
		if err := decodeBody(data, out); err != nil {
			return localError(fmt.Errorf("decoding response: %w", err))
		}
	}
	return nil
}

// decodeBody unmarshals a response that may arrive either wrapped in a
// {"data": ...} envelope or as the bare payload.
func decodeBody(data []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(data, out)
}
