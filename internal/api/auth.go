package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"booknet/internal/models"
)

const authPath = "/auth"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against POST /auth/login-alt. On success the server
// answers 2xx with the bearer token in the Authorization response header;
// a 2xx without that header is still a failure (ErrTokenMissing).
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	jsonData, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to encode login request: %w", err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+authPath+"/login-alt", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newStatusError(resp)
	}

	authHeader := resp.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrTokenMissing
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", ErrTokenMissing
	}
	return token, nil
}

// Me returns the authenticated identity behind the current token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var result models.User
	if err := c.do(ctx, http.MethodGet, authPath+"/me", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
