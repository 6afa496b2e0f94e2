// Package api is the HTTP boundary of the admin console: one typed accessor
// per catalog entity, each call translating a CRUD intent into exactly one
// request against the BookNet REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const headerRequestID = "X-Request-Id"

// Client issues requests against the BookNet API. It carries the bearer token
// for authenticated calls and applies a client-side rate limit so that bulk
// console operations cannot hammer the server.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	token       string
	rateLimiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRateLimit overrides the default requests-per-second limit and burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.rateLimiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithHTTPClient swaps the underlying http.Client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new BookNet API client.
func NewClient(apiURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(10), 20),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to subsequent requests. An empty
// token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently attached bearer token.
func (c *Client) Token() string {
	return c.token
}

// errorBody is the conventional error envelope returned by the API.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one request and decodes a JSON response into out (when out is
// non-nil). Non-2xx responses become a *TransportError carrying the server's
// message field when present. There are no retries: a CRUD call maps to
// exactly one request on the wire.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return &TransportError{Err: err}
	}
	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
		}
	}
	return nil
}

// upload performs a multipart POST with a single "file" field. The server
// interprets the file contents; the caller only sees the result string.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newStatusError(resp)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Status: resp.StatusCode, Err: err}
	}
	return string(result), nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "booknet-admin/1.0")
	req.Header.Set(headerRequestID, uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// newStatusError drains the response body looking for the conventional
// {"message": "..."} envelope.
func newStatusError(resp *http.Response) *TransportError {
	te := &TransportError{Status: resp.StatusCode}
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return te
	}
	var eb errorBody
	if err := json.Unmarshal(bodyBytes, &eb); err == nil && eb.Message != "" {
		te.Message = eb.Message
	}
	return te
}

// pageQuery builds the standard listing query string. A negative page or size
// falls back to the server defaults used by the web console.
func pageQuery(page, size int, name string) url.Values {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 100
	}
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("size", fmt.Sprintf("%d", size))
	query.Set("name", name)
	return query
}
