// Package httpapi implements domain.TaskResource over the REST /tasks endpoint.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/runoshun/tasktable/internal/domain"
)

// Ensure Client implements domain.TaskResource.
var _ domain.TaskResource = (*Client)(nil)

// maxErrorBody bounds how much of a failed response body is kept in a StatusError.
const maxErrorBody = 4 << 10

// tasksPath is the collection path below the base URL.
const tasksPath = "/tasks"

// errEmptyBody is returned when a 2xx response that should carry a record has no body.
var errEmptyBody = fmt.Errorf("%w: empty response body", domain.ErrRemote)

// StatusError reports a non-2xx response from the task resource.
type StatusError struct {
	Method string
	Path   string
	Body   string
	Code   int
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap maps 404 to domain.ErrTaskNotFound and every other status to domain.ErrRemote.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return domain.ErrTaskNotFound
	}
	return domain.ErrRemote
}

// Client talks JSON to <BaseURL>/tasks.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a Client with a per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a Client using the given http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		http:    hc,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches all task records.
func (c *Client) List(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := c.do(ctx, http.MethodGet, tasksPath, nil, &tasks); err != nil && !errors.Is(err, errEmptyBody) {
		return nil, err
	}
	// A null or empty body is an empty collection.
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// Create posts a new record. The id field is never sent.
func (c *Client) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	body := task.Clone()
	body.ID = ""
	var created domain.Task
	if err := c.do(ctx, http.MethodPost, tasksPath, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the record with the given id.
// A success response without a body is an error: the stored record is unknown.
func (c *Client) Update(ctx context.Context, id domain.TaskID, task *domain.Task) (*domain.Task, error) {
	body := task.Clone()
	body.ID = id
	var updated domain.Task
	if err := c.do(ctx, http.MethodPut, taskPath(id), body, &updated); err != nil {
		return nil, err
	}
	if updated.ID == "" {
		updated.ID = id
	}
	return &updated, nil
}

// Delete removes the record with the given id.
func (c *Client) Delete(ctx context.Context, id domain.TaskID) error {
	return c.do(ctx, http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id domain.TaskID) string {
	return tasksPath + "/" + url.PathEscape(string(id))
}

// do issues a request with an optional JSON body and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s %s: %w", method, path, errEmptyBody)
		}
		return fmt.Errorf("%w: decode %s %s response: %w", domain.ErrRemote, method, path, err)
	}
	return nil
}
