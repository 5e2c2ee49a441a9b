// Package client provides a client for the remote task service.
// It maps the four task operations (list, create, set status, delete) onto
// HTTP requests and performs no retries, caching or deduplication.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 10 * time.Second
	// DefaultBaseURL is where the task service listens during local development.
	DefaultBaseURL = "http://localhost:3000/api"

	headerRequestID = "X-Request-Id"
)

// TaskService is the set of operations the task list view needs from the remote service.
type TaskService interface {
	ListTasks(ctx context.Context, filter Filter) ([]Task, error)
	CreateTask(ctx context.Context, title, description string) (*Task, error)
	SetTaskStatus(ctx context.Context, id string, completed bool) (*Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Client talks to the task service over HTTP.
type Client struct {
	http    *resty.Client
	baseURL string
	log     *logrus.Logger
}

var _ TaskService = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithLogger routes request diagnostics to logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			return
		}
		c.log = logger
		c.http.SetLogger(logger)
	}
}

// WithDebug dumps every request and response through the client logger.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.http.SetDebug(debug) }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.http.SetHeader("User-Agent", ua) }
}

// NewClient creates a client for the task service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	baseURL = strings.TrimRight(baseURL, "/")
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(DefaultTimeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json").
			SetLogger(discard),
		baseURL: baseURL,
		log:     discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.WithFields(logrus.Fields{
			"method":     resp.Request.Method,
			"url":        resp.Request.URL,
			"status":     resp.StatusCode(),
			"latency":    resp.Time(),
			"request_id": resp.Request.Header.Get(headerRequestID),
		}).Debug("task service call")
		return nil
	})
	return c
}

// BaseURL returns the root URL every request path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context) (*resty.Request, string) {
	requestID := uuid.NewString()
	return c.http.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID), requestID
}

// ListTasks fetches the tasks matching filter, in the order the service returns them.
func (c *Client) ListTasks(ctx context.Context, filter Filter) ([]Task, error) {
	req, requestID := c.newRequest(ctx)
	if value, ok := filter.CompletedParam(); ok {
		req.SetQueryParam("completed", value)
	}

	resp, err := req.Get("/tasks")
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, newAPIError(resp.StatusCode(), resp.Body(), requestID)
	}

	tasks := []Task{}
	if err := json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task list: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// CreateTask asks the service to create a task and returns it with its
// service-assigned id and creation timestamp.
func (c *Client) CreateTask(ctx context.Context, title, description string) (*Task, error) {
	req, requestID := c.newRequest(ctx)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(&CreateTaskRequest{Title: title, Description: description}).
		Post("/tasks")
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, newAPIError(resp.StatusCode(), resp.Body(), requestID)
	}
	return decodeTask(resp.Body())
}

// SetTaskStatus sets the completed flag of the task identified by id.
func (c *Client) SetTaskStatus(ctx context.Context, id string, completed bool) (*Task, error) {
	req, requestID := c.newRequest(ctx)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(&UpdateStatusRequest{Completed: completed}).
		Patch("/tasks/{id}/status")
	if err != nil {
		return nil, fmt.Errorf("failed to update status of task %s: %w", id, err)
	}
	if !resp.IsSuccess() {
		return nil, newAPIError(resp.StatusCode(), resp.Body(), requestID)
	}
	return decodeTask(resp.Body())
}

// DeleteTask removes the task identified by id.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	req, requestID := c.newRequest(ctx)
	resp, err := req.
		SetPathParam("id", id).
		Delete("/tasks/{id}")
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	if !resp.IsSuccess() {
		return newAPIError(resp.StatusCode(), resp.Body(), requestID)
	}
	return nil
}

func decodeTask(body []byte) (*Task, error) {
	var task Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, fmt.Errorf("failed to decode task: %w", err)
	}
	return &task, nil
}
