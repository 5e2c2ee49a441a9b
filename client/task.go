package client

import (
	"fmt"
	"strings"
)

// Task represents a to-do item as returned by the task service.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
}

// CreateTaskRequest represents the JSON payload for creating a new task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateStatusRequest represents the JSON payload of PATCH /tasks/{id}/status.
type UpdateStatusRequest struct {
	Completed bool `json:"completed"`
}

// Filter selects which subset of tasks the service should return.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Filters lists the selectable filters in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

// ParseFilter converts a user supplied name into a Filter.
// An empty string is treated as FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return FilterAll, fmt.Errorf("unknown filter %q", s)
	}
}

// CompletedParam returns the value of the "completed" query parameter for the
// filter. ok is false when no parameter must be sent.
func (f Filter) CompletedParam() (value string, ok bool) {
	switch f {
	case FilterPending:
		return "false", true
	case FilterCompleted:
		return "true", true
	default:
		return "", false
	}
}
