package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// maxErrorBodyLength bounds how much of a non-JSON error body ends up in an error message.
const maxErrorBodyLength = 200

// APIError is returned when the task service answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("task service error: %s (status: %d, request id: %s)", e.Message, e.StatusCode, e.RequestID)
}

// IsNotFound reports whether err is an APIError carrying a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func newAPIError(status int, body []byte, requestID string) *APIError {
	return &APIError{
		StatusCode: status,
		Message:    errorMessage(status, body),
		RequestID:  requestID,
	}
}

// errorMessage pulls a human readable message out of an error body. Services
// disagree on the shape, so a few common paths are probed before falling back
// to the raw text.
func errorMessage(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"error.message", "message", "error"} {
			if res := gjson.GetBytes(body, path); res.Exists() && res.String() != "" {
				return res.String()
			}
		}
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return http.StatusText(status)
	}
	if len(text) > maxErrorBodyLength {
		text = text[:maxErrorBodyLength] + "..."
	}
	return text
}
