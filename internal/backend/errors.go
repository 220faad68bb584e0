package backend

import (
	"encoding/json"
	"fmt"
)

// APIError is a backend response with a failure status. Its message is safe
// to show to the user; transport failures never become APIErrors and
// collapse to the generic workflow message instead.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements error.
func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// UserMessage implements workflow.UserFacingError.
func (e *APIError) UserMessage() string {
	return e.Message
}

// newAPIError extracts the structured error message from a failure body
// when one is present, else falls back to a status description.
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return &APIError{StatusCode: statusCode, Message: payload.Error}
		}
		if payload.Message != "" {
			return &APIError{StatusCode: statusCode, Message: payload.Message}
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Request failed with status %d", statusCode),
	}
}
