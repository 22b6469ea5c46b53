package legalapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/legalsuite/go-legalsuite/internal/errors"
	"github.com/legalsuite/go-legalsuite/internal/utils"
)

const maxErrorBody = 64 << 10

// APIError is a non-2xx response from the backend. Django REST
// Framework answers failures in one of three shapes: {"detail": "..."},
// {"error": "..."}, or a field-keyed validation map such as
// {"username": ["A user with that username already exists."]}. All
// three are captured here so flows can surface per-field messages
// instead of one generic string.
type APIError struct {
	StatusCode  int
	Detail      string
	FieldErrors map[string][]string
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	for key, value := range payload {
		switch v := value.(type) {
		case string:
			if key == "detail" || key == "error" || key == "message" {
				apiErr.Detail = v
				continue
			}
			if apiErr.FieldErrors == nil {
				apiErr.FieldErrors = map[string][]string{}
			}
			apiErr.FieldErrors[key] = []string{v}
		case []any:
			if apiErr.FieldErrors == nil {
				apiErr.FieldErrors = map[string][]string{}
			}
			apiErr.FieldErrors[key] = utils.ToStringSlice(v)
		}
	}
	return apiErr
}

func (e *APIError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "api error %d", e.StatusCode)
	if e.Detail != "" {
		fmt.Fprintf(&sb, ": %s", e.Detail)
	}
	for field, messages := range e.FieldErrors {
		fmt.Fprintf(&sb, "; %s: %s", field, strings.Join(messages, ", "))
	}
	return sb.String()
}

// Unwrap maps the status code onto the client's sentinel errors so
// callers can use errors.Is without inspecting codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusBadRequest:
		return apperrors.ErrValidation
	}
	return nil
}

// FieldError returns the first backend message for a field, or empty.
func (e *APIError) FieldError(field string) string {
	messages := e.FieldErrors[field]
	if len(messages) == 0 {
		return ""
	}
	return messages[0]
}
