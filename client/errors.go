package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrClientNotInitialized is returned when a request is sent through a nil client.
	ErrClientNotInitialized = errors.New("platform client not initialized")

	// ErrNotFound matches platform answers with status 404.
	ErrNotFound = errors.New("not found")

	// ErrForbidden matches platform answers with status 401 and 403.
	ErrForbidden = errors.New("permission denied")

	// ErrBadRequest matches platform answers with status 400 and 422.
	ErrBadRequest = errors.New("rejected by platform validation")

	// ErrConflict matches platform answers with status 409.
	ErrConflict = errors.New("conflict")
)

// PlatformError is a non 2xx answer of the platform.
type PlatformError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is lets errors.Is match a PlatformError against the status sentinels.
func (e *PlatformError) Is(target error) bool {
	switch target { //nolint:errorlint
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusUnauthorized
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	default:
		return false
	}
}

// errorBody is the error document the platform answers with.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newPlatformError(method, path string, status int, body []byte) *PlatformError {
	msg := strings.TrimSpace(string(body))

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		switch {
		case eb.Message != "":
			msg = eb.Message
		case eb.Error != "":
			msg = eb.Error
		}
	}

	if msg == "" {
		msg = http.StatusText(status)
	}

	return &PlatformError{
		StatusCode: status,
		Message:    msg,
		Method:     method,
		Path:       path,
	}
}
