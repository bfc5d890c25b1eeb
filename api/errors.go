package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnauthorized is surfaced after a 401 so callers can stop the
// current command; the session has already been torn down by then.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d", e.Status)
}

// Notifier is the notification sink used by the error handler.
type Notifier interface {
	Warn(msg string)
}

// SessionCloser tears the stored session down on authentication failure.
type SessionCloser interface {
	Clear() error
}

// ErrorHandler is the shared error collaborator. Every failed network
// call in the console goes through Handle, which inspects the response
// shape and renders the matching notification. A 401 additionally
// clears the stored session so the operator is sent back to login.
type ErrorHandler struct {
	notify   Notifier
	sessions SessionCloser
	log      *zap.Logger
}

// NewErrorHandler builds the shared handler.
func NewErrorHandler(notify Notifier, sessions SessionCloser, log *zap.Logger) *ErrorHandler {
	return &ErrorHandler{notify: notify, sessions: sessions, log: log}
}

type errorBody struct {
	Errors  json.RawMessage `json:"errors"`
	Message string          `json:"message"`
}

type validationError struct {
	Description string `json:"description"`
}

// Handle renders an error as operator notifications. It never returns
// a value and never retries; recovery is operator-initiated.
func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		// Transport-level failure, no response to inspect.
		h.notify.Warn(err.Error())
		return
	}

	var body errorBody
	_ = json.Unmarshal(apiErr.Body, &body)

	if len(body.Errors) > 0 {
		var list []validationError
		if json.Unmarshal(body.Errors, &list) == nil {
			for _, v := range list {
				h.notify.Warn(v.Description)
			}
			return
		}
		var fields map[string][]string
		if json.Unmarshal(body.Errors, &fields) == nil {
			for _, msgs := range fields {
				if len(msgs) > 0 {
					h.notify.Warn(msgs[0])
				}
			}
			return
		}
	}

	if apiErr.Status == 401 {
		h.notify.Warn("Please login")
		if err := h.sessions.Clear(); err != nil {
			h.log.Warn("failed to clear session", zap.Error(err))
		}
		return
	}

	if body.Message != "" {
		h.notify.Warn(body.Message)
		return
	}

	if msg := strings.TrimSpace(string(apiErr.Body)); msg != "" {
		h.notify.Warn(msg)
		return
	}
	h.notify.Warn(apiErr.Error())
}

// Unauthorized reports whether an error is (or wraps) a 401 response.
func Unauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 401
	}
	return errors.Is(err, ErrUnauthorized)
}
