package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	warns []string
}

func (n *recordingNotifier) Warn(msg string) { n.warns = append(n.warns, msg) }

type recordingSessions struct {
	cleared int
}

func (s *recordingSessions) Clear() error {
	s.cleared++
	return nil
}

func newHandler() (*ErrorHandler, *recordingNotifier, *recordingSessions) {
	notes := &recordingNotifier{}
	sessions := &recordingSessions{}
	return NewErrorHandler(notes, sessions, zap.NewNop()), notes, sessions
}

func TestHandle_ValidationArray(t *testing.T) {
	h, notes, _ := newHandler()
	h.Handle(&APIError{Status: 422, Body: []byte(
		`{"errors":[{"description":"The name field is required."},{"description":"The phone field is required."}]}`)})

	assert.Equal(t, []string{
		"The name field is required.",
		"The phone field is required.",
	}, notes.warns)
}

func TestHandle_ValidationFieldMap(t *testing.T) {
	h, notes, _ := newHandler()
	h.Handle(&APIError{Status: 422, Body: []byte(
		`{"errors":{"email":["The email has already been taken.","Second message"]}}`)})

	// first message per field only
	assert.Equal(t, []string{"The email has already been taken."}, notes.warns)
}

func TestHandle_UnauthorizedClearsSession(t *testing.T) {
	h, notes, sessions := newHandler()
	h.Handle(&APIError{Status: 401, Body: []byte(`{"message":"Unauthenticated."}`)})

	assert.Equal(t, []string{"Please login"}, notes.warns)
	assert.Equal(t, 1, sessions.cleared)
}

func TestHandle_MessageBody(t *testing.T) {
	h, notes, sessions := newHandler()
	h.Handle(&APIError{Status: 500, Body: []byte(`{"message":"Server Error"}`)})

	assert.Equal(t, []string{"Server Error"}, notes.warns)
	assert.Zero(t, sessions.cleared)
}

func TestHandle_RawBodyFallback(t *testing.T) {
	h, notes, _ := newHandler()
	h.Handle(&APIError{Status: 502, Body: []byte("Bad Gateway")})
	assert.Equal(t, []string{"Bad Gateway"}, notes.warns)
}

func TestHandle_TransportError(t *testing.T) {
	h, notes, sessions := newHandler()
	h.Handle(errors.New("dial tcp: connection refused"))

	assert.Equal(t, []string{"dial tcp: connection refused"}, notes.warns)
	assert.Zero(t, sessions.cleared)
}

func TestHandle_WrappedAPIError(t *testing.T) {
	h, notes, sessions := newHandler()
	wrapped := fmt.Errorf("create order: %w", &APIError{Status: 401})
	h.Handle(wrapped)

	assert.Equal(t, []string{"Please login"}, notes.warns)
	assert.Equal(t, 1, sessions.cleared)
}

func TestHandle_Nil(t *testing.T) {
	h, notes, _ := newHandler()
	h.Handle(nil)
	assert.Empty(t, notes.warns)
}

func TestUnauthorized(t *testing.T) {
	assert.True(t, Unauthorized(&APIError{Status: 401}))
	assert.False(t, Unauthorized(&APIError{Status: 403}))
	assert.True(t, Unauthorized(ErrUnauthorized))
	assert.False(t, Unauthorized(errors.New("boom")))
}
