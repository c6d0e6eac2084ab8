package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// ErrSessionExpired marks a 401 on any endpoint other than login. By the time
// the caller sees it the session is already cleared and the redirect issued.
var ErrSessionExpired = errors.New("session expired")

// DetailItem is one field-level message of a backend validation failure.
type DetailItem struct {
	Loc  []any  `json:"loc,omitempty"`
	Msg  string `json:"msg"`
	Type string `json:"type,omitempty"`
}

// Detail is the backend's structured error detail: either a flat message or a
// list of field-level messages.
type Detail struct {
	Message string
	Items   []DetailItem
}

func (d *Detail) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	switch raw[0] {
	case '"':
		return json.Unmarshal(raw, &d.Message)
	case '[':
		return json.Unmarshal(raw, &d.Items)
	case '{':
		var item DetailItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return err
		}
		d.Items = []DetailItem{item}
		return nil
	default:
		d.Message = string(raw)
		return nil
	}
}

func (d Detail) MarshalJSON() ([]byte, error) {
	if len(d.Items) > 0 {
		return json.Marshal(d.Items)
	}
	return json.Marshal(d.Message)
}

// First returns the message worth showing to a user, or "".
func (d Detail) First() string {
	if len(d.Items) > 0 {
		return strings.TrimSpace(d.Items[0].Msg)
	}
	return strings.TrimSpace(d.Message)
}

type errorBody struct {
	Detail  Detail `json:"detail"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     Detail
	Body       string

	cause error
}

func newAPIError(method, path string, status int, raw []byte) *APIError {
	e := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       strings.TrimSpace(string(raw)),
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		e.Detail = body.Detail
		if e.Detail.First() == "" && strings.TrimSpace(body.Message) != "" {
			e.Detail.Message = strings.TrimSpace(body.Message)
		}
	}
	return e
}

func (e *APIError) Error() string {
	if e == nil {
		return "api error"
	}
	msg := e.Detail.First()
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status=%d message=%s", e.Method, e.Path, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error { return e.cause }

// Message returns the backend's first detail message, or fallback.
func (e *APIError) Message(fallback string) string {
	if e == nil {
		return fallback
	}
	if msg := e.Detail.First(); msg != "" {
		return msg
	}
	return fallback
}

// TransportError is a request that never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsLoginFailure reports whether err is a rejected login attempt.
func IsLoginFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized && apiErr.cause == nil
}

// StatusCode extracts the HTTP status of err, or 0 when err carries none.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Message returns the user-facing message for any error returned by the
// client, falling back when the backend sent no detail.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message(fallback)
	}
	return fallback
}
