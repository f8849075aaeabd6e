package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a transport failure. Callers are expected to branch on
// Kind, Status and Retryable, never on message text.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNetwork means the request was dispatched but no response arrived.
	KindNetwork
	// KindServer means the server answered with a 5xx status.
	KindServer
	// KindClient means the server answered with a 4xx status.
	KindClient
	// KindTransport means the request could not be built or was canceled
	// before a response arrived.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindClient:
		return "client"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is the single failure representation crossing the client boundary.
// Status is 0 when no response was received.
type Error struct {
	Kind      Kind
	Message   string
	Status    int
	Body      []byte
	Details   []string
	Retryable bool

	// Err is the underlying transport error, if any. Kept for diagnostics.
	Err error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api %s error (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api %s error: %s", e.Kind, e.Message)
}

// IsValidation reports whether the server rejected the request with a
// field-level details list.
func (e *Error) IsValidation() bool {
	return e.Kind == KindClient && len(e.Details) > 0
}

// errorBody is the error payload shape the API emits.
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// newResponseError normalizes an error-status response. Message priority:
// body "error" field, joined "details" list, then the HTTP status text.
func newResponseError(status int, body []byte) *Error {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Error
	if message == "" && len(parsed.Details) > 0 {
		message = strings.Join(parsed.Details, ", ")
	}
	if message == "" {
		message = http.StatusText(status)
	}

	kind := KindUnknown
	retryable := false
	switch {
	case status >= 500 && status < 600:
		kind = KindServer
		retryable = true
	case status >= 400 && status < 500:
		kind = KindClient
	}

	return &Error{
		Kind:      kind,
		Message:   message,
		Status:    status,
		Body:      body,
		Details:   parsed.Details,
		Retryable: retryable,
	}
}

// newNetworkError covers requests that went out but got no response back.
func newNetworkError(err error) *Error {
	return &Error{
		Kind:      KindNetwork,
		Message:   "network error, no response received",
		Retryable: true,
		Err:       err,
	}
}

// newTransportError covers requests that could not even be dispatched.
func newTransportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: err.Error(),
		Err:     err,
	}
}
