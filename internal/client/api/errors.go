package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// Sentinel values for Error.Status outside the HTTP range.
const (
	// StatusLocal marks failures that happened before the request was
	// dispatched (URL construction, payload encoding, response decoding).
	StatusLocal = -1

	// StatusNetwork marks requests that were sent but got no response
	// (unreachable host, DNS failure, timeout).
	StatusNetwork = 0
)

// Error is the uniform shape every API failure is normalized into. Status
// carries the HTTP status code, or StatusNetwork / StatusLocal for failures
// without a response. Errors holds per-field validation messages when the
// backend supplied them (400/422 only).
type Error struct {
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

const (
	genericMessage = "request failed"
	localMessage   = "unknown error"
	networkMessage = "could not reach the server; check your network connection"
)

// defaultMessages are used when the response body carries no message of its
// own. Statuses outside this table fall back to genericMessage.
var defaultMessages = map[int]string{
	400: "invalid request",
	401: "authentication required",
	403: "access denied",
	404: "resource not found",
	422: "validation failed",
	500: "internal server error",
}

// normalizeResponse maps an HTTP error response to an *Error. The body's
// "message" field wins when present; per-field validation errors are
// forwarded only for 400 and 422. Total: any body, including an empty or
// non-JSON one, produces a usable error.
func normalizeResponse(status int, body []byte) *Error {
	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Message
	if msg == "" {
		if def, ok := defaultMessages[status]; ok {
			msg = def
		} else {
			msg = genericMessage
		}
	}

	e := &Error{Message: msg, Status: status}
	if status == 400 || status == 422 {
		e.Errors = payload.Errors
	}
	return e
}

// normalizeTransport maps a failure without an HTTP response to an *Error.
// A *url.Error means http.Client.Do ran, so the request left the process:
// that covers refused connections, DNS failures, and timeouts, all of which
// become StatusNetwork. Anything else failed before dispatch and becomes
// StatusLocal with the original message.
func normalizeTransport(err error) *Error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return &Error{Message: networkMessage, Status: StatusNetwork}
	}

	msg := localMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Message: msg, Status: StatusLocal}
}

// localError builds a StatusLocal error from an arbitrary failure, keeping
// its message.
func localError(err error) *Error {
	return &Error{Message: err.Error(), Status: StatusLocal}
}
