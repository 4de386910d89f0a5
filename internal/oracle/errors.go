package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"strings"
)

// Failure kinds. The pipeline collapses all of them into one
// "classification failed" outcome; the kinds exist for logs and metrics.
const (
	KindAuth      = "auth_error"
	KindTimeout   = "timeout"
	KindNetwork   = "network_error"
	KindMalformed = "malformed_response"
	KindBadStatus = "bad_status"
	KindBreaker   = "circuit_open"
	KindUnknown   = "unknown_error"
)

// CallError wraps an oracle failure with its kind.
type CallError struct {
	Kind string
	Err  error
}

func (e *CallError) Error() string {
	return "oracle " + e.Kind + ": " + e.Err.Error()
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind for an error returned by the client.
func KindOf(err error) string {
	if err == nil {
		return ""
	}

	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}

	// JSON decode errors - 响应格式错误
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return KindMalformed
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return KindMalformed
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	}

	if strings.Contains(err.Error(), "circuit breaker is open") {
		return KindBreaker
	}

	return KindUnknown
}
