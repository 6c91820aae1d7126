package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/mpetrenko/castgate/internal/common"
)

// errorPayload is the gateway's structured error body. Every field is
// optional; Message() below applies one fixed precedence over them so call
// sites never re-derive the fallback chain.
type errorPayload struct {
	Error       string              `json:"error"`
	Message     string              `json:"message"`
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// APIError is a rejected gateway request. It carries the HTTP status code
// and whatever structure the error body had.
type APIError struct {
	StatusCode int
	status     string
	payload    errorPayload
	raw        []byte
}

func newAPIError(statusCode int, status string, raw []byte) *APIError {
	e := &APIError{StatusCode: statusCode, status: status, raw: raw}
	// a non-JSON body is fine; the raw bytes remain the fallback
	_ = json.Unmarshal(raw, &e.payload)
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error %d: %s", e.StatusCode, e.Message())
}

// Is maps status codes onto the shared sentinels: a 401 matches
// common.ErrUnauthorized, a 403 matches common.ErrQuotaExceeded.
func (e *APIError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case common.ErrQuotaExceeded:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

// Message extracts a human-readable message with a fixed precedence:
//
//  1. top-level message string ("error", then "message")
//  2. form-level errors, joined
//  3. first field-level error, prefixed with the field name
//  4. the raw payload
//  5. the transport status line
func (e *APIError) Message() string {
	if e.payload.Error != "" {
		return e.payload.Error
	}
	if e.payload.Message != "" {
		return e.payload.Message
	}
	if len(e.payload.FormErrors) > 0 {
		return strings.Join(e.payload.FormErrors, ", ")
	}
	if len(e.payload.FieldErrors) > 0 {
		// map order is random; take the first field alphabetically so the
		// surfaced message is stable
		fields := make([]string, 0, len(e.payload.FieldErrors))
		for f := range e.payload.FieldErrors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			if msgs := e.payload.FieldErrors[f]; len(msgs) > 0 {
				return f + ": " + msgs[0]
			}
		}
	}
	if len(e.raw) > 0 {
		return string(e.raw)
	}
	return e.status
}

// IsQuotaExceeded classifies a failed write attempt: true only for the
// gateway's plan-limit rejection (HTTP 403). Everything else — validation,
// network, unknown — is a generic failure.
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, common.ErrQuotaExceeded)
}

// ErrorMessage resolves a display message for any failure coming out of the
// client, using the APIError precedence when available and the plain error
// text otherwise.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
