package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSessionExpired means the access token was rejected and no refresh
	// token was available (or the refresh itself failed). The caller must
	// send the user back to login; there is no silent re-login.
	ErrSessionExpired = errors.New("session expired, login required")

	// ErrNotFound maps a 404 from any resource endpoint.
	ErrNotFound = errors.New("resource not found")
)

// ValidationErrors is a field -> message map. Local draft validation and
// server-side field errors are both rendered through this one type, so a
// screen highlights every invalid field at once whichever side produced the
// errors.
type ValidationErrors map[string]string

// Fields lists the invalid field names in stable sorted order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := v.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Merge folds other into v, keeping v's message when both sides flag the same
// field (local validation wins over server echoes).
func (v ValidationErrors) Merge(other ValidationErrors) {
	for field, msg := range other {
		if _, ok := v[field]; !ok {
			v[field] = msg
		}
	}
}

// AsValidationErrors unwraps err into a ValidationErrors map if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// APIError is a non-validation failure reported by the backend, carrying the
// best human-readable message that could be extracted from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}
