package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// APIError is any non-2xx answer. Validation failures carry per-field
// messages parsed from the body so forms can surface them inline.
type APIError struct {
	StatusCode int
	Message    string
	// Fields maps a submitted field name to its validation messages.
	// Empty unless the server answered with a field-error object.
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("api: invalid fields %s (status %d)",
		strings.Join(names, ", "), e.StatusCode)
}

// IsValidation reports whether the error carries field messages a form
// should map back onto its inputs.
func (e *APIError) IsValidation() bool {
	return len(e.Fields) > 0
}

// decodeResponse reads resp into v, or turns a non-2xx answer into an
// *APIError. The body is always drained so the connection is reusable.
func decodeResponse[T any](resp *http.Response, v *T) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if resp.StatusCode == http.StatusNoContent || v == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("rest: malformed response body: %w", err)
		}
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "unreadable error body"}
	}
	return parseAPIError(resp.StatusCode, body)
}

// parseAPIError understands the two error shapes the server produces:
// {"detail": "..."} for general failures, and a {field: [messages]}
// object for validation failures.
func parseAPIError(status int, body []byte) *APIError {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return &APIError{StatusCode: status, Message: detail.Detail}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		parsed := make(map[string][]string, len(fields))
		for name, raw := range fields {
			var many []string
			if err := json.Unmarshal(raw, &many); err == nil {
				parsed[name] = many
				continue
			}
			var one string
			if err := json.Unmarshal(raw, &one); err == nil {
				parsed[name] = []string{one}
			}
		}
		if len(parsed) > 0 {
			return &APIError{StatusCode: status, Message: "validation failed", Fields: parsed}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: msg}
}
