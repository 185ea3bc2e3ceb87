package assignsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-success reply from the server.
type APIError struct {
	StatusCode int
	Message    string

	// Detail is the internal error text of a 500, when the server exposes it.
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns a failed reply into an *APIError, falling back to
// the status text when the body is not the usual {message} shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Message,
			Detail:     errResp.Error,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
