package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// TransportError is the single failure signal of the client: the operation
// did not succeed. Status is zero when no response was received.
type TransportError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.Status, e.Message)
	case e.Status != 0 && e.Err == nil:
		return fmt.Sprintf("%s: server returned %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": request failed"
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AsTransportError returns the TransportError wrapped in err, if any.
func AsTransportError(err error) *TransportError {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr
	}
	return nil
}

const maxErrorBody = 4 << 10

func decodeStatusError(op string, resp *http.Response) error {
	type errorPayload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return &TransportError{Op: op, Status: resp.StatusCode, Message: msg}
		}
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return &TransportError{Op: op, Status: resp.StatusCode, Message: msg}
		}
	}

	return &TransportError{
		Op:      op,
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}
}
