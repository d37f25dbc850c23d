package tenderly

import (
	"fmt"

	"github.com/simforge/tenderly-go/types"
)

// InvalidAddressError re-exports the local address validation failure so
// callers can type-switch on every failure kind from one package.
type InvalidAddressError = types.InvalidAddressError

// APIError is returned when the service answers with a non-2xx status. ID,
// Slug and Message carry the decoded error envelope when the body was
// decodable; otherwise Message holds a snippet of the raw body.
type APIError struct {
	Status  int    `json:"-"`
	ID      string `json:"id,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewAPIError creates a new APIError.
func NewAPIError(status int, id, slug, message string) *APIError {
	return &APIError{Status: status, ID: id, Slug: slug, Message: message}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	if e.Slug != "" {
		return fmt.Sprintf("api error: status %d (%s): %s", e.Status, e.Slug, e.Message)
	}

	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// DecodeError is returned when a 2xx response body does not match the
// expected shape.
type DecodeError struct {
	Err error
}

// NewDecodeError creates a new DecodeError wrapping the underlying JSON
// failure.
func NewDecodeError(err error) *DecodeError {
	return &DecodeError{Err: err}
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap exposes the underlying JSON error to errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RPCError is the error member of a JSON-RPC 2.0 response from a virtual
// testnet admin endpoint.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewRPCError creates a new RPCError.
func NewRPCError(code int, message string) *RPCError {
	return &RPCError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
