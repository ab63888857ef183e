package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors for outcomes that carry no extra detail.
var (
	ErrSlotTaken       = stderrors.New("time slot is already booked")
	ErrMissingToolName = stderrors.New("tool name is required")
)

// MalformedRequestError reports the first request field that failed validation.
type MalformedRequestError struct {
	Field  string
	Reason string
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func MalformedRequest(field, reason string) *MalformedRequestError {
	return &MalformedRequestError{Field: field, Reason: reason}
}

// UnknownToolError is returned when dispatch cannot resolve a tool name.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

func UnknownTool(name string) *UnknownToolError {
	return &UnknownToolError{Name: name}
}

// MissingParameterError is returned in strict dispatch mode when a required
// tool parameter is absent.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Name)
}

func MissingParameter(name string) *MissingParameterError {
	return &MissingParameterError{Name: name}
}

// StorageError wraps a failure of the underlying store. Its message is
// deliberately generic; the cause stays reachable through Unwrap for logging.
type StorageError struct {
	cause error
}

func (e *StorageError) Error() string {
	return "storage unavailable"
}

func (e *StorageError) Unwrap() error {
	return e.cause
}

func Storage(err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{cause: err}
}

func IsSlotTaken(err error) bool {
	return stderrors.Is(err, ErrSlotTaken)
}

func IsMalformedRequest(err error) bool {
	var target *MalformedRequestError
	return stderrors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return stderrors.As(err, &target)
}
