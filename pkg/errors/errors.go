package custom_error

import (
	"errors"
	"fmt"

	"logistica/pkg/httpstatus"
)

// ValidationError is raised locally, before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NetworkError is a transport failure: timeout, unreachable host, DNS.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is any response outside the success code an operation expects.
type ServerError struct {
	Op       string
	Status   int
	Category httpstatus.Category
	Body     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d (%s)", e.Op, e.Status, e.Category)
}

// StorageError is a failure of the on-device session storage.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("session storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewServerError(op string, status int, body []byte) error {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}

	return &ServerError{
		Op:       op,
		Status:   status,
		Category: httpstatus.Classify(status),
		Body:     string(body),
	}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNetwork(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

func IsServer(err error) bool {
	var target *ServerError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
