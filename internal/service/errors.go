package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/notequiz-api/internal/store"
)

// Sentinel errors returned by the services. Callers check them with errors.Is.
var (
	// ErrNotOwned indicates the resource belongs to a different user than
	// the one making the request. The API maps it to 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrNoteNotFound indicates the note does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrUsernameTaken indicates registration with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
)

// ServiceError wraps an unexpected failure with the service and operation
// it came from.
type ServiceError struct {
	Service   string // e.g. "note", "user"
	Operation string // e.g. "create_note"
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError returns the service sentinel for known store conditions and a
// *ServiceError for everything else. A nil err stays nil.
func wrapError(service, operation, message string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotOwned), errors.Is(err, ErrNoteNotFound), errors.Is(err, ErrUsernameTaken):
		return err
	case errors.Is(err, store.ErrNoteNotFound):
		return ErrNoteNotFound
	case errors.Is(err, store.ErrUsernameExists):
		return ErrUsernameTaken
	}
	return &ServiceError{Service: service, Operation: operation, Message: message, Err: err}
}
