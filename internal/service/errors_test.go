package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/notequiz-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	cause := errors.New("boom")

	assert.NoError(t, wrapError("note", "op", "msg", nil))
	assert.Equal(t, ErrNoteNotFound, wrapError("note", "op", "msg", fmt.Errorf("x: %w", store.ErrNoteNotFound)))
	assert.Equal(t, ErrUsernameTaken, wrapError("user", "op", "msg", store.ErrUsernameExists))
	assert.Equal(t, ErrNotOwned, wrapError("note", "op", "msg", ErrNotOwned))

	err := wrapError("note", "list_notes", "failed", cause)
	assert.EqualError(t, err, "note service list_notes failed: failed: boom")
	assert.ErrorIs(t, err, cause)

	assert.EqualError(t, &ServiceError{Service: "note", Operation: "x", Message: "m"}, "note service x failed: m")
}
