package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/notequiz-api/internal/domain"
)

// NoteStore defines the interface for note data persistence.
type NoteStore interface {
	// Create validates and saves a note, setting note.ID to the generated id.
	Create(ctx context.Context, note *domain.Note) error

	// GetByID retrieves a note by ID regardless of owner.
	// Returns ErrNoteNotFound if the note does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Note, error)

	// ListByUser returns all notes owned by userID, newest first.
	// Returns an empty, non-nil slice when the user has no notes.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)

	// Delete removes the note with the given id if it is owned by userID.
	// Returns ErrNoteNotFound if no such note exists for that user.
	Delete(ctx context.Context, userID uuid.UUID, id int64) error

	// WithTx returns a NoteStore that runs its queries on tx.
	WithTx(tx *sql.Tx) NoteStore
}
