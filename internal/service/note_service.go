package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/notequiz-api/internal/domain"
	"github.com/phrazzld/notequiz-api/internal/platform/logger"
	"github.com/phrazzld/notequiz-api/internal/store"
)

// NoteService manages notes on behalf of their owners.
type NoteService interface {
	// CreateNote validates and stores a new note for userID.
	CreateNote(ctx context.Context, userID uuid.UUID, title, content string) (*domain.Note, error)

	// ListNotes returns the user's notes, newest first. Never nil.
	ListNotes(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)

	// GetNote returns the note if userID owns it. Returns ErrNoteNotFound or ErrNotOwned.
	GetNote(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.Note, error)

	// DeleteNote removes the note if userID owns it. Returns ErrNoteNotFound or ErrNotOwned.
	DeleteNote(ctx context.Context, userID uuid.UUID, noteID int64) error
}

type noteService struct {
	notes  store.NoteStore
	db     store.Beginner
	logger *slog.Logger
}

// NewNoteService creates a NoteService. db starts the transaction that
// DeleteNote uses to check ownership and delete atomically.
func NewNoteService(notes store.NoteStore, db store.Beginner, logger *slog.Logger) (NoteService, error) {
	if notes == nil {
		return nil, &ServiceError{Service: "note", Operation: "create_service", Message: "note store cannot be nil"}
	}
	if db == nil {
		return nil, &ServiceError{Service: "note", Operation: "create_service", Message: "db cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &noteService{
		notes:  notes,
		db:     db,
		logger: logger.With(slog.String("component", "note_service")),
	}, nil
}

func (s *noteService) CreateNote(ctx context.Context, userID uuid.UUID, title, content string) (*domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	note, err := domain.NewNote(userID, title, content)
	if err != nil {
		return nil, err
	}

	if err := s.notes.Create(ctx, note); err != nil {
		log.Error("failed to save note", slog.String("error", err.Error()), slog.String("user_id", userID.String()))
		return nil, wrapError("note", "create_note", "failed to save note", err)
	}
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list notes",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, wrapError("note", "list_notes", "failed to list notes", err)
	}
	if notes == nil {
		notes = []*domain.Note{}
	}
	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.Note, error) {
	return s.ownedNote(ctx, s.notes, userID, noteID, "get_note")
}

func (s *noteService) DeleteNote(ctx context.Context, userID uuid.UUID, noteID int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txNotes := s.notes.WithTx(tx)

		if _, err := s.ownedNote(ctx, txNotes, userID, noteID, "delete_note"); err != nil {
			return err
		}
		if err := txNotes.Delete(ctx, userID, noteID); err != nil {
			return wrapError("note", "delete_note", "failed to delete note", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("note deleted",
		slog.Int64("note_id", noteID),
		slog.String("user_id", userID.String()))
	return nil
}

// ownedNote loads a note through notes and checks that userID owns it.
func (s *noteService) ownedNote(
	ctx context.Context,
	notes store.NoteStore,
	userID uuid.UUID,
	noteID int64,
	operation string,
) (*domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	note, err := notes.GetByID(ctx, noteID)
	if err != nil {
		if !errors.Is(err, store.ErrNoteNotFound) {
			log.Error("failed to retrieve note", slog.String("error", err.Error()), slog.Int64("note_id", noteID))
		}
		return nil, wrapError("note", operation, "failed to retrieve note", err)
	}

	if !note.IsOwnedBy(userID) {
		log.Warn("note access denied",
			slog.Int64("note_id", noteID),
			slog.String("user_id", userID.String()))
		return nil, ErrNotOwned
	}
	return note, nil
}
