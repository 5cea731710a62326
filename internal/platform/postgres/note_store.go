package postgres

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

// PostgresNoteStore implements store.NoteStore on PostgreSQL.
type PostgresNoteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.NoteStore = (*PostgresNoteStore)(nil)

// NewPostgresNoteStore creates a note store on db.
func NewPostgresNoteStore(db store.DBTX, logger *slog.Logger) *PostgresNoteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresNoteStore{
		db:     db,
		logger: logger.With(slog.String("component", "note_store")),
	}
}

// WithTx implements store.NoteStore.WithTx.
func (s *PostgresNoteStore) WithTx(tx *sql.Tx) store.NoteStore {
	return &PostgresNoteStore{db: tx, logger: s.logger}
}

// Create implements store.NoteStore.Create.
// A user ID with no matching user yields store.ErrInvalidEntity.
func (s *PostgresNoteStore) Create(ctx context.Context, note *domain.Note) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := note.Validate(); err != nil {
		log.Warn("note validation failed during create", slog.String("error", err.Error()))
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO notes (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, note.UserID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt).Scan(&note.ID)
	if err != nil {
		log.Error("failed to insert note",
			slog.String("error", err.Error()),
			slog.String("user_id", note.UserID.String()))
		return store.NewStoreError("note", "create", "insert failed", MapError(err))
	}

	log.Info("note created",
		slog.Int64("note_id", note.ID),
		slog.String("user_id", note.UserID.String()))
	return nil
}

// GetByID implements store.NoteStore.GetByID.
func (s *PostgresNoteStore) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var n domain.Note
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1
	`, id).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("note not found", slog.Int64("note_id", id))
			return nil, store.ErrNoteNotFound
		}
		log.Error("failed to get note", slog.Int64("note_id", id), slog.String("error", err.Error()))
		return nil, store.NewStoreError("note", "get", "query failed", MapError(err))
	}
	return &n, nil
}

// ListByUser implements store.NoteStore.ListByUser.
func (s *PostgresNoteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		log.Error("failed to list notes", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return nil, store.NewStoreError("note", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, store.NewStoreError("note", "list", "scan failed", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("note", "list", "row iteration failed", err)
	}

	log.Debug("notes listed", slog.String("user_id", userID.String()), slog.Int("count", len(notes)))
	return notes, nil
}

// Delete implements store.NoteStore.Delete.
func (s *PostgresNoteStore) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete note", slog.Int64("note_id", id), slog.String("error", err.Error()))
		return store.NewStoreError("note", "delete", "delete failed", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrNoteNotFound); err != nil {
		return err
	}

	log.Info("note deleted", slog.Int64("note_id", id), slog.String("user_id", userID.String()))
	return nil
}
