package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNoteTitleLength bounds the title of a note, counted in characters.
const MaxNoteTitleLength = 200

// Common validation errors for Note
var (
	ErrEmptyNoteUserID  = errors.New("note user ID cannot be empty")
	ErrEmptyNoteTitle   = errors.New("note title cannot be empty")
	ErrNoteTitleTooLong = errors.New("note title must be at most 200 characters long")
	ErrEmptyNoteContent = errors.New("note content cannot be empty")
)

// Note is a titled block of free-form text owned by a user. Study
// questions are derived from Content on demand and never stored.
//
// ID is assigned by the store on creation; a zero ID means the note has
// not been persisted yet.
type Note struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a new, not yet persisted Note for the given user.
// Returns an error if validation fails.
func NewNote(userID uuid.UUID, title, content string) (*Note, error) {
	now := time.Now().UTC()
	note := &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := note.Validate(); err != nil {
		return nil, err
	}

	return note, nil
}

// Validate checks if the Note has valid data.
func (n *Note) Validate() error {
	if n.UserID == uuid.Nil {
		return ErrEmptyNoteUserID
	}

	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyNoteTitle
	}

	if utf8.RuneCountInString(n.Title) > MaxNoteTitleLength {
		return ErrNoteTitleTooLong
	}

	if strings.TrimSpace(n.Content) == "" {
		return ErrEmptyNoteContent
	}

	return nil
}

// IsOwnedBy reports whether the note belongs to the given user.
func (n *Note) IsOwnedBy(userID uuid.UUID) bool {
	return n.UserID == userID
}
