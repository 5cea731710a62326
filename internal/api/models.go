package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/notequiz-api/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
// Finer-grained rules are enforced by domain.User.Validate.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    string    `json:"expires_at"` // RFC 3339
}

// CreateNoteRequest defines the payload for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// NoteResponse is the wire form of a note.
type NoteResponse struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionsRequest selects the question mode for a note.
type QuestionsRequest struct {
	Mode string `json:"mode" validate:"required"`
}

// PlainQuestionsResponse carries the formatted plain-mode prompt list.
type PlainQuestionsResponse struct {
	Questions string `json:"questions"`
}

func noteToResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func notesToResponse(notes []*domain.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteToResponse(n))
	}
	return out
}

func authResponse(userID uuid.UUID, access, refresh string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		UserID:       userID,
		Token:        access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt.UTC().Format(time.RFC3339),
	}
}
