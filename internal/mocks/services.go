package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/notequiz-api/internal/domain"
	"github.com/phrazzld/notequiz-api/internal/service"
)

// MockUserService implements service.UserService for testing.
type MockUserService struct {
	RegisterFn     func(ctx context.Context, username, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, password)
	}
	return &domain.User{ID: uuid.New(), Username: username}, nil
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, username, password)
	}
	return &domain.User{ID: uuid.New(), Username: username}, nil
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return &domain.User{ID: userID}, nil
}

// MockNoteService implements service.NoteService for testing.
type MockNoteService struct {
	CreateNoteFn func(ctx context.Context, userID uuid.UUID, title, content string) (*domain.Note, error)
	ListNotesFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)
	GetNoteFn    func(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.Note, error)
	DeleteNoteFn func(ctx context.Context, userID uuid.UUID, noteID int64) error
}

var _ service.NoteService = (*MockNoteService)(nil)

func (m *MockNoteService) CreateNote(
	ctx context.Context,
	userID uuid.UUID,
	title, content string,
) (*domain.Note, error) {
	if m.CreateNoteFn != nil {
		return m.CreateNoteFn(ctx, userID, title, content)
	}
	return &domain.Note{ID: 1, UserID: userID, Title: title, Content: content}, nil
}

func (m *MockNoteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	if m.ListNotesFn != nil {
		return m.ListNotesFn(ctx, userID)
	}
	return []*domain.Note{}, nil
}

func (m *MockNoteService) GetNote(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.Note, error) {
	if m.GetNoteFn != nil {
		return m.GetNoteFn(ctx, userID, noteID)
	}
	return nil, service.ErrNoteNotFound
}

func (m *MockNoteService) DeleteNote(ctx context.Context, userID uuid.UUID, noteID int64) error {
	if m.DeleteNoteFn != nil {
		return m.DeleteNoteFn(ctx, userID, noteID)
	}
	return nil
}

// MockQuizService implements service.QuizService for testing.
type MockQuizService struct {
	GeneratePlainFn func(ctx context.Context, userID uuid.UUID, noteID int64) (string, error)
	GenerateMCQFn   func(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.MCQSet, error)
}

var _ service.QuizService = (*MockQuizService)(nil)

func (m *MockQuizService) GeneratePlain(ctx context.Context, userID uuid.UUID, noteID int64) (string, error) {
	if m.GeneratePlainFn != nil {
		return m.GeneratePlainFn(ctx, userID, noteID)
	}
	return "", nil
}

func (m *MockQuizService) GenerateMCQ(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.MCQSet, error) {
	if m.GenerateMCQFn != nil {
		return m.GenerateMCQFn(ctx, userID, noteID)
	}
	return &domain.MCQSet{Items: []domain.MCQItem{}}, nil
}
