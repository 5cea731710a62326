package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/notequiz-api/internal/domain"
	"github.com/phrazzld/notequiz-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockNoteStore is a testify mock of store.NoteStore. WithTx returns the
// mock itself so expectations hold inside transactions.
type MockNoteStore struct {
	mock.Mock
}

func (m *MockNoteStore) Create(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteStore) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	args := m.Called(ctx, id)
	note, _ := args.Get(0).(*domain.Note)
	return note, args.Error(1)
}

func (m *MockNoteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	args := m.Called(ctx, userID)
	notes, _ := args.Get(0).([]*domain.Note)
	return notes, args.Error(1)
}

func (m *MockNoteStore) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockNoteStore) WithTx(tx *sql.Tx) store.NoteStore {
	return m
}

// MockUserStore is a testify mock of store.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockPasswordVerifier is a testify mock of auth.PasswordVerifier.
type MockPasswordVerifier struct {
	mock.Mock
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// MockNoteService is a testify mock of NoteService.
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) CreateNote(ctx context.Context, userID uuid.UUID, title, content string) (*domain.Note, error) {
	args := m.Called(ctx, userID, title, content)
	note, _ := args.Get(0).(*domain.Note)
	return note, args.Error(1)
}

func (m *MockNoteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	args := m.Called(ctx, userID)
	notes, _ := args.Get(0).([]*domain.Note)
	return notes, args.Error(1)
}

func (m *MockNoteService) GetNote(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.Note, error) {
	args := m.Called(ctx, userID, noteID)
	note, _ := args.Get(0).(*domain.Note)
	return note, args.Error(1)
}

func (m *MockNoteService) DeleteNote(ctx context.Context, userID uuid.UUID, noteID int64) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}
