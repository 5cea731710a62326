package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/notequiz-api/internal/domain"
	"github.com/phrazzld/notequiz-api/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizService(t *testing.T) {
	userID := uuid.New()
	note := &domain.Note{
		ID:      3,
		UserID:  userID,
		Title:   "Geo Facts",
		Content: "Paris: capital of France. Berlin: capital of Germany.",
	}

	t.Run("plain", func(t *testing.T) {
		notes := &MockNoteService{}
		notes.On("GetNote", mock.Anything, userID, int64(3)).Return(note, nil)
		svc := NewQuizService(notes, quiz.NewGenerator(quiz.WithSeed(1)), nil)

		out, err := svc.GeneratePlain(context.Background(), userID, 3)
		require.NoError(t, err)
		assert.Equal(t,
			"Note: Geo Facts\n\nQ1: Paris: capital of France\nQ2: Berlin: capital of Germany\n",
			out)
	})

	t.Run("mcq", func(t *testing.T) {
		notes := &MockNoteService{}
		notes.On("GetNote", mock.Anything, userID, int64(3)).Return(note, nil)
		svc := NewQuizService(notes, nil, nil)

		set, err := svc.GenerateMCQ(context.Background(), userID, 3)
		require.NoError(t, err)
		assert.Equal(t, "Geo Facts", set.NoteTitle)
		require.Len(t, set.Items, 2)
		assert.Equal(t, "Paris", set.Items[0].CorrectAnswer())
		assert.Equal(t, "Berlin", set.Items[1].CorrectAnswer())
	})

	t.Run("note errors pass through", func(t *testing.T) {
		for _, want := range []error{ErrNotOwned, ErrNoteNotFound} {
			notes := &MockNoteService{}
			notes.On("GetNote", mock.Anything, userID, int64(3)).Return(nil, want)
			svc := NewQuizService(notes, nil, nil)

			_, err := svc.GeneratePlain(context.Background(), userID, 3)
			assert.ErrorIs(t, err, want)
			_, err = svc.GenerateMCQ(context.Background(), userID, 3)
			assert.ErrorIs(t, err, want)
		}
	})
}
