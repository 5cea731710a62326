package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/notequiz-api/internal/domain"
	"github.com/phrazzld/notequiz-api/internal/platform/logger"
	"github.com/phrazzld/notequiz-api/internal/quiz"
)

// QuizService derives study questions from a user's stored note.
type QuizService interface {
	// GeneratePlain returns the formatted plain prompts for the note.
	GeneratePlain(ctx context.Context, userID uuid.UUID, noteID int64) (string, error)

	// GenerateMCQ returns multiple-choice questions for the note.
	GenerateMCQ(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.MCQSet, error)
}

// QuestionGenerator is the part of quiz.Generator the service needs.
type QuestionGenerator interface {
	GeneratePlain(note *domain.Note) string
	GenerateMCQ(note *domain.Note) domain.MCQSet
}

var _ QuestionGenerator = (*quiz.Generator)(nil)

type quizService struct {
	notes     NoteService
	generator QuestionGenerator
	logger    *slog.Logger
}

// NewQuizService creates a QuizService that resolves notes through notes,
// so ownership rules match the note endpoints. A nil generator uses
// quiz.NewGenerator().
func NewQuizService(notes NoteService, generator QuestionGenerator, logger *slog.Logger) QuizService {
	if generator == nil {
		generator = quiz.NewGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &quizService{
		notes:     notes,
		generator: generator,
		logger:    logger.With(slog.String("component", "quiz_service")),
	}
}

func (s *quizService) GeneratePlain(ctx context.Context, userID uuid.UUID, noteID int64) (string, error) {
	note, err := s.notes.GetNote(ctx, userID, noteID)
	if err != nil {
		return "", err
	}

	out := s.generator.GeneratePlain(note)
	logger.FromContextOrDefault(ctx, s.logger).Debug("plain questions generated",
		slog.Int64("note_id", noteID),
		slog.Int("bytes", len(out)))
	return out, nil
}

func (s *quizService) GenerateMCQ(ctx context.Context, userID uuid.UUID, noteID int64) (*domain.MCQSet, error) {
	note, err := s.notes.GetNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	set := s.generator.GenerateMCQ(note)
	logger.FromContextOrDefault(ctx, s.logger).Debug("mcq questions generated",
		slog.Int64("note_id", noteID),
		slog.Int("count", len(set.Items)))
	return &set, nil
}
