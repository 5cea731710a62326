package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/notequiz-api/internal/api/shared"
	"github.com/phrazzld/notequiz-api/internal/domain"
	"github.com/phrazzld/notequiz-api/internal/service"
)

// QuestionHandler derives study questions from a stored note.
type QuestionHandler struct {
	quiz   service.QuizService
	logger *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(quiz service.QuizService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionHandler{quiz: quiz, logger: logger.With(slog.String("handler", "question"))}
}

// GenerateQuestions handles POST /notes/{id}/questions.
func (h *QuestionHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req QuestionsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mode, err := domain.ParseQuestionMode(req.Mode)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	switch mode {
	case domain.QuestionModeMCQ:
		set, err := h.quiz.GenerateMCQ(r.Context(), userID, noteID)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to generate questions")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, set)
	default:
		text, err := h.quiz.GeneratePlain(r.Context(), userID, noteID)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to generate questions")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, PlainQuestionsResponse{Questions: text})
	}
}
