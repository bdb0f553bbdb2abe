package handlers

import (
	"encoding/json"
	"net/http"

	"scamguard/internal/domain/models"
	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

// QuizHandler handles phishing-awareness quiz endpoints
type QuizHandler struct {
	quiz   *services.QuizEngine
	logger *logger.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz *services.QuizEngine, log *logger.Logger) *QuizHandler {
	return &QuizHandler{
		quiz:   quiz,
		logger: log.WithComponent("quiz-handler"),
	}
}

// Session handles GET /api/v1/quiz - returns a shuffled question set
func (h *QuizHandler) Session(w http.ResponseWriter, r *http.Request) {
	session := h.quiz.Session()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// Score handles POST /api/v1/quiz/score - grades submitted answers
func (h *QuizHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req models.QuizScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Order) != len(req.Answers) {
		http.Error(w, "Order and answers must have the same length", http.StatusBadRequest)
		return
	}

	result := h.quiz.Score(req.Order, req.Answers)

	h.logger.Info().Int("score", result.Score).Int("total", result.Total).Msg("quiz scored")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
