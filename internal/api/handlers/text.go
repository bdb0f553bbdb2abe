package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scamguard/internal/domain/models"
	"scamguard/internal/domain/services"
	"scamguard/internal/domain/services/ai"
	"scamguard/pkg/logger"
)

// TextHandler handles message text classification endpoints
type TextHandler struct {
	classifier *services.TextClassifier
	merger     *ai.Merger
	logger     *logger.Logger
}

// NewTextHandler creates a new text handler
func NewTextHandler(classifier *services.TextClassifier, merger *ai.Merger, log *logger.Logger) *TextHandler {
	return &TextHandler{
		classifier: classifier,
		merger:     merger,
		logger:     log.WithComponent("text-handler"),
	}
}

// Classify handles POST /api/v1/classify/text
func (h *TextHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req models.TextCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	text := req.Body
	if req.Subject != "" {
		text = strings.TrimSpace(req.Subject + "\n" + req.Body)
	}

	verdict := h.classifier.Classify(r.Context(), text)

	h.merger.Merge(r.Context(), verdict, ai.ClassifyRequest{
		Kind:    "text",
		Input:   text,
		Summary: verdictSummary(verdict),
	})

	resp := models.TextCheckResponse{Verdict: verdict}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
