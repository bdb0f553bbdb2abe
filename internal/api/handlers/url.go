package handlers

import (
	"encoding/json"
	"net/http"

	"scamguard/internal/domain/models"
	"scamguard/internal/domain/services"
	"scamguard/internal/domain/services/ai"
	"scamguard/pkg/logger"
)

// URLHandler handles URL classification endpoints
type URLHandler struct {
	classifier *services.URLClassifier
	merger     *ai.Merger
	logger     *logger.Logger
}

// NewURLHandler creates a new URL handler
func NewURLHandler(classifier *services.URLClassifier, merger *ai.Merger, log *logger.Logger) *URLHandler {
	return &URLHandler{
		classifier: classifier,
		merger:     merger,
		logger:     log.WithComponent("url-handler"),
	}
}

// Classify handles POST /api/v1/classify/url
func (h *URLHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req models.URLCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	verdict := h.classifier.Classify(r.Context(), req.URL)

	h.merger.Merge(r.Context(), verdict, ai.ClassifyRequest{
		Kind:    "url",
		Input:   req.URL,
		Summary: verdictSummary(verdict),
	})

	resp := models.URLCheckResponse{
		URL:     req.URL,
		Verdict: verdict,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
