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

// PhoneHandler handles phone number classification endpoints
type PhoneHandler struct {
	classifier *services.PhoneClassifier
	merger     *ai.Merger
	logger     *logger.Logger
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(classifier *services.PhoneClassifier, merger *ai.Merger, log *logger.Logger) *PhoneHandler {
	return &PhoneHandler{
		classifier: classifier,
		merger:     merger,
		logger:     log.WithComponent("phone-handler"),
	}
}

// Classify handles POST /api/v1/classify/phone
func (h *PhoneHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req models.PhoneCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp := h.classifier.Classify(req.Number)

	h.merger.Merge(r.Context(), resp.Verdict, ai.ClassifyRequest{
		Kind:    "phone",
		Input:   resp.Normalized,
		Summary: verdictSummary(resp.Verdict),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// verdictSummary condenses a verdict's findings for the AI prompt.
func verdictSummary(v *models.Verdict) string {
	if v == nil {
		return ""
	}
	parts := append([]string{}, v.Warnings...)
	parts = append(parts, v.Details...)
	return strings.Join(parts, "; ")
}
