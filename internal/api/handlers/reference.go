package handlers

import (
	"encoding/json"
	"net/http"

	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

// ReferenceHandler exposes a read-only view of the reference tables
type ReferenceHandler struct {
	refdb  *services.ReferenceDatabase
	logger *logger.Logger
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(refdb *services.ReferenceDatabase, log *logger.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		refdb:  refdb,
		logger: log.WithComponent("reference-handler"),
	}
}

// Get handles GET /api/v1/reference
func (h *ReferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.refdb.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}
