package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scamguard/internal/domain/models"
	"scamguard/internal/domain/services"
	"scamguard/pkg/logger"
)

// ReportHandler handles user report submission endpoints
type ReportHandler struct {
	refdb  *services.ReferenceDatabase
	logger *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(refdb *services.ReferenceDatabase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		refdb:  refdb,
		logger: log.WithComponent("report-handler"),
	}
}

// Domain handles POST /api/v1/report/domain
func (h *ReportHandler) Domain(w http.ResponseWriter, r *http.Request) {
	var req models.DomainReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	if domain == "" {
		http.Error(w, "Domain is required", http.StatusBadRequest)
		return
	}

	added := h.refdb.ReportDomain(domain)

	h.logger.Info().Str("domain", domain).Bool("added", added).Msg("domain reported")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.DomainReportResponse{Added: added})
}

// Phone handles POST /api/v1/report/phone
func (h *ReportHandler) Phone(w http.ResponseWriter, r *http.Request) {
	var req models.PhoneReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Number) == "" {
		http.Error(w, "Number is required", http.StatusBadRequest)
		return
	}

	c := h.refdb.ReportPhoneNumber(req.Number, req.Reason)

	h.logger.Info().Str("number", c.Number).Msg("phone number reported")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.PhoneReportResponse{
		Recorded: true,
		Case:     &c,
	})
}
