package handlers

import (
	"encoding/json"
	"net/http"

	"scamguard/internal/domain/services"
	"scamguard/internal/infrastructure/cache"
	"scamguard/pkg/logger"
)

// StatsHandler exposes reference table counters and recent check history
type StatsHandler struct {
	refdb   *services.ReferenceDatabase
	history *services.History
	cache   *cache.RedisCache
	logger  *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(refdb *services.ReferenceDatabase, history *services.History, c *cache.RedisCache, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		refdb:   refdb,
		history: history,
		cache:   c,
		logger:  log.WithComponent("stats-handler"),
	}
}

// StatsResponse is the body of GET /api/v1/stats
type StatsResponse struct {
	Reference    services.ReferenceStats `json:"reference"`
	ChecksTotal  int                     `json:"checks_total"`
	RecentChecks []services.HistoryEntry `json:"recent_checks"`
	CacheEnabled bool                    `json:"cache_enabled"`
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{
		Reference:    h.refdb.Stats(),
		ChecksTotal:  h.history.Len(),
		RecentChecks: h.history.Recent(20),
		CacheEnabled: h.cache != nil,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
