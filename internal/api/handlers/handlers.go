package handlers

import (
	"scamguard/internal/domain/services"
	"scamguard/internal/domain/services/ai"
	"scamguard/internal/infrastructure/cache"
	"scamguard/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health    *HealthHandler
	Phone     *PhoneHandler
	URL       *URLHandler
	Text      *TextHandler
	Report    *ReportHandler
	Reference *ReferenceHandler
	Quiz      *QuizHandler
	Stats     *StatsHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	RefDB   *services.ReferenceDatabase
	History *services.History
	Phone   *services.PhoneClassifier
	URL     *services.URLClassifier
	Text    *services.TextClassifier
	Quiz    *services.QuizEngine
	Merger  *ai.Merger
	Cache   *cache.RedisCache
	Logger  *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(deps.Cache, deps.Logger),
		Phone:     NewPhoneHandler(deps.Phone, deps.Merger, deps.Logger),
		URL:       NewURLHandler(deps.URL, deps.Merger, deps.Logger),
		Text:      NewTextHandler(deps.Text, deps.Merger, deps.Logger),
		Report:    NewReportHandler(deps.RefDB, deps.Logger),
		Reference: NewReferenceHandler(deps.RefDB, deps.Logger),
		Quiz:      NewQuizHandler(deps.Quiz, deps.Logger),
		Stats:     NewStatsHandler(deps.RefDB, deps.History, deps.Cache, deps.Logger),
	}
}
