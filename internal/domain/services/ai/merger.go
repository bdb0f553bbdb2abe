package ai

import (
	"context"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// Classifier produces an independent risk opinion for a piece of content.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (*models.AIOpinion, error)
}

// Merger folds an AI second opinion into a rule-based verdict. The opinion
// can only raise the verdict, never lower it, and any failure to obtain one
// leaves the verdict untouched.
type Merger struct {
	classifier Classifier
	logger     *logger.Logger
}

// NewMerger creates a merger. A nil classifier disables AI opinions and
// makes Merge a no-op.
func NewMerger(classifier Classifier, log *logger.Logger) *Merger {
	return &Merger{
		classifier: classifier,
		logger:     log.WithComponent("ai-merger"),
	}
}

// Enabled reports whether a classifier is configured.
func (m *Merger) Enabled() bool {
	return m != nil && m.classifier != nil
}

// Merge requests an AI opinion for the given content and applies it to the
// verdict. Emergency and error verdicts are final and never consulted.
func (m *Merger) Merge(ctx context.Context, v *models.Verdict, req ClassifyRequest) {
	if !m.Enabled() || v == nil {
		return
	}
	if v.RiskLevel == models.RiskEmergency || v.RiskLevel == models.RiskError {
		return
	}

	req.Level = v.RiskLevel
	req.Score = v.RiskScore

	opinion, err := m.classifier.Classify(ctx, req)
	if err != nil {
		m.logger.Warn().Err(err).Str("kind", req.Kind).Msg("AI opinion unavailable, keeping rule-based verdict")
		return
	}
	if err := opinion.Validate(); err != nil {
		m.logger.Warn().Err(err).Str("kind", req.Kind).Msg("discarding invalid AI opinion")
		return
	}

	v.AIOpinion = opinion
	v.Raise(opinion.RiskAssessment, opinion.Score)
	if opinion.Reasoning != "" {
		v.Detail("AI assessment: " + opinion.Reasoning)
	}
}
