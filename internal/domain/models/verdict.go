package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel is the coarse risk category assigned to a checked artifact.
// Safe, Caution and Danger form an ordered scale; Emergency and Error are
// terminal states outside it (Emergency for official emergency numbers,
// Error for input that could not be evaluated).
type RiskLevel string

const (
	RiskSafe      RiskLevel = "safe"
	RiskCaution   RiskLevel = "caution"
	RiskDanger    RiskLevel = "danger"
	RiskEmergency RiskLevel = "emergency"
	RiskError     RiskLevel = "error"
)

// riskRank orders levels for worse-wins merging. Emergency outranks
// everything so an emergency-number verdict is never downgraded.
var riskRank = map[RiskLevel]int{
	RiskError:     -1,
	RiskSafe:      0,
	RiskCaution:   1,
	RiskDanger:    2,
	RiskEmergency: 3,
}

// Rank returns the severity rank of the level. Unknown levels rank as Safe.
func (l RiskLevel) Rank() int {
	if r, ok := riskRank[l]; ok {
		return r
	}
	return 0
}

// Worse returns the more severe of the two levels.
func (l RiskLevel) Worse(other RiskLevel) RiskLevel {
	if other.Rank() > l.Rank() {
		return other
	}
	return l
}

// Valid reports whether the level is one of the known values.
func (l RiskLevel) Valid() bool {
	_, ok := riskRank[l]
	return ok
}

// Verdict is the structured output of a classification.
type Verdict struct {
	ID              uuid.UUID  `json:"id"`
	RiskLevel       RiskLevel  `json:"risk_level"`
	RiskScore       int        `json:"risk_score"` // 0-100
	Warnings        []string   `json:"warnings"`
	Details         []string   `json:"details"`
	Recommendations []string   `json:"recommendations"`
	AIOpinion       *AIOpinion `json:"ai_opinion,omitempty"`
	CheckedAt       time.Time  `json:"checked_at"`
}

// NewVerdict returns a fresh Safe verdict at the baseline score.
func NewVerdict() *Verdict {
	return &Verdict{
		ID:              uuid.New(),
		RiskLevel:       RiskSafe,
		RiskScore:       10,
		Warnings:        []string{},
		Details:         []string{},
		Recommendations: []string{},
		CheckedAt:       time.Now(),
	}
}

// ErrorVerdict returns a terminal Error verdict with the given warning.
func ErrorVerdict(warning string) *Verdict {
	v := NewVerdict()
	v.RiskLevel = RiskError
	v.RiskScore = 0
	v.Warnings = append(v.Warnings, warning)
	return v
}

// Raise escalates the verdict to at least the given level and score.
// Levels and scores only ever go up (max-merge); simultaneously firing
// rules never double-count. Emergency and Error verdicts are terminal
// and are left untouched.
func (v *Verdict) Raise(level RiskLevel, score int) {
	if v.RiskLevel == RiskEmergency || v.RiskLevel == RiskError {
		return
	}
	v.RiskLevel = v.RiskLevel.Worse(level)
	if score > v.RiskScore {
		v.RiskScore = score
	}
}

// Boost adds to the score without touching the level, capped at 100.
func (v *Verdict) Boost(delta int) {
	if v.RiskLevel == RiskEmergency || v.RiskLevel == RiskError {
		return
	}
	v.RiskScore += delta
	if v.RiskScore > 100 {
		v.RiskScore = 100
	}
}

// Warn appends a warning.
func (v *Verdict) Warn(msg string) {
	v.Warnings = append(v.Warnings, msg)
}

// Detail appends a detail line.
func (v *Verdict) Detail(msg string) {
	v.Details = append(v.Details, msg)
}

// Recommend appends a recommendation.
func (v *Verdict) Recommend(msg string) {
	v.Recommendations = append(v.Recommendations, msg)
}
