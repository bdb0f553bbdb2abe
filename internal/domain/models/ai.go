package models

import "fmt"

// AIOpinion is the structured second opinion produced by the external LLM
// classifier. It is untrusted output: Validate runs before any merge, and a
// validation failure is treated exactly like a service error.
type AIOpinion struct {
	RiskAssessment RiskLevel `json:"risk_assessment"` // safe, caution or danger
	Score          int       `json:"score"`           // 0-100
	Reasoning      string    `json:"reasoning"`
	Model          string    `json:"model,omitempty"`
	Note           string    `json:"note,omitempty"`
}

// Validate checks the opinion against the expected schema.
func (o *AIOpinion) Validate() error {
	switch o.RiskAssessment {
	case RiskSafe, RiskCaution, RiskDanger:
	default:
		return fmt.Errorf("invalid risk assessment %q", o.RiskAssessment)
	}
	if o.Score < 0 || o.Score > 100 {
		return fmt.Errorf("score %d out of range", o.Score)
	}
	return nil
}
