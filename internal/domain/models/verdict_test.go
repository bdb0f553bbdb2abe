package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelWorse(t *testing.T) {
	assert.Equal(t, RiskCaution, RiskSafe.Worse(RiskCaution))
	assert.Equal(t, RiskDanger, RiskDanger.Worse(RiskCaution))
	assert.Equal(t, RiskEmergency, RiskEmergency.Worse(RiskDanger))
	assert.Equal(t, RiskSafe, RiskSafe.Worse(RiskError))
}

func TestVerdictRaiseIsMonotonic(t *testing.T) {
	v := NewVerdict()
	assert.Equal(t, RiskSafe, v.RiskLevel)
	assert.Equal(t, 10, v.RiskScore)

	v.Raise(RiskDanger, 95)
	assert.Equal(t, RiskDanger, v.RiskLevel)
	assert.Equal(t, 95, v.RiskScore)

	// a weaker rule firing afterwards changes nothing
	v.Raise(RiskCaution, 40)
	assert.Equal(t, RiskDanger, v.RiskLevel)
	assert.Equal(t, 95, v.RiskScore)

	// same level with a lower score keeps the higher score
	v.Raise(RiskDanger, 60)
	assert.Equal(t, 95, v.RiskScore)
}

func TestVerdictTerminalStates(t *testing.T) {
	v := NewVerdict()
	v.RiskLevel = RiskEmergency
	v.RiskScore = 0

	v.Raise(RiskDanger, 99)
	assert.Equal(t, RiskEmergency, v.RiskLevel)
	assert.Equal(t, 0, v.RiskScore)

	v.Boost(20)
	assert.Equal(t, 0, v.RiskScore)

	e := ErrorVerdict("bad input")
	e.Raise(RiskDanger, 99)
	assert.Equal(t, RiskError, e.RiskLevel)
	assert.Equal(t, 0, e.RiskScore)
}

func TestVerdictBoostCapped(t *testing.T) {
	v := NewVerdict()
	v.Raise(RiskDanger, 90)
	v.Boost(20)
	assert.Equal(t, 100, v.RiskScore)

	v.Boost(50)
	assert.Equal(t, 100, v.RiskScore)
}

func TestAIOpinionValidate(t *testing.T) {
	valid := &AIOpinion{RiskAssessment: RiskCaution, Score: 55}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&AIOpinion{RiskAssessment: RiskEmergency, Score: 10}).Validate())
	assert.Error(t, (&AIOpinion{RiskAssessment: "bogus", Score: 10}).Validate())
	assert.Error(t, (&AIOpinion{RiskAssessment: RiskSafe, Score: -1}).Validate())
	assert.Error(t, (&AIOpinion{RiskAssessment: RiskSafe, Score: 101}).Validate())
}
