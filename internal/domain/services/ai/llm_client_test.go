package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

func newTestClient(t *testing.T) *LLMClient {
	t.Helper()
	return NewLLMClient(LLMConfig{Provider: "claude"}, logger.NewDefault())
}

func TestParseOpinionPlainJSON(t *testing.T) {
	c := newTestClient(t)

	op, err := c.parseOpinion(`{"risk_assessment":"danger","score":90,"reasoning":"phishing"}`)
	require.NoError(t, err)
	assert.Equal(t, models.RiskDanger, op.RiskAssessment)
	assert.Equal(t, 90, op.Score)
	assert.Equal(t, "phishing", op.Reasoning)
}

func TestParseOpinionMarkdownFences(t *testing.T) {
	c := newTestClient(t)

	op, err := c.parseOpinion("```json\n{\"risk_assessment\":\"caution\",\"score\":55,\"reasoning\":\"odd domain\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, models.RiskCaution, op.RiskAssessment)
	assert.Equal(t, 55, op.Score)
}

func TestParseOpinionSurroundingProse(t *testing.T) {
	c := newTestClient(t)

	op, err := c.parseOpinion(`Here is my assessment: {"risk_assessment":"safe","score":5,"reasoning":"ok"} Hope that helps.`)
	require.NoError(t, err)
	assert.Equal(t, models.RiskSafe, op.RiskAssessment)
}

func TestParseOpinionRejectsInvalid(t *testing.T) {
	c := newTestClient(t)

	_, err := c.parseOpinion(`{"risk_assessment":"emergency","score":50}`)
	assert.Error(t, err)

	_, err = c.parseOpinion(`{"risk_assessment":"safe","score":150}`)
	assert.Error(t, err)

	_, err = c.parseOpinion("no json here")
	assert.Error(t, err)
}

func TestNewLLMClientDefaults(t *testing.T) {
	c := NewLLMClient(LLMConfig{Provider: "claude"}, logger.NewDefault())
	assert.Equal(t, "claude-3-5-sonnet-20241022", c.config.Model)
	assert.NotZero(t, c.config.Timeout)
	assert.NotZero(t, c.config.MaxTokens)

	c = NewLLMClient(LLMConfig{Provider: "openai"}, logger.NewDefault())
	assert.Equal(t, "gpt-4-turbo", c.config.Model)
}
