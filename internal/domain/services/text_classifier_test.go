package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

func newTestTextClassifier(t *testing.T) (*TextClassifier, *History) {
	t.Helper()
	log := logger.NewDefault()
	refdb := NewReferenceDatabase(log)
	history := NewHistory()
	urls := NewURLClassifier(refdb, nil, history, log)
	return NewTextClassifier(refdb, urls, history, log), history
}

func TestTextClassifyClean(t *testing.T) {
	c, _ := newTestTextClassifier(t)

	v := c.Classify(context.Background(), "Lunch at noon? The usual place.")
	require.NotNil(t, v)

	assert.Equal(t, models.RiskSafe, v.RiskLevel)
	assert.Equal(t, 10, v.RiskScore)
	assert.Empty(t, v.Warnings)
}

func TestTextClassifyKeywordsOnly(t *testing.T) {
	c, _ := newTestTextClassifier(t)

	v := c.Classify(context.Background(), "Please verify account details for your security warning.")
	assert.Equal(t, models.RiskCaution, v.RiskLevel)
	assert.Equal(t, 50, v.RiskScore)
	require.NotEmpty(t, v.Warnings)
	assert.Contains(t, v.Warnings[0], "suspicious keywords detected")
	assert.Contains(t, v.Warnings[0], "verify account")
}

func TestTextClassifyDangerousURL(t *testing.T) {
	c, _ := newTestTextClassifier(t)

	v := c.Classify(context.Background(), "Invoice attached, see http://paypal-secure-login.com/pay")
	assert.Equal(t, models.RiskDanger, v.RiskLevel)
	assert.Equal(t, 90, v.RiskScore)
	assert.Contains(t, v.Warnings, "1 dangerous URL(s) detected")
}

func TestTextClassifyKeywordPlusPatternURLEscalates(t *testing.T) {
	c, _ := newTestTextClassifier(t)

	// the URL alone only matches a suspicious pattern (Caution), but paired
	// with phishing wording the combination is treated as Danger
	v := c.Classify(context.Background(),
		"【Apple ID】本人確認が必要です。今すぐ http://apple.login-check.xyz へ")
	assert.Equal(t, models.RiskDanger, v.RiskLevel)
	assert.Contains(t, v.Warnings, "suspicious keywords combined with a phishing-pattern URL")
}

func TestTextClassifyCautionURL(t *testing.T) {
	c, _ := newTestTextClassifier(t)

	v := c.Classify(context.Background(), "Check out http://example.com/offer")
	assert.Equal(t, models.RiskCaution, v.RiskLevel)
	assert.Equal(t, 60, v.RiskScore)
	assert.Contains(t, v.Warnings, "1 suspicious URL(s) detected")
}

func TestTextClassifyUrgencyBoost(t *testing.T) {
	c, _ := newTestTextClassifier(t)

	v := c.Classify(context.Background(), "Your account is suspended, act right now!")
	// keywords put it at Caution 50, urgency adds 20 without changing level
	assert.Equal(t, models.RiskCaution, v.RiskLevel)
	assert.Equal(t, 70, v.RiskScore)
	assert.Contains(t, v.Warnings, "urgency language detected")
}

func TestTextClassifyBoostCapped(t *testing.T) {
	c, _ := newTestTextClassifier(t)

	v := c.Classify(context.Background(),
		"緊急!本人確認を今すぐ: http://paypal-secure-login.com/verify")
	assert.Equal(t, models.RiskDanger, v.RiskLevel)
	assert.LessOrEqual(t, v.RiskScore, 100)
}

func TestTextClassifyURLCapAndHistory(t *testing.T) {
	c, history := newTestTextClassifier(t)

	v := c.Classify(context.Background(),
		"links: http://a.example http://b.example http://c.example http://d.example http://e.example http://f.example")
	require.NotNil(t, v)
	assert.Contains(t, v.Details, "embedded URLs found: 6")

	// one text entry plus one per classified URL (capped at 5)
	assert.Equal(t, 6, history.Len())
}
