package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

func newTestURLClassifier(t *testing.T) (*URLClassifier, *ReferenceDatabase, *History) {
	t.Helper()
	log := logger.NewDefault()
	refdb := NewReferenceDatabase(log)
	history := NewHistory()
	return NewURLClassifier(refdb, nil, history, log), refdb, history
}

func TestURLClassifyKnownDangerousDomain(t *testing.T) {
	c, _, _ := newTestURLClassifier(t)

	v := c.Classify(context.Background(), "http://paypal-secure-login.com/signin")
	require.NotNil(t, v)

	assert.Equal(t, models.RiskDanger, v.RiskLevel)
	assert.Equal(t, 95, v.RiskScore)
	assert.Contains(t, v.Warnings, "known scam site, stop immediately")
}

func TestURLClassifySafe(t *testing.T) {
	c, _, _ := newTestURLClassifier(t)

	v := c.Classify(context.Background(), "https://example.com")
	require.NotNil(t, v)

	assert.Equal(t, models.RiskSafe, v.RiskLevel)
	assert.Equal(t, 10, v.RiskScore)
	assert.Empty(t, v.Warnings)
	assert.Contains(t, v.Recommendations, "no issues detected")
}

func TestURLClassifyMalformed(t *testing.T) {
	c, _, history := newTestURLClassifier(t)

	v := c.Classify(context.Background(), "not a url ::")
	require.NotNil(t, v)

	assert.Equal(t, models.RiskError, v.RiskLevel)
	assert.Equal(t, 0, v.RiskScore)
	assert.Contains(t, v.Warnings, "invalid URL")
	assert.Equal(t, 1, history.Len())
}

func TestURLClassifyPlainHTTP(t *testing.T) {
	c, _, _ := newTestURLClassifier(t)

	v := c.Classify(context.Background(), "http://example.com/login")
	assert.Equal(t, models.RiskCaution, v.RiskLevel)
	assert.Equal(t, 40, v.RiskScore)
	assert.Contains(t, v.Warnings, "not encrypted (no HTTPS)")
}

func TestURLClassifyDangerousPattern(t *testing.T) {
	c, _, _ := newTestURLClassifier(t)

	v := c.Classify(context.Background(), "https://203.0.113.10/secure")
	assert.Equal(t, models.RiskCaution, v.RiskLevel)
	// pattern hit (60) outranks the missing-HTTPS floor
	assert.Equal(t, 60, v.RiskScore)
	assert.Contains(t, v.Warnings, "suspicious URL pattern")
}

func TestURLClassifyBareDomainMatchesPattern(t *testing.T) {
	c, _, _ := newTestURLClassifier(t)

	// no scheme: parsing auto-completes http:// so the free-TLD pattern
	// still fires
	v := c.Classify(context.Background(), "phishing-site.tk")
	assert.Equal(t, models.RiskCaution, v.RiskLevel)
	assert.Equal(t, 60, v.RiskScore)
}

func TestURLClassifyReportedDomain(t *testing.T) {
	c, refdb, _ := newTestURLClassifier(t)

	refdb.ReportDomain("sketchy-shop.example")
	v := c.Classify(context.Background(), "https://sketchy-shop.example/cart")

	assert.Equal(t, models.RiskDanger, v.RiskLevel)
	assert.Equal(t, 95, v.RiskScore)
	assert.Contains(t, v.Warnings, "matches user-reported domain")
}

func TestURLClassifyShortenerWarnsOnly(t *testing.T) {
	c, _, _ := newTestURLClassifier(t)

	v := c.Classify(context.Background(), "https://bit.ly/3xyzabc")
	assert.Equal(t, models.RiskSafe, v.RiskLevel)
	assert.Equal(t, 10, v.RiskScore)
	assert.Contains(t, v.Warnings, "shortened URL, the real destination is hidden")
}

func TestURLClassifyRulesAccumulate(t *testing.T) {
	c, _, _ := newTestURLClassifier(t)

	// dangerous domain + no https: Danger 95 wins the merge, both warnings kept
	v := c.Classify(context.Background(), "http://amazon-verify.net/x")
	assert.Equal(t, models.RiskDanger, v.RiskLevel)
	assert.Equal(t, 95, v.RiskScore)
	assert.Contains(t, v.Warnings, "known scam site, stop immediately")
	assert.Contains(t, v.Warnings, "not encrypted (no HTTPS)")
}
