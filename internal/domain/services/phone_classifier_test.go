package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

func newTestPhoneClassifier(t *testing.T) (*PhoneClassifier, *ReferenceDatabase, *History) {
	t.Helper()
	log := logger.NewDefault()
	refdb := NewReferenceDatabase(log)
	history := NewHistory()
	return NewPhoneClassifier(refdb, history, log), refdb, history
}

func TestPhoneClassifyEmergency(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	for _, number := range []string{"110", "119", "118"} {
		resp := c.Classify(number)
		require.NotNil(t, resp.Verdict, number)

		assert.Equal(t, models.RiskEmergency, resp.Verdict.RiskLevel, number)
		assert.Equal(t, 0, resp.Verdict.RiskScore, number)
		assert.Empty(t, resp.Verdict.Warnings, number)
		assert.Equal(t, models.CategoryPublicAuthority, resp.Caller.Category)
		assert.Equal(t, models.ConfidenceCertain, resp.Caller.Confidence)
	}
}

func TestPhoneClassifyEmptyInput(t *testing.T) {
	c, _, history := newTestPhoneClassifier(t)

	resp := c.Classify("   ")
	require.NotNil(t, resp.Verdict)

	assert.Equal(t, models.RiskError, resp.Verdict.RiskLevel)
	assert.Equal(t, 0, resp.Verdict.RiskScore)
	assert.NotEmpty(t, resp.Verdict.Warnings)
	assert.Nil(t, resp.Caller)
	assert.Equal(t, 1, history.Len())
}

func TestPhoneClassifyKnownScamNumber(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	resp := c.Classify("050-1111-2222")
	require.NotNil(t, resp.Verdict)

	assert.Equal(t, models.RiskDanger, resp.Verdict.RiskLevel)
	assert.Equal(t, 95, resp.Verdict.RiskScore)
	assert.Contains(t, resp.Verdict.Warnings, "known scam phone number")
	assert.Contains(t, resp.Verdict.Recommendations, "do not respond to calls or messages from this number")
	// 050 also resolves as an anonymous-friendly IP phone
	assert.Equal(t, "IP phone", resp.Caller.Type)
}

func TestPhoneClassifyReportedNumberEscalates(t *testing.T) {
	c, refdb, _ := newTestPhoneClassifier(t)

	refdb.ReportPhoneNumber("0312345679", "impersonated a tax office")
	resp := c.Classify("03-1234-5679")
	require.NotNil(t, resp.Verdict)

	// reported numbers join the known-scam set, so Danger wins the merge
	assert.Equal(t, models.RiskDanger, resp.Verdict.RiskLevel)
	assert.Equal(t, 95, resp.Verdict.RiskScore)
	assert.Contains(t, resp.Verdict.Warnings, "reported by users 1 time(s)")
}

func TestPhoneClassifyInternational(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	resp := c.Classify("+44 20 7946 0958")
	require.NotNil(t, resp.Verdict)

	assert.Equal(t, models.CategoryInternational, resp.Caller.Category)
	assert.Equal(t, models.RiskCaution, resp.Verdict.RiskLevel)
	assert.Equal(t, 50, resp.Verdict.RiskScore)
	assert.Contains(t, resp.Verdict.Warnings, "international call, be cautious of unsolicited calls")
}

func TestPhoneClassify010ResolvesInternational(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	// 010 starts with 0 but must not fall through to the landline rule
	resp := c.Classify("010-44-20-7946-0958")
	assert.Equal(t, models.CategoryInternational, resp.Caller.Category)
}

func TestPhoneClassifySuspiciousPrefix(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	resp := c.Classify("070-2222-3333")
	require.NotNil(t, resp.Verdict)

	assert.Equal(t, models.RiskCaution, resp.Verdict.RiskLevel)
	assert.Equal(t, 40, resp.Verdict.RiskScore)
	assert.Contains(t, resp.Verdict.Warnings, "number starts with suspicious prefix 070")
	// 070 is mobile in the caller taxonomy
	assert.Equal(t, "Mobile phone", resp.Caller.Type)
}

func TestPhoneClassifySafeLandline(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	resp := c.Classify("06-6208-8181")
	require.NotNil(t, resp.Verdict)

	assert.Equal(t, models.RiskSafe, resp.Verdict.RiskLevel)
	assert.Equal(t, 10, resp.Verdict.RiskScore)
	assert.Empty(t, resp.Verdict.Warnings)
	assert.Contains(t, resp.Verdict.Recommendations, "no issues detected")
	assert.Equal(t, "Landline", resp.Caller.Type)
	assert.Equal(t, models.ConfidenceMedium, resp.Caller.Confidence)
	assert.Contains(t, resp.Caller.Details, "area: Osaka")
}

func TestPhoneClassifyGovernmentAndBank(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	gov := c.Classify("03-3581-0000")
	assert.Equal(t, models.CategoryPublicAuthority, gov.Caller.Category)
	assert.Equal(t, models.RiskSafe, gov.Verdict.RiskLevel)

	bank := c.Classify("0120-332-000")
	assert.Equal(t, models.CategoryBank, bank.Caller.Category)
	assert.Contains(t, bank.Caller.Details, "verify authenticity before sharing any information")
}

func TestPhoneClassifyPremiumRatePattern(t *testing.T) {
	c, _, _ := newTestPhoneClassifier(t)

	resp := c.Classify("0990-123-456")
	assert.Equal(t, models.RiskCaution, resp.Verdict.RiskLevel)
	assert.Equal(t, 30, resp.Verdict.RiskScore)
	assert.Contains(t, resp.Verdict.Warnings, "number matches a suspicious dialing pattern")
}

func TestPhoneClassifyRecordsHistory(t *testing.T) {
	c, _, history := newTestPhoneClassifier(t)

	c.Classify("090-1111-1111")
	c.Classify("110")

	require.Equal(t, 2, history.Len())
	entries := history.Recent(2)
	assert.Equal(t, "phone", entries[0].Kind)
	assert.Equal(t, models.RiskEmergency, entries[1].RiskLevel)
}
