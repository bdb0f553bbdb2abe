package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// textURLPattern extracts embedded http(s) and bare www links from free text.
var textURLPattern = regexp.MustCompile(`https?://[^\s<>"]+|www\.[^\s<>"]+`)

// urgencyPhrases pressure the reader into acting before thinking. The list
// is fixed; the Japanese entries mirror the English ones.
var urgencyPhrases = []string{
	"immediately", "right now", "within 24 hours", "urgent",
	"今すぐ", "直ちに", "24時間以内",
}

// maxEmbeddedURLs caps how many extracted URLs get the full URL-classifier
// treatment per message.
const maxEmbeddedURLs = 5

// TextClassifier scans free text for scam indicators and delegates embedded
// URLs to the URL classifier, aggregating the worst-case risk.
type TextClassifier struct {
	refdb   *ReferenceDatabase
	urls    *URLClassifier
	history *History
	logger  *logger.Logger
}

// NewTextClassifier creates a text classifier.
func NewTextClassifier(refdb *ReferenceDatabase, urls *URLClassifier, history *History, log *logger.Logger) *TextClassifier {
	return &TextClassifier{
		refdb:   refdb,
		urls:    urls,
		history: history,
		logger:  log.WithComponent("text-classifier"),
	}
}

// Classify scans the text (the caller concatenates subject and body) and
// returns an aggregated verdict.
func (c *TextClassifier) Classify(ctx context.Context, text string) *models.Verdict {
	v := models.NewVerdict()

	keywords := c.refdb.KeywordHits(text)
	if len(keywords) > 0 {
		shown := keywords
		if len(shown) > 5 {
			shown = shown[:5]
		}
		v.Raise(models.RiskCaution, 50)
		v.Warn("suspicious keywords detected: " + strings.Join(shown, ", "))
	}

	matches := textURLPattern.FindAllString(text, -1)
	if len(matches) > 0 {
		v.Detail(fmt.Sprintf("embedded URLs found: %d", len(matches)))
	}
	if len(matches) > maxEmbeddedURLs {
		matches = matches[:maxEmbeddedURLs]
	}

	dangerous := 0
	cautionary := 0
	patternHits := 0
	for _, m := range matches {
		sub := c.urls.Classify(ctx, m)
		switch sub.RiskLevel {
		case models.RiskDanger:
			dangerous++
		case models.RiskCaution:
			cautionary++
		}
		if c.refdb.MatchesDangerousPattern(fullURLString(m)) {
			patternHits++
		}
	}

	if dangerous > 0 {
		v.Raise(models.RiskDanger, 90)
		v.Warn(fmt.Sprintf("%d dangerous URL(s) detected", dangerous))
	} else if cautionary > 0 {
		v.Raise(models.RiskCaution, 60)
		v.Warn(fmt.Sprintf("%d suspicious URL(s) detected", cautionary))
	}

	// A phishing-pattern URL next to suspicious wording is the classic
	// credential-harvesting combination; neither signal alone proves it,
	// together they do.
	if len(keywords) > 0 && patternHits > 0 {
		v.Raise(models.RiskDanger, 90)
		v.Warn("suspicious keywords combined with a phishing-pattern URL")
	}

	if hasUrgencyLanguage(text) {
		v.Warn("urgency language detected")
		v.Boost(20)
	}

	if v.RiskLevel == models.RiskSafe {
		v.Recommend("no issues detected")
	}

	c.record(text, v)

	c.logger.Info().
		Int("keywords", len(keywords)).
		Int("urls", len(matches)).
		Str("risk_level", string(v.RiskLevel)).
		Int("risk_score", v.RiskScore).
		Msg("text classified")

	return v
}

func hasUrgencyLanguage(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range urgencyPhrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func (c *TextClassifier) record(input string, v *models.Verdict) {
	if c.history != nil {
		c.history.Record("text", truncate(input, 120), v)
	}
}
