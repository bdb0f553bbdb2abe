package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"scamguard/internal/domain/models"
	"scamguard/internal/infrastructure/cache"
	"scamguard/pkg/logger"
)

// urlShorteners hide the real destination of a link. Hitting one is worth a
// warning but no score change on its own.
var urlShorteners = map[string]bool{
	"bit.ly":      true,
	"tinyurl.com": true,
	"t.co":        true,
	"goo.gl":      true,
}

// URLClassifier resolves a risk verdict for a URL against the reference
// database. Verdicts are cached in Redis when a cache is configured; the
// classifier is fully functional without one.
type URLClassifier struct {
	refdb   *ReferenceDatabase
	cache   *cache.RedisCache
	history *History
	logger  *logger.Logger
}

// NewURLClassifier creates a URL classifier. cache may be nil.
func NewURLClassifier(refdb *ReferenceDatabase, c *cache.RedisCache, history *History, log *logger.Logger) *URLClassifier {
	return &URLClassifier{
		refdb:   refdb,
		cache:   c,
		history: history,
		logger:  log.WithComponent("url-classifier"),
	}
}

// Classify evaluates a raw URL string. Parse failures yield an Error-level
// verdict rather than an error: classification never unwinds for malformed
// input.
func (c *URLClassifier) Classify(ctx context.Context, rawURL string) *models.Verdict {
	parsed, err := ParseURL(rawURL)
	if err != nil {
		v := models.ErrorVerdict("invalid URL")
		c.record(rawURL, v)
		return v
	}

	if cached := c.cachedVerdict(ctx, rawURL); cached != nil {
		c.record(rawURL, cached)
		return cached
	}

	v := models.NewVerdict()
	v.Detail("host: " + parsed.Host)
	v.Detail("scheme: " + parsed.Scheme)
	v.Detail("path: " + parsed.Path)

	// Rules are independent, not short-circuiting: each raises the verdict
	// to at least its floor via max-merge.
	if hits := c.refdb.MatchingDangerousDomains(parsed.Host); len(hits) > 0 {
		v.Raise(models.RiskDanger, 95)
		v.Warn("known scam site, stop immediately")
	}

	if c.refdb.IsReportedDomain(parsed.Host) {
		v.Raise(models.RiskCaution, 70)
		v.Warn("matches user-reported domain")
	}

	if c.refdb.MatchesDangerousPattern(fullURLString(rawURL)) {
		v.Raise(models.RiskCaution, 60)
		v.Warn("suspicious URL pattern")
	}

	if parsed.Scheme != "https" {
		v.Raise(models.RiskCaution, 40)
		v.Warn("not encrypted (no HTTPS)")
	}

	if isShortener(parsed.Host) {
		v.Warn("shortened URL, the real destination is hidden")
	}

	if v.RiskLevel == models.RiskSafe {
		v.Recommend("no issues detected")
	}

	c.cacheVerdict(ctx, rawURL, v)
	c.record(rawURL, v)

	c.logger.Info().
		Str("host", parsed.Host).
		Str("risk_level", string(v.RiskLevel)).
		Int("risk_score", v.RiskScore).
		Msg("url classified")

	return v
}

// fullURLString normalizes the raw input the same way ParseURL does before
// the pattern regexes run, so bare domains still match scheme-anchored
// patterns.
func fullURLString(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	return raw
}

func isShortener(host string) bool {
	for s := range urlShorteners {
		if strings.Contains(host, s) {
			return true
		}
	}
	return false
}

func (c *URLClassifier) cacheKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return cache.KeyURLVerdictPrefix + hex.EncodeToString(hash[:8])
}

func (c *URLClassifier) cachedVerdict(ctx context.Context, rawURL string) *models.Verdict {
	if c.cache == nil {
		return nil
	}
	var v models.Verdict
	if err := c.cache.GetJSON(ctx, c.cacheKey(rawURL), &v); err != nil {
		return nil
	}
	return &v
}

func (c *URLClassifier) cacheVerdict(ctx context.Context, rawURL string, v *models.Verdict) {
	if c.cache == nil {
		return
	}
	// Danger verdicts are stable; safe ones may change as reports come in.
	ttl := 5 * time.Minute
	if v.RiskLevel == models.RiskDanger {
		ttl = time.Hour
	}
	if err := c.cache.SetJSON(ctx, c.cacheKey(rawURL), v, ttl); err != nil {
		c.logger.Debug().Err(err).Msg("failed to cache url verdict")
	}
}

func (c *URLClassifier) record(input string, v *models.Verdict) {
	if c.history != nil {
		c.history.Record("url", input, v)
	}
}
