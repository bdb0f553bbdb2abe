package services

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// ReferenceDatabase holds the in-memory reference tables the classifiers
// evaluate against: known scam numbers, suspicious prefixes, dangerous
// domains and keywords, caller-type prefix maps, and the user report log.
//
// It is process-wide shared state: seeded once at construction, grown
// append-only by user reports, read by every classifier. A single RWMutex
// guards all tables; classification reads see a consistent snapshot.
type ReferenceDatabase struct {
	mu sync.RWMutex

	knownScamNumbers   map[string]bool
	suspiciousPrefixes []string
	dangerousDomains   map[string]bool
	reportedDomains    map[string]bool
	suspiciousKeywords []string
	dangerousPatterns  []*regexp.Regexp
	phoneWarnPatterns  []*regexp.Regexp

	governmentPrefixes map[string]string
	bankPrefixes       map[string]string
	areaCodes          map[string]string

	reportedCases []models.ReportedCase

	logger *logger.Logger
}

// NewReferenceDatabase creates the database and seeds the static defaults.
func NewReferenceDatabase(log *logger.Logger) *ReferenceDatabase {
	db := &ReferenceDatabase{
		knownScamNumbers: make(map[string]bool),
		dangerousDomains: make(map[string]bool),
		reportedDomains:  make(map[string]bool),
		logger:           log.WithComponent("reference-db"),
	}
	db.seed()
	return db
}

// seed populates the static defaults. Idempotent: maps are keyed, slices are
// assigned wholesale.
func (db *ReferenceDatabase) seed() {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, n := range []string{"03-1234-5678", "0120-999-999", "050-1111-2222", "090-1234-5678"} {
		db.knownScamNumbers[NormalizePhone(n)] = true
	}

	db.suspiciousPrefixes = []string{"050", "070", "+675", "+234", "+1876"}

	for _, d := range []string{
		"paypal-secure-login.com",
		"amazon-verify.net",
		"apple-support-id.com",
		"microsoft-security.net",
		"google-verify-account.com",
	} {
		db.dangerousDomains[d] = true
	}

	db.suspiciousKeywords = []string{
		"verify account", "urgent action", "suspended", "confirm identity",
		"password update", "security warning", "within 24 hours", "right now",
		// Japanese equivalents carried over from the threat feed this set
		// was built from.
		"アカウント確認", "緊急", "本人確認", "パスワード更新",
		"セキュリティ警告", "24時間以内", "今すぐ",
	}

	db.dangerousPatterns = []*regexp.Regexp{
		// free-hosting TLDs served over plain http
		regexp.MustCompile(`(?i)^http://[^/\s]+\.(tk|ml|ga|cf|gq)([:/]|$)`),
		// raw IPv4 host
		regexp.MustCompile(`(?i)^https?://\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}([:/]|$)`),
		// hyphenated host built around login/signin/verify
		regexp.MustCompile(`(?i)^https?://[^/\s]*(-(login|signin|verify)|(login|signin|verify)[^./\s]*-)[^/\s]*\.`),
	}

	db.phoneWarnPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^0990`),    // premium-rate dial
		regexp.MustCompile(`^00[1-9]`), // carrier international call prefix
	}

	db.governmentPrefixes = map[string]string{
		"033581": "Central government office (Kasumigaseki)",
		"035253": "Tokyo Metropolitan Government",
	}

	db.bankPrefixes = map[string]string{
		"0120332": "Mizuho Bank customer desk",
		"0120860": "MUFG Bank customer desk",
		"0363871": "SMBC customer desk",
	}

	db.areaCodes = map[string]string{
		"011": "Sapporo",
		"03":  "Tokyo",
		"045": "Yokohama",
		"052": "Nagoya",
		"06":  "Osaka",
		"075": "Kyoto",
		"092": "Fukuoka",
	}
}

// ReportDomain adds a user-reported domain to both reportedDomains and
// dangerousDomains. Returns true when the domain was newly added, false
// when it was already known.
func (db *ReferenceDatabase) ReportDomain(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return false
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.reportedDomains[domain] || db.dangerousDomains[domain] {
		return false
	}
	db.reportedDomains[domain] = true
	db.dangerousDomains[domain] = true

	db.logger.Info().Str("domain", domain).Msg("domain reported")
	return true
}

// ReportPhoneNumber records a user report about a phone number. The number
// joins knownScamNumbers if not already present; the case log always gains
// a new entry, even for numbers that are already known. Duplicate reports
// accumulate rather than deduplicate.
func (db *ReferenceDatabase) ReportPhoneNumber(number, description string) models.ReportedCase {
	normalized := NormalizePhone(number)

	db.mu.Lock()
	defer db.mu.Unlock()

	db.knownScamNumbers[normalized] = true

	c := models.ReportedCase{
		ID:          uuid.New(),
		Number:      normalized,
		Description: description,
		ReportedAt:  time.Now(),
	}
	db.reportedCases = append(db.reportedCases, c)

	db.logger.Info().Str("number", normalized).Int("total_cases", len(db.reportedCases)).Msg("phone number reported")
	return c
}

// IsKnownScamNumber reports whether the normalized number is a known scam.
func (db *ReferenceDatabase) IsKnownScamNumber(normalized string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.knownScamNumbers[normalized]
}

// ReportedCasesFor returns the report count for a normalized number and the
// description of the most recent report.
func (db *ReferenceDatabase) ReportedCasesFor(normalized string) (int, string) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	count := 0
	latest := ""
	for _, c := range db.reportedCases {
		if c.Number == normalized {
			count++
			latest = c.Description
		}
	}
	return count, latest
}

// MatchingSuspiciousPrefixes returns every suspicious prefix the normalized
// number starts with.
func (db *ReferenceDatabase) MatchingSuspiciousPrefixes(normalized string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var hits []string
	for _, p := range db.suspiciousPrefixes {
		if strings.HasPrefix(normalized, p) {
			hits = append(hits, p)
		}
	}
	return hits
}

// MatchesPhoneWarnPattern reports whether any warning regex matches the
// normalized number.
func (db *ReferenceDatabase) MatchesPhoneWarnPattern(normalized string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, re := range db.phoneWarnPatterns {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}

// GovernmentLabel resolves the normalized number against the government
// prefix map by longest-prefix match.
func (db *ReferenceDatabase) GovernmentLabel(normalized string) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return longestPrefixMatch(db.governmentPrefixes, normalized)
}

// BankLabel resolves the normalized number against the bank prefix map by
// longest-prefix match.
func (db *ReferenceDatabase) BankLabel(normalized string) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return longestPrefixMatch(db.bankPrefixes, normalized)
}

// AreaLabel resolves a landline number's area by longest-prefix match.
func (db *ReferenceDatabase) AreaLabel(normalized string) (string, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return longestPrefixMatch(db.areaCodes, normalized)
}

// MatchingDangerousDomains returns the dangerous-domain entries the host
// contains (substring semantics so subdomains of a bad domain still hit).
func (db *ReferenceDatabase) MatchingDangerousDomains(host string) []string {
	host = strings.ToLower(host)

	db.mu.RLock()
	defer db.mu.RUnlock()

	var hits []string
	for d := range db.dangerousDomains {
		if strings.Contains(host, d) {
			hits = append(hits, d)
		}
	}
	sort.Strings(hits)
	return hits
}

// IsReportedDomain reports whether the host exactly matches a user-reported
// domain.
func (db *ReferenceDatabase) IsReportedDomain(host string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.reportedDomains[strings.ToLower(host)]
}

// MatchesDangerousPattern reports whether the full URL string matches any of
// the dangerous URL regexes.
func (db *ReferenceDatabase) MatchesDangerousPattern(rawURL string) bool {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, re := range db.dangerousPatterns {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// KeywordHits returns the suspicious keywords found in the text
// (case-insensitive substring match), in seed order.
func (db *ReferenceDatabase) KeywordHits(text string) []string {
	lower := strings.ToLower(text)

	db.mu.RLock()
	defer db.mu.RUnlock()

	var hits []string
	for _, k := range db.suspiciousKeywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			hits = append(hits, k)
		}
	}
	return hits
}

// ReferenceStats is a point-in-time summary of the database contents.
type ReferenceStats struct {
	KnownScamNumbers int `json:"known_scam_numbers"`
	DangerousDomains int `json:"dangerous_domains"`
	ReportedDomains  int `json:"reported_domains"`
	ReportedCases    int `json:"reported_cases"`
	Keywords         int `json:"keywords"`
}

// Stats returns counters for the stats endpoint.
func (db *ReferenceDatabase) Stats() ReferenceStats {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return ReferenceStats{
		KnownScamNumbers: len(db.knownScamNumbers),
		DangerousDomains: len(db.dangerousDomains),
		ReportedDomains:  len(db.reportedDomains),
		ReportedCases:    len(db.reportedCases),
		Keywords:         len(db.suspiciousKeywords),
	}
}

// Snapshot returns a copy of the human-facing tables for the reference
// endpoint. The copy keeps handlers from racing the report path.
type ReferenceSnapshot struct {
	KnownScamNumbers   []string              `json:"known_scam_numbers"`
	SuspiciousPrefixes []string              `json:"suspicious_prefixes"`
	DangerousDomains   []string              `json:"dangerous_domains"`
	SuspiciousKeywords []string              `json:"suspicious_keywords"`
	ReportedCases      []models.ReportedCase `json:"reported_cases"`
}

// Snapshot copies the reference tables under the read lock.
func (db *ReferenceDatabase) Snapshot() ReferenceSnapshot {
	db.mu.RLock()
	defer db.mu.RUnlock()

	snap := ReferenceSnapshot{
		SuspiciousPrefixes: append([]string(nil), db.suspiciousPrefixes...),
		SuspiciousKeywords: append([]string(nil), db.suspiciousKeywords...),
		ReportedCases:      append([]models.ReportedCase(nil), db.reportedCases...),
	}
	for n := range db.knownScamNumbers {
		snap.KnownScamNumbers = append(snap.KnownScamNumbers, n)
	}
	for d := range db.dangerousDomains {
		snap.DangerousDomains = append(snap.DangerousDomains, d)
	}
	sort.Strings(snap.KnownScamNumbers)
	sort.Strings(snap.DangerousDomains)
	return snap
}

// longestPrefixMatch returns the value for the longest map key that prefixes
// the number.
func longestPrefixMatch(m map[string]string, number string) (string, bool) {
	best := ""
	for prefix := range m {
		if strings.HasPrefix(number, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return "", false
	}
	return m[best], true
}
