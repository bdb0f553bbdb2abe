package services

import (
	"fmt"
	"strings"

	"scamguard/internal/domain/models"
	"scamguard/pkg/logger"
)

// emergencyNumbers are the official emergency dial codes. Matching one is a
// terminal verdict: no risk rule runs after it.
var emergencyNumbers = map[string]bool{
	"110": true, // police
	"119": true, // fire and ambulance
	"118": true, // coast guard
}

// callerResolution is the outcome of one caller-taxonomy rule: the resolved
// profile plus any warnings the rule always raises.
type callerResolution struct {
	profile  models.CallerProfile
	warnings []string
}

// callerRule pairs a predicate with its resolution. Rules are evaluated in
// fixed priority order; the first non-nil resolution wins.
type callerRule struct {
	name    string
	resolve func(normalized string) *callerResolution
}

// PhoneClassifier resolves caller-type taxonomy and a risk verdict for a
// phone number against the reference database.
type PhoneClassifier struct {
	refdb   *ReferenceDatabase
	history *History
	rules   []callerRule
	logger  *logger.Logger
}

// NewPhoneClassifier creates a phone classifier.
func NewPhoneClassifier(refdb *ReferenceDatabase, history *History, log *logger.Logger) *PhoneClassifier {
	c := &PhoneClassifier{
		refdb:   refdb,
		history: history,
		logger:  log.WithComponent("phone-classifier"),
	}
	c.rules = c.buildCallerRules()
	return c
}

// buildCallerRules assembles the ordered caller-taxonomy table. Order is
// significant: the government and bank maps outrank structural prefixes, and
// international (+/010) must be tested before the generic leading-0 landline
// rule or 010 numbers would resolve as landlines.
func (c *PhoneClassifier) buildCallerRules() []callerRule {
	return []callerRule{
		{
			name: "government",
			resolve: func(n string) *callerResolution {
				label, ok := c.refdb.GovernmentLabel(n)
				if !ok {
					return nil
				}
				return &callerResolution{profile: models.CallerProfile{
					Type:       "Government office",
					Category:   models.CategoryPublicAuthority,
					Confidence: models.ConfidenceHigh,
					Details:    []string{label},
				}}
			},
		},
		{
			name: "bank",
			resolve: func(n string) *callerResolution {
				label, ok := c.refdb.BankLabel(n)
				if !ok {
					return nil
				}
				return &callerResolution{profile: models.CallerProfile{
					Type:       "Bank",
					Category:   models.CategoryBank,
					Confidence: models.ConfidenceMedium,
					Details:    []string{label, "verify authenticity before sharing any information"},
				}}
			},
		},
		{
			name: "free-dial",
			resolve: func(n string) *callerResolution {
				if !strings.HasPrefix(n, "0120") && !strings.HasPrefix(n, "0800") {
					return nil
				}
				return &callerResolution{profile: models.CallerProfile{
					Type:       "Free dial (toll-free)",
					Category:   models.CategoryGeneralBusiness,
					Confidence: models.ConfidenceMedium,
					Details:    []string{"toll-free business line"},
				}}
			},
		},
		{
			name: "navi-dial",
			resolve: func(n string) *callerResolution {
				if !strings.HasPrefix(n, "0570") {
					return nil
				}
				return &callerResolution{profile: models.CallerProfile{
					Type:       "Navi dial",
					Category:   models.CategoryGeneralBusiness,
					Confidence: models.ConfidenceMedium,
					Details:    []string{"shared-cost navi dial line"},
				}}
			},
		},
		{
			name: "ip-phone",
			resolve: func(n string) *callerResolution {
				if !strings.HasPrefix(n, "050") {
					return nil
				}
				return &callerResolution{
					profile: models.CallerProfile{
						Type:       "IP phone",
						Category:   models.CategoryUnknown,
						Confidence: models.ConfidenceLow,
					},
					warnings: []string{"IP phone numbers are easy to obtain anonymously and are often used in scams"},
				}
			},
		},
		{
			name: "mobile",
			resolve: func(n string) *callerResolution {
				if !strings.HasPrefix(n, "090") && !strings.HasPrefix(n, "080") && !strings.HasPrefix(n, "070") {
					return nil
				}
				return &callerResolution{profile: models.CallerProfile{
					Type:       "Mobile phone",
					Category:   models.CategoryIndividual,
					Confidence: models.ConfidenceHigh,
					Details:    []string{"personally contracted mobile line"},
				}}
			},
		},
		{
			name: "m2m",
			resolve: func(n string) *callerResolution {
				if !strings.HasPrefix(n, "020") {
					return nil
				}
				return &callerResolution{profile: models.CallerProfile{
					Type:       "M2M / data terminal",
					Category:   models.CategorySpecial,
					Confidence: models.ConfidenceHigh,
				}}
			},
		},
		{
			name: "international",
			resolve: func(n string) *callerResolution {
				if !strings.HasPrefix(n, "+") && !strings.HasPrefix(n, "010") {
					return nil
				}
				return &callerResolution{
					profile: models.CallerProfile{
						Type:       "International call",
						Category:   models.CategoryInternational,
						Confidence: models.ConfidenceCertain,
					},
					warnings: []string{"international call, be cautious of unsolicited calls"},
				}
			},
		},
		{
			name: "landline",
			resolve: func(n string) *callerResolution {
				if !strings.HasPrefix(n, "0") {
					return nil
				}
				profile := models.CallerProfile{
					Type:       "Landline",
					Category:   models.CategoryUnknown,
					Confidence: models.ConfidenceLow,
					Details:    []string{"landline (business or residential)"},
				}
				if area, ok := c.refdb.AreaLabel(n); ok {
					profile.Confidence = models.ConfidenceMedium
					profile.Details = append(profile.Details, "area: "+area)
				}
				return &callerResolution{profile: profile}
			},
		},
		{
			name: "unknown",
			resolve: func(n string) *callerResolution {
				return &callerResolution{profile: models.CallerProfile{
					Type:       "Unknown",
					Category:   models.CategoryOther,
					Confidence: models.ConfidenceLow,
				}}
			},
		},
	}
}

// resolveCaller walks the rule table in order and returns the first match.
// The final fallback rule always matches.
func (c *PhoneClassifier) resolveCaller(normalized string) *callerResolution {
	for _, rule := range c.rules {
		if res := rule.resolve(normalized); res != nil {
			return res
		}
	}
	// unreachable: the fallback rule matches everything
	return &callerResolution{profile: models.CallerProfile{
		Type:       "Unknown",
		Category:   models.CategoryOther,
		Confidence: models.ConfidenceLow,
	}}
}

// Classify evaluates a raw phone number and returns the verdict together
// with the resolved caller profile. Empty input yields an Error verdict;
// nothing here ever fails with an error.
func (c *PhoneClassifier) Classify(raw string) *models.PhoneCheckResponse {
	if strings.TrimSpace(raw) == "" {
		v := models.ErrorVerdict("no number provided")
		c.record(raw, v)
		return &models.PhoneCheckResponse{Number: raw, Verdict: v}
	}

	normalized := NormalizePhone(raw)
	resp := &models.PhoneCheckResponse{Number: raw, Normalized: normalized}

	// Emergency numbers are terminal: no risk rule applies to them.
	if emergencyNumbers[normalized] {
		v := models.NewVerdict()
		v.RiskLevel = models.RiskEmergency
		v.RiskScore = 0
		v.Detail("emergency number")
		resp.Verdict = v
		resp.Caller = &models.CallerProfile{
			Type:       "Emergency service",
			Category:   models.CategoryPublicAuthority,
			Confidence: models.ConfidenceCertain,
			Details:    []string{"official emergency number"},
		}
		c.record(raw, v)
		return resp
	}

	res := c.resolveCaller(normalized)
	resp.Caller = &res.profile

	v := models.NewVerdict()
	for _, d := range res.profile.Details {
		v.Detail(d)
	}
	for _, w := range res.warnings {
		v.Warn(w)
	}

	// Risk rules are independent and accumulate; the level and score only
	// ever go up (max-merge, no double counting).
	if c.refdb.IsKnownScamNumber(normalized) {
		v.Raise(models.RiskDanger, 95)
		v.Warn("known scam phone number")
		v.Recommend("do not respond to calls or messages from this number")
		v.Recommend("consider blocking this number")
	}

	if count, latest := c.refdb.ReportedCasesFor(normalized); count > 0 {
		v.Raise(models.RiskCaution, 70)
		v.Warn(fmt.Sprintf("reported by users %d time(s)", count))
		if latest != "" {
			v.Detail("latest report: " + truncate(latest, 80))
		}
	}

	for _, prefix := range c.refdb.MatchingSuspiciousPrefixes(normalized) {
		v.Raise(models.RiskCaution, 40)
		v.Warn(fmt.Sprintf("number starts with suspicious prefix %s", prefix))
	}

	if c.refdb.MatchesPhoneWarnPattern(normalized) {
		v.Raise(models.RiskCaution, 30)
		v.Warn("number matches a suspicious dialing pattern")
	}

	if res.profile.Category == models.CategoryInternational {
		v.Raise(models.RiskCaution, 50)
	}

	if v.RiskLevel == models.RiskSafe {
		v.Recommend("no issues detected")
	}

	resp.Verdict = v
	c.record(raw, v)

	c.logger.Info().
		Str("number", normalized).
		Str("caller_type", res.profile.Type).
		Str("risk_level", string(v.RiskLevel)).
		Int("risk_score", v.RiskScore).
		Msg("phone number classified")

	return resp
}

func (c *PhoneClassifier) record(input string, v *models.Verdict) {
	if c.history != nil {
		c.history.Record("phone", input, v)
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
