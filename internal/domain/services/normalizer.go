package services

import (
	"errors"
	"net/url"
	"strings"

	"scamguard/internal/domain/models"
)

// ErrNoHost is returned by ParseURL when the input yields no usable host.
var ErrNoHost = errors.New("url has no host")

// NormalizePhone strips formatting characters from a raw phone number,
// keeping digits and a leading +. No validation happens here: garbage input
// normalizes to an empty or partial string and simply fails to match any
// downstream rule.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseURL parses a raw URL into scheme/host/path. Bare domains are allowed:
// a missing scheme is auto-completed with http:// so they can still be
// checked. Inputs that parse to no host fail with ErrNoHost.
func ParseURL(raw string) (models.ParsedURL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.ParsedURL{}, ErrNoHost
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return models.ParsedURL{}, err
	}
	if u.Host == "" {
		return models.ParsedURL{}, ErrNoHost
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	return models.ParsedURL{
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Host),
		Path:   path,
	}, nil
}
