package domain

import (
	"net/url"
	"strings"
)

// NormalizeTargetURL validates that s is an absolute http(s) URL and returns
// its normalized form. The normalized form is what gets persisted, so
// equivalent spellings of a URL collapse to one representation.
func NormalizeTargetURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidURL
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", ErrInvalidURL
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidURL
	}

	if u.Host == "" {
		return "", ErrInvalidURL
	}

	return u.String(), nil
}
