package domain

import (
	"strings"
)

// NormalizeDomainName prepares a domain name for storage and comparison:
//   - trims whitespace and lowercases
//   - strips an http:// or https:// scheme
//   - strips any path and trailing dots/slashes
func NormalizeDomainName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	for _, scheme := range []string{"https://", "http://"} {
		name = strings.TrimPrefix(name, scheme)
	}

	if i := strings.IndexAny(name, "/?#"); i >= 0 {
		name = name[:i]
	}

	return strings.TrimRight(name, ".")
}

// TrimOrNil trims whitespace. Returns nil if the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
