package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether a request origin matches any configured
// pattern. Patterns apply to the host part only: "example.com" exact,
// "*.example.com" for subdomains, "localhost:*" for any port. Matching is
// case-insensitive.
func originAllowed(patterns []string, origin string) bool {
	host := originHost(origin)
	for _, pattern := range patterns {
		if matchHostPattern(strings.ToLower(pattern), host) {
			return true
		}
	}
	return false
}

// originHost extracts "host[:port]" from an origin URL, lowercased. A value
// that does not parse as a URL is matched as-is.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return strings.ToLower(origin)
	}
	return strings.ToLower(u.Host)
}

func matchHostPattern(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	default:
		return false
	}
}
