package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHost(t *testing.T) {
	assert.Equal(t, "example.com", originHost("https://example.com"))
	assert.Equal(t, "example.com:3000", originHost("http://example.com:3000"))
	assert.Equal(t, "example.com", originHost("https://EXAMPLE.com"))
	assert.Equal(t, "plainhost", originHost("plainhost"))
}

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"example.com", "*.example.com", "localhost:*"}

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://example.com", true},
		{"https://Example.COM", true},
		{"https://app.example.com", true},
		{"https://example.org", false},
		{"http://localhost:3000", true},
		{"http://remotehost:3000", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, originAllowed(patterns, tt.origin), "origin %q", tt.origin)
	}
}

func TestOriginAllowedNoPatterns(t *testing.T) {
	assert.False(t, originAllowed(nil, "https://example.com"))
}
