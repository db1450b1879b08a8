package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"example.com", "*.example.com", "localhost:*"}

	assert.True(t, originAllowed(patterns, "https://example.com"))
	assert.True(t, originAllowed(patterns, "https://app.example.com"))
	assert.True(t, originAllowed(patterns, "http://localhost:3000"))
	// a bare host with no scheme still matches
	assert.True(t, originAllowed(patterns, "example.com"))
	assert.False(t, originAllowed(patterns, "https://example.org"))
	assert.False(t, originAllowed(nil, "https://example.com"))
}

func TestMatchOriginPattern(t *testing.T) {
	assert.True(t, matchOriginPattern("example.com", "example.com"))
	assert.True(t, matchOriginPattern("*.example.com", "app.example.com"))
	assert.False(t, matchOriginPattern("*.example.com", "example.org"))
	assert.True(t, matchOriginPattern("localhost:*", "localhost:3000"))
	assert.False(t, matchOriginPattern("example.com", "other.com"))
}
