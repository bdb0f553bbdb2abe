package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hyphenated", "03-1234-5678", "0312345678"},
		{"spaces and parens", "(090) 1234 5678", "09012345678"},
		{"leading plus kept", "+81-90-1234-5678", "+819012345678"},
		{"plus not leading dropped", "090+1234", "0901234"},
		{"garbage stripped", "abc-123", "123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestParseURL(t *testing.T) {
	t.Run("full url", func(t *testing.T) {
		p, err := ParseURL("https://Example.COM/Path?q=1")
		require.NoError(t, err)
		assert.Equal(t, "https", p.Scheme)
		assert.Equal(t, "example.com", p.Host)
		assert.Equal(t, "/Path", p.Path)
	})

	t.Run("bare domain gets http", func(t *testing.T) {
		p, err := ParseURL("example.com")
		require.NoError(t, err)
		assert.Equal(t, "http", p.Scheme)
		assert.Equal(t, "example.com", p.Host)
		assert.Equal(t, "/", p.Path)
	})

	t.Run("empty path defaults to slash", func(t *testing.T) {
		p, err := ParseURL("https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "/", p.Path)
	})

	t.Run("no host fails", func(t *testing.T) {
		_, err := ParseURL("not a url ::")
		assert.Error(t, err)
	})

	t.Run("empty fails", func(t *testing.T) {
		_, err := ParseURL("   ")
		assert.ErrorIs(t, err, ErrNoHost)
	})
}
