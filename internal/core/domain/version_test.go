package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nupin/internal/core/domain"
	"pgregory.net/rapid"
)

func TestPinVersion(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		expected   string
		ok         bool
	}{
		{"bare version", "1.2.3", "[1.2.3]", true},
		{"already pinned", "[1.2.3]", "[1.2.3]", true},
		{"double pinned", "[[1.2.3]]", "[1.2.3]", true},
		{"open bracket only", "[1.2.3", "[1.2.3]", true},
		{"close bracket only", "1.2.3]", "[1.2.3]", true},
		{"prerelease", "2.0.0-beta.1", "[2.0.0-beta.1]", true},
		{"surrounding space", " 1.0.0 ", "[1.0.0]", true},
		{"empty", "", "", false},
		{"brackets only", "[]", "", false},
		{"inclusive range", "[1.0,2.0]", "", false},
		{"half open range", "[1.0,2.0)", "", false},
		{"exclusive floor", "(1.0,)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.PinVersion(tt.constraint)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPinVersion_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[0-9]{1,3}(\.[0-9]{1,3}){0,3}(-[a-z0-9]{1,8})?`).Draw(t, "token")
		open := rapid.IntRange(0, 3).Draw(t, "open")
		closing := rapid.IntRange(0, 3).Draw(t, "close")
		constraint := strings.Repeat("[", open) + token + strings.Repeat("]", closing)

		once, ok := domain.PinVersion(constraint)
		assert.True(t, ok)
		assert.Equal(t, "["+token+"]", once)

		twice, ok := domain.PinVersion(once)
		assert.True(t, ok)
		assert.Equal(t, once, twice)
		assert.Equal(t, 1, strings.Count(twice, "["))
		assert.Equal(t, 1, strings.Count(twice, "]"))
	})
}

func TestIsPinned(t *testing.T) {
	assert.True(t, domain.IsPinned("[1.0.0]"))
	assert.False(t, domain.IsPinned("1.0.0"))
	assert.False(t, domain.IsPinned("[[1.0.0]]"))
	assert.False(t, domain.IsPinned("[1.0,2.0)"))
}

func TestStripBrackets(t *testing.T) {
	assert.Equal(t, "1.0", domain.StripBrackets("[[1.0]]"))
	assert.Equal(t, "1.0", domain.StripBrackets("1.0"))
}
