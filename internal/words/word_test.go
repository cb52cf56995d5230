package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStructurallyValid(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected bool
	}{
		{
			name:     "simple word",
			word:     "example",
			expected: true,
		},
		{
			name:     "minimum length",
			word:     "aa",
			expected: true,
		},
		{
			name:     "maximum length",
			word:     strings.Repeat("a", 45),
			expected: true,
		},
		{
			name:     "capitalized",
			word:     "Hello",
			expected: false,
		},
		{
			name:     "digits",
			word:     "a1b2",
			expected: false,
		},
		{
			name:     "hyphen",
			word:     "self-aware",
			expected: false,
		},
		{
			name:     "apostrophe",
			word:     "don't",
			expected: false,
		},
		{
			name:     "single letter",
			word:     "x",
			expected: false,
		},
		{
			name:     "too long",
			word:     strings.Repeat("a", 46),
			expected: false,
		},
		{
			name:     "empty",
			word:     "",
			expected: false,
		},
		{
			name:     "diacritic",
			word:     "café",
			expected: false,
		},
		{
			name:     "whitespace inside",
			word:     "two words",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStructurallyValid(tt.word))
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name           string
		word           string
		expectedValid  bool
		expectedReason string
	}{
		{
			name:          "valid word has no reason",
			word:          "boba",
			expectedValid: true,
		},
		{
			name:           "uppercase explains proper noun suspicion",
			word:           "Paris",
			expectedReason: "contains uppercase letters (potential proper noun)",
		},
		{
			name:           "punctuation",
			word:           "o'clock",
			expectedReason: "contains non-alphabetic characters",
		},
		{
			name:           "empty",
			word:           "",
			expectedReason: "empty word",
		},
		{
			name:           "short",
			word:           "a",
			expectedReason: "too short (min 2 characters)",
		},
		{
			name:           "long",
			word:           strings.Repeat("z", 50),
			expectedReason: "too long (max 45 characters)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Check(tt.word)
			assert.Equal(t, tt.expectedValid, result.IsValid)
			assert.Equal(t, tt.expectedReason, result.Reason)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "boba", Normalize("  Boba\n"))
	assert.Equal(t, "google", Normalize("GOOGLE"))
	assert.Equal(t, "", Normalize("   "))
}
