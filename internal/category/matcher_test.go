package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseInsensitive_Matches(t *testing.T) {
	m := NewCaseInsensitive()

	tests := []struct {
		name     string
		tx       string
		budget   string
		expected bool
	}{
		{"identical", "Food", "Food", true},
		{"lower vs title", "food", "Food", true},
		{"upper vs title", "FOOD", "Food", true},
		{"accented", "ÉPICERIE", "épicerie", true},
		{"different label", "Food & Dining", "Food", false},
		{"whitespace is significant", " Food", "Food", false},
		{"empty matches empty", "", "", true},
		{"empty vs label", "", "Food", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Matches(tt.tx, tt.budget))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Normalize("Transport"), Normalize("TRANSPORT"))
	assert.NotEqual(t, Normalize("Transport"), Normalize("Transports"))
}

func TestMatcherFunc(t *testing.T) {
	var m Matcher = MatcherFunc(func(tx, budget string) bool { return tx == budget })
	assert.True(t, m.Matches("Food", "Food"))
	assert.False(t, m.Matches("food", "Food"))
}
