package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  bool
	}{
		{"empty query matches everything", "", "anything at all", true},
		{"whitespace-only query matches everything", "   \t ", "anything", true},
		{"empty query matches empty text", "", "", true},
		{"whole word verbatim", "report", "write the report tonight", true},
		{"exact equality case-insensitive", "REPORT", "report", true},
		{"prefix match", "rep", "report due friday", true},
		{"short prefix match", "r", "report", true},
		{"substring needs length over 2", "epo", "report", true},
		{"two-rune substring rejected", "ep", "report", false},
		{"transposed letters within budget", "tset", "test", true},
		{"single substitution length four", "tast", "test", true},
		{"two substitutions over budget", "tant", "test", false},
		{"edit distance gated below length four", "tes", "best", false},
		{"every query token must match", "math exam", "math homework", false},
		{"all tokens match across text tokens", "math home", "math homework due", true},
		{"punctuation stripped", "dont", "don't forget", true},
		{"no match at all", "zebra", "grocery shopping", false},
		{"punctuation-only query is vacuous", "!!!", "anything", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.query, tt.text))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"same", "same", 0},
		{"flaw", "lawn", 2},
		{"tset", "test", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "distance(%q, %q)", tt.a, tt.b)
		assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "distance(%q, %q)", tt.b, tt.a)
	}
}

func TestTypoDistanceTransposition(t *testing.T) {
	// A swapped adjacent pair is a single typo for matching purposes even
	// though plain Levenshtein charges two substitutions.
	assert.Equal(t, 1, typoDistance("tset", "test"))
	assert.Equal(t, 2, Levenshtein("tset", "test"))
	assert.Equal(t, 0, typoDistance("exam", "exam"))
}
