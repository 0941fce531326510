// Package search implements the fuzzy text matching behind the list view's
// live filter. Matching is token-based: each query word has to be found
// somewhere in the candidate text, tolerating prefixes, substrings, and
// small typos.
package search

import (
	"strings"
	"unicode"
)

// Matches reports whether every token of query matches at least one token
// of text. An empty or whitespace-only query matches everything.
func Matches(query, text string) bool {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return true
	}
	textTokens := tokenize(text)

	for _, q := range queryTokens {
		if !matchesAny(q, textTokens) {
			return false
		}
	}
	return true
}

func matchesAny(q string, tokens []string) bool {
	for _, tok := range tokens {
		if tokenMatch(q, tok) {
			return true
		}
	}
	return false
}

// tokenMatch applies the per-token rules in order of cost: equality, prefix,
// substring for queries longer than 2 runes, then edit distance for pairs
// where both sides exceed 3 runes. The edit budget scales with the shorter
// token: floor(min(len)/3).
func tokenMatch(q, tok string) bool {
	if q == tok {
		return true
	}
	if strings.HasPrefix(tok, q) {
		return true
	}
	qLen := len([]rune(q))
	tokLen := len([]rune(tok))
	if qLen > 2 && strings.Contains(tok, q) {
		return true
	}
	if qLen > 3 && tokLen > 3 {
		budget := min(qLen, tokLen) / 3
		if typoDistance(q, tok) <= budget {
			return true
		}
	}
	return false
}

// tokenize lowercases s, drops everything outside letters, digits, and
// whitespace, and splits on whitespace. Empty tokens from repeated spaces
// never survive strings.Fields.
func tokenize(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

// Levenshtein returns the edit distance between a and b over runes, with
// unit cost for insert, delete, and substitute.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// typoDistance is the edit distance the matcher budgets against. It extends
// Levenshtein with adjacent transpositions at cost 1, so a swapped pair of
// letters counts as a single typo.
func typoDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		d[0][j] = j
	}
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}
	return d[len(ra)][len(rb)]
}
