package search

import "strings"

// abbreviations expands common shorthand a driver would type: weekday and
// month abbreviations plus possessive restaurant names usually typed without
// the apostrophe.
var abbreviations = map[string]string{
	"mon": "monday", "tue": "tuesday", "wed": "wednesday",
	"thu": "thursday", "fri": "friday", "sat": "saturday", "sun": "sunday",
	"jan": "january", "feb": "february", "mar": "march", "apr": "april",
	"jun": "june", "jul": "july", "aug": "august", "sep": "september",
	"oct": "october", "nov": "november", "dec": "december",
	"mcdonalds": "mcdonald's", "mcd": "mcdonald's",
	"chilis": "chili's", "wendys": "wendy's", "arbys": "arby's",
	"popeyes": "popeye's", "churchs": "church's",
}

// fuzzyMinLen is the token length at which typo-tolerant matching kicks in;
// shorter tokens only prefix-match.
const fuzzyMinLen = 4

// Matches evaluates the predicate against one indexed day. Numeric bounds
// apply to the day totals; every text token must match the blob.
func (p Predicate) Matches(idx DayIndex) bool {
	if idx.Stats.TotalEarnings < p.MinEarnings || idx.Stats.TotalEarnings > p.MaxEarnings {
		return false
	}
	if idx.Stats.TripCount < p.MinTrips {
		return false
	}
	for _, token := range p.TextTokens {
		if !matchToken(token, idx) {
			return false
		}
	}
	return true
}

// matchToken tries, in order: direct substring, abbreviation expansion,
// then fuzzy (long tokens) or prefix (short tokens) matching against the
// blob's words.
func matchToken(token string, idx DayIndex) bool {
	if strings.Contains(idx.Blob, token) {
		return true
	}

	if expanded, ok := abbreviations[token]; ok && strings.Contains(idx.Blob, expanded) {
		return true
	}

	if len(token) >= fuzzyMinLen {
		for _, word := range idx.words {
			if fuzzyWordMatch(token, word) {
				return true
			}
		}
		return false
	}

	for _, word := range idx.words {
		if strings.HasPrefix(word, token) {
			return true
		}
	}
	return false
}

// fuzzyWordMatch accepts a prefix match in either direction (the reverse
// direction on a 3-character stem), or at most one positional character
// difference when the lengths differ by at most one.
func fuzzyWordMatch(token, word string) bool {
	if strings.HasPrefix(word, token) {
		return true
	}
	stem := word
	if len(stem) > 3 {
		stem = stem[:3]
	}
	if strings.HasPrefix(token, stem) {
		return true
	}

	if abs(len(word)-len(token)) <= 1 {
		diff := 0
		n := len(word)
		if len(token) < n {
			n = len(token)
		}
		for i := 0; i < n; i++ {
			if word[i] != token[i] {
				diff++
			}
		}
		return diff <= 1
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Result summarizes a search across day indices.
type Result struct {
	Count         int
	TotalEarnings float64
	Days          []DayIndex
}

// Filter evaluates the predicate against every index and aggregates the
// matching days. Non-matching days are simply absent from the result; the
// underlying ledger is untouched.
func Filter(indices []DayIndex, p Predicate) Result {
	var result Result
	for _, idx := range indices {
		if !p.Matches(idx) {
			continue
		}
		result.Count++
		result.TotalEarnings += idx.Stats.TotalEarnings
		result.Days = append(result.Days, idx)
	}
	return result
}
