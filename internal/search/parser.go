// Package search implements the free-text day filter: a small predicate
// grammar parsed out of a query string, and a fuzzy matcher that evaluates
// predicates against per-day search blobs.
package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Predicate is the structured form of a free-text query: optional numeric
// bounds plus residual text tokens. Tokens are matched conjunctively.
type Predicate struct {
	MinEarnings float64
	MaxEarnings float64 // +Inf when unbounded
	MinTrips    int
	TextTokens  []string
}

var (
	lowerBoundPattern = regexp.MustCompile(`(?i)(?:over|above|>|more\s*than)\s*\$?(\d+)|\$?(\d+)\+`)
	upperBoundPattern = regexp.MustCompile(`(?i)(?:under|below|<|less\s*than)\s*\$?(\d+)`)
	rangePattern      = regexp.MustCompile(`(?i)\$?(\d+)\s*[-to]+\s*\$?(\d+)`)
	tripCountPattern  = regexp.MustCompile(`(?i)(\d+)\+?\s*trips?|trips?\s*[>:]\s*(\d+)`)
)

// ParseQuery extracts numeric predicates from a raw query. Every pattern is
// matched against the full query, so overlapping spellings like "5+ trips"
// bind both an earnings bound and a trip minimum; a range match overrides
// bounds set by the single-ended patterns. Matched text is stripped and
// whatever survives becomes the token list (tokens shorter than 2 runes are
// dropped). A blank query parses to the match-everything predicate.
func ParseQuery(raw string) Predicate {
	p := Predicate{MaxEarnings: math.Inf(1)}
	q := strings.ToLower(strings.TrimSpace(raw))
	if q == "" {
		return p
	}
	rest := q

	// "5+ trips", "10 trips", "trips > 5". Stripped first so the earnings
	// strips below never leave a bare "trips" behind as a text token.
	if m := tripCountPattern.FindStringSubmatch(q); m != nil {
		p.MinTrips = int(parseBound(m[1], m[2]))
		rest = strip(rest, m[0])
	}

	// "over $100", "> 100", "100+", "above 100"
	if m := lowerBoundPattern.FindStringSubmatch(q); m != nil {
		p.MinEarnings = parseBound(m[1], m[2])
		rest = strip(rest, m[0])
	}

	// "under $100", "< 100", "below 100", "less than 100"
	if m := upperBoundPattern.FindStringSubmatch(q); m != nil {
		p.MaxEarnings = parseBound(m[1])
		rest = strip(rest, m[0])
	}

	// "50-100", "$50-$100", "50 to 100": overrides both bounds.
	if m := rangePattern.FindStringSubmatch(q); m != nil {
		p.MinEarnings = parseBound(m[1])
		p.MaxEarnings = parseBound(m[2])
		rest = strip(rest, m[0])
	}

	for _, token := range strings.Fields(rest) {
		if len(token) > 1 {
			p.TextTokens = append(p.TextTokens, token)
		}
	}
	return p
}

// IsEmpty reports whether the predicate constrains nothing, i.e. the query
// was blank and every day matches.
func (p Predicate) IsEmpty() bool {
	return p.MinEarnings == 0 && math.IsInf(p.MaxEarnings, 1) && p.MinTrips == 0 && len(p.TextTokens) == 0
}

// parseBound returns the first parseable group; alternated regex branches
// leave the unused group empty.
func parseBound(groups ...string) float64 {
	for _, g := range groups {
		if g == "" {
			continue
		}
		if v, err := strconv.ParseFloat(g, 64); err == nil {
			return v
		}
	}
	return 0
}

func strip(s, match string) string {
	return strings.TrimSpace(strings.Replace(s, match, "", 1))
}
