package search

import (
	"math"
	"reflect"
	"testing"
)

func TestParseQuery_Bounds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		query   string
		wantMin float64
		wantMax float64
	}{
		{"over", "over $100", 100, math.Inf(1)},
		{"above", "above 100", 100, math.Inf(1)},
		{"greater than symbol", "> 100", 100, math.Inf(1)},
		{"more than", "more than 100", 100, math.Inf(1)},
		{"plus suffix", "100+", 100, math.Inf(1)},
		{"under", "under $50", 0, 50},
		{"below", "below 50", 0, 50},
		{"less than", "less than 50", 0, 50},
		{"both bounds", "over 100 under 50", 100, 50},
		{"range", "50-100", 50, 100},
		{"range with dollars", "$50-$100", 50, 100},
		{"range with to", "50 to 100", 50, 100},
		{"blank", "", 0, math.Inf(1)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := ParseQuery(tc.query)
			if p.MinEarnings != tc.wantMin {
				t.Errorf("min = %v, want %v", p.MinEarnings, tc.wantMin)
			}
			if p.MaxEarnings != tc.wantMax {
				t.Errorf("max = %v, want %v", p.MaxEarnings, tc.wantMax)
			}
			if len(p.TextTokens) != 0 {
				t.Errorf("expected no residual tokens, got %v", p.TextTokens)
			}
		})
	}
}

func TestParseQuery_RangeOverridesSingleBounds(t *testing.T) {
	t.Parallel()

	// A surviving range pattern wins over whatever the single-ended
	// patterns already claimed.
	p := ParseQuery("over 5 and 50 to 100")
	if p.MinEarnings != 50 || p.MaxEarnings != 100 {
		t.Errorf("expected range 50-100 to win, got %v-%v", p.MinEarnings, p.MaxEarnings)
	}
}

func TestParseQuery_TripCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		query string
		want  int
	}{
		{"10 trips", 10},
		{"3 trip", 3},
		{"trips: 7", 7},
	}
	for _, tc := range testCases {
		p := ParseQuery(tc.query)
		if p.MinTrips != tc.want {
			t.Errorf("ParseQuery(%q).MinTrips = %d, want %d", tc.query, p.MinTrips, tc.want)
		}
		if len(p.TextTokens) != 0 {
			t.Errorf("ParseQuery(%q) left tokens %v", tc.query, p.TextTokens)
		}
	}
}

func TestParseQuery_OverlappingTripForms(t *testing.T) {
	t.Parallel()

	// "5+ trips" reads one way to the trip pattern and another to the
	// earnings lower bound; both apply, and nothing residual survives.
	p := ParseQuery("5+ trips")
	if p.MinEarnings != 5 {
		t.Errorf("expected min earnings 5, got %v", p.MinEarnings)
	}
	if p.MinTrips != 5 {
		t.Errorf("expected min trips 5, got %d", p.MinTrips)
	}
	if len(p.TextTokens) != 0 {
		t.Errorf("expected no residual tokens, got %v", p.TextTokens)
	}

	// Same for the comparison spelling.
	p = ParseQuery("trips > 5")
	if p.MinEarnings != 5 || p.MinTrips != 5 {
		t.Errorf("expected both bounds at 5, got %+v", p)
	}
	if len(p.TextTokens) != 0 {
		t.Errorf("expected no residual tokens, got %v", p.TextTokens)
	}
}

func TestParseQuery_ResidualTokens(t *testing.T) {
	t.Parallel()

	p := ParseQuery("over $100 friday chipotle")
	if p.MinEarnings != 100 {
		t.Errorf("expected min 100, got %v", p.MinEarnings)
	}
	if !reflect.DeepEqual(p.TextTokens, []string{"friday", "chipotle"}) {
		t.Errorf("expected residual tokens, got %v", p.TextTokens)
	}
}

func TestParseQuery_DropsSingleRuneTokens(t *testing.T) {
	t.Parallel()

	p := ParseQuery("a chipotle")
	if !reflect.DeepEqual(p.TextTokens, []string{"chipotle"}) {
		t.Errorf("expected single-rune token dropped, got %v", p.TextTokens)
	}
}

func TestPredicate_IsEmpty(t *testing.T) {
	t.Parallel()

	if !ParseQuery("").IsEmpty() {
		t.Error("expected blank query to be empty")
	}
	if !ParseQuery("  ").IsEmpty() {
		t.Error("expected whitespace query to be empty")
	}
	if ParseQuery("over 100").IsEmpty() {
		t.Error("expected bounded query to be non-empty")
	}
	if ParseQuery("chipotle").IsEmpty() {
		t.Error("expected text query to be non-empty")
	}
}
