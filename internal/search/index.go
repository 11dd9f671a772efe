package search

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"lastmile/internal/domain"
)

// DayIndex is a value snapshot of one day paired with its precomputed search
// blob. The blob is a lowercased concatenation of everything a query token
// may refer to: date, month, weekday, totals, and per-trip restaurant and
// locality text. Nothing in the index aliases the live ledger, so indices
// built under the ledger lock stay valid after it is released.
type DayIndex struct {
	Date  string // YYYY-MM-DD
	Stats domain.DayStats
	Blob  string
	words []string
}

var (
	cityPattern   = regexp.MustCompile(`,\s*([^,]+),\s*[A-Z]{2}\b`)
	streetPattern = regexp.MustCompile(`^([^,]+)`)
)

// IndexDay builds the search blob for one day bucket.
func IndexDay(day *domain.DayBucket) DayIndex {
	date, _ := time.ParseInLocation("2006-01-02", day.Date, time.Local)

	var tripParts []string
	for _, trip := range day.Trips {
		tripParts = append(tripParts, trip.Restaurant)
		if city := cityPattern.FindStringSubmatch(trip.PickupAddress); city != nil {
			tripParts = append(tripParts, city[1])
		}
		if city := cityPattern.FindStringSubmatch(trip.DropoffAddress); city != nil {
			tripParts = append(tripParts, city[1])
		}
		if street := streetPattern.FindStringSubmatch(trip.DropoffAddress); street != nil {
			tripParts = append(tripParts, street[1])
		}
	}

	blob := strings.ToLower(strings.Join([]string{
		day.Date,
		date.Format("January"),
		date.Format("Mon"),
		date.Format("Monday"),
		fmt.Sprintf("%.2f", day.Stats.TotalEarnings),
		fmt.Sprintf("%d trips", day.Stats.TripCount),
		fmt.Sprintf("%.1f miles", day.Stats.TotalDistance),
		strings.Join(tripParts, " "),
	}, " "))

	return DayIndex{Date: day.Date, Stats: day.Stats, Blob: blob, words: strings.Fields(blob)}
}

// IndexLedger builds search indices for every day in the ledger.
func IndexLedger(ledger *domain.Ledger) []DayIndex {
	indices := make([]DayIndex, len(ledger.Days))
	for i, day := range ledger.Days {
		indices[i] = IndexDay(day)
	}
	return indices
}
