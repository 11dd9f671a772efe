package ingest

import (
	"log"
	"sort"

	"lastmile/internal/domain"
)

// BuildLedger normalizes and groups raw trip rows into a Ledger. Rows that
// fail normalization are skipped with a logged warning; one bad record must
// not deny the whole history. Global stats are accumulated per row and, by
// construction, agree with the per-day sums.
func BuildLedger(rows []domain.RawTripRow) *domain.Ledger {
	ledger := &domain.Ledger{}
	buckets := make(map[string]*domain.DayBucket)

	for i, row := range rows {
		trip, date, err := NormalizeRow(row)
		if err != nil {
			log.Printf("skipping trip row %d: %v", i, err)
			continue
		}

		day, ok := buckets[date]
		if !ok {
			day = &domain.DayBucket{Date: date}
			buckets[date] = day
			ledger.Days = append(ledger.Days, day)
		}
		day.AddTrip(trip)
		ledger.AddToGlobal(trip)
	}

	// Lexicographic sort on YYYY-MM-DD is date-correct.
	sort.Slice(ledger.Days, func(i, j int) bool {
		return ledger.Days[i].Date < ledger.Days[j].Date
	})
	ledger.Stats.TotalDays = len(ledger.Days)

	return ledger
}

// Insert merges a single trip into the ledger under the given date, creating
// the day bucket at its sorted position if needed, and updates global stats.
// Callers are responsible for write serialization.
func Insert(ledger *domain.Ledger, date string, trip *domain.TripRecord) {
	day := ledger.Day(date)
	if day == nil {
		day = &domain.DayBucket{Date: date}
		ledger.InsertDay(day)
	}
	day.AddTrip(trip)
	ledger.AddToGlobal(trip)
}
