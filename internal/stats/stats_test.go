package stats

import (
	"lastmile/internal/domain"
)

// testLedger builds a ledger from day buckets, keeping globals in sync the
// same way the ingest layer does.
func testLedger(days ...*domain.DayBucket) *domain.Ledger {
	ledger := &domain.Ledger{}
	for _, day := range days {
		trips := day.Trips
		day.Trips = nil
		day.Stats = domain.DayStats{}
		ledger.InsertDay(day)
		for _, trip := range trips {
			day.AddTrip(trip)
			ledger.AddToGlobal(trip)
		}
	}
	return ledger
}

func day(date string, trips ...*domain.TripRecord) *domain.DayBucket {
	return &domain.DayBucket{Date: date, Trips: trips}
}

func trip(pay, tip, miles float64, minutes int) *domain.TripRecord {
	return &domain.TripRecord{
		Restaurant:      "Unknown",
		TotalPay:        pay,
		Tip:             tip,
		DistanceMiles:   miles,
		DurationMinutes: minutes,
	}
}
