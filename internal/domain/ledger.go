package domain

// DayStats holds the precomputed totals for one day. It is updated
// incrementally on trip insertion and always agrees with the day's trip list.
type DayStats struct {
	TripCount     int
	TotalEarnings float64
	TotalTips     float64
	TotalDistance float64
}

// DayBucket groups all trips sharing one calendar date.
type DayBucket struct {
	Date  string // YYYY-MM-DD
	Trips []*TripRecord
	Stats DayStats
}

// AddTrip appends a trip to the bucket and folds it into the day stats.
func (d *DayBucket) AddTrip(trip *TripRecord) {
	d.Trips = append(d.Trips, trip)
	d.Stats.TripCount++
	d.Stats.TotalEarnings += trip.TotalPay
	d.Stats.TotalTips += trip.Tip
	d.Stats.TotalDistance += trip.DistanceMiles
}

// DaySummary is a value snapshot of one day's totals, safe to hold after
// the ledger lock is released.
type DaySummary struct {
	Date  string // YYYY-MM-DD
	Stats DayStats
}

// Summary snapshots the bucket's date and totals.
func (d *DayBucket) Summary() DaySummary {
	return DaySummary{Date: d.Date, Stats: d.Stats}
}

// GlobalStats holds the all-history totals.
type GlobalStats struct {
	TotalEarnings float64
	TotalTips     float64
	TotalDistance float64
	TotalTrips    int
	TotalDays     int
}

// Ledger is the root aggregate: global stats plus day buckets sorted
// ascending by date with no duplicate dates.
type Ledger struct {
	Stats GlobalStats
	Days  []*DayBucket
}

// Day returns the bucket for the given date, or nil.
func (l *Ledger) Day(date string) *DayBucket {
	for _, d := range l.Days {
		if d.Date == date {
			return d
		}
	}
	return nil
}

// InsertDay places a new bucket at its date-sorted position and bumps the
// day count. The caller guarantees no bucket with that date exists.
func (l *Ledger) InsertDay(day *DayBucket) {
	idx := len(l.Days)
	for i, d := range l.Days {
		if d.Date > day.Date {
			idx = i
			break
		}
	}
	l.Days = append(l.Days, nil)
	copy(l.Days[idx+1:], l.Days[idx:])
	l.Days[idx] = day
	l.Stats.TotalDays++
}

// AddToGlobal folds one trip into the global totals.
func (l *Ledger) AddToGlobal(trip *TripRecord) {
	l.Stats.TotalTrips++
	l.Stats.TotalEarnings += trip.TotalPay
	l.Stats.TotalTips += trip.Tip
	l.Stats.TotalDistance += trip.DistanceMiles
}
