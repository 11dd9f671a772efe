package domain

// ManualTrip is a user-entered trip together with the day it belongs to, as
// persisted by the manual-trip store. It carries everything needed to
// reconstruct the TripRecord on reload.
type ManualTrip struct {
	ID   string
	Date string // YYYY-MM-DD
	Trip TripRecord
}

// Record returns the trip as an insertable TripRecord, always flagged as a
// manual entry.
func (m *ManualTrip) Record() *TripRecord {
	trip := m.Trip
	trip.ID = m.ID
	trip.ManualEntry = true
	if trip.Restaurant == "" {
		trip.Restaurant = "Unknown"
	}
	return &trip
}
