package ingest

import (
	"testing"

	"lastmile/internal/domain"
)

func TestNormalizeRow_FullRow(t *testing.T) {
	t.Parallel()

	row := domain.RawTripRow{
		TripID:         "row-1",
		ExternalTripID: "ext-1",
		TimestampStart: "2024-03-01T19:09:00",
		TimestampEnd:   "2024-03-01T19:31:00",
		Restaurant:     "Chipotle",
		PickupAddress:  "100 Main St, Springfield, IL",
		DropoffAddress: "42 Oak Ave, Apt 3, Springfield, IL",
		Distance:       "3.2",
		NetEarnings:    "$14.50",
		Tips:           "4.00",
		BaseFare:       "8.50",
		Bonuses:        "2.00",
		PickupLng:      "-89.65",
		PickupLat:      "39.78",
	}

	trip, date, err := NormalizeRow(row)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if date != "2024-03-01" {
		t.Errorf("expected date 2024-03-01, got %s", date)
	}
	if trip.ID != "ext-1" {
		t.Errorf("expected external ID to win, got %s", trip.ID)
	}
	if trip.RequestTime != "07:09 PM" {
		t.Errorf("expected request time 07:09 PM, got %s", trip.RequestTime)
	}
	if trip.DropoffTime != "07:31 PM" {
		t.Errorf("expected dropoff time 07:31 PM, got %s", trip.DropoffTime)
	}
	if trip.DurationMinutes != 22 {
		t.Errorf("expected 22 minute duration, got %d", trip.DurationMinutes)
	}
	if trip.TotalPay != 14.50 {
		t.Errorf("expected total pay 14.50, got %v", trip.TotalPay)
	}
	if trip.Tip != 4.00 {
		t.Errorf("expected tip 4.00, got %v", trip.Tip)
	}
	if trip.PickupCoords == nil || trip.PickupCoords.Lat != 39.78 {
		t.Errorf("expected pickup coords to be parsed, got %+v", trip.PickupCoords)
	}
	if trip.DropoffCoords != nil {
		t.Errorf("expected nil dropoff coords, got %+v", trip.DropoffCoords)
	}
	if trip.ManualEntry {
		t.Error("imported rows must not be flagged as manual entries")
	}
}

func TestNormalizeRow_BadStartTimestamp_Fails(t *testing.T) {
	t.Parallel()

	testCases := []string{"", "not-a-date", "03/01/2024"}
	for _, ts := range testCases {
		row := domain.RawTripRow{TimestampStart: ts}
		if _, _, err := NormalizeRow(row); err == nil {
			t.Errorf("expected error for start timestamp %q", ts)
		}
	}
}

func TestNormalizeRow_Defaults(t *testing.T) {
	t.Parallel()

	row := domain.RawTripRow{
		TripID:         "row-2",
		TimestampStart: "2024-03-02 08:00:00",
		TimestampEnd:   "garbage",
		NetEarnings:    "not-a-number",
		Tips:           "-3",
		Distance:       "",
	}

	trip, date, err := NormalizeRow(row)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if date != "2024-03-02" {
		t.Errorf("expected date 2024-03-02, got %s", date)
	}
	if trip.Restaurant != "Unknown" {
		t.Errorf("expected Unknown restaurant, got %q", trip.Restaurant)
	}
	if trip.ID != "row-2" {
		t.Errorf("expected fallback to internal ID, got %s", trip.ID)
	}
	if trip.TotalPay != 0 {
		t.Errorf("expected unparseable earnings to become 0, got %v", trip.TotalPay)
	}
	if trip.Tip != 0 {
		t.Errorf("expected negative tip clamped to 0, got %v", trip.Tip)
	}
	if trip.DurationMinutes != 0 {
		t.Errorf("expected unknown duration to stay 0, got %d", trip.DurationMinutes)
	}
	if trip.DropoffTime != "" {
		t.Errorf("expected empty dropoff time, got %q", trip.DropoffTime)
	}
}

func TestNormalizeRow_WhitespaceTimestampKeepsCleanDateKey(t *testing.T) {
	t.Parallel()

	// Leading whitespace parses fine after trimming; the date key must
	// come from the parsed time, not a slice of the raw string.
	trip, date, err := NormalizeRow(domain.RawTripRow{
		TimestampStart: "  2024-03-01T09:00:00",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if date != "2024-03-01" {
		t.Errorf("expected date 2024-03-01, got %q", date)
	}
	if trip.RequestTime != "09:00 AM" {
		t.Errorf("expected request time 09:00 AM, got %q", trip.RequestTime)
	}
}

func TestNormalizeRow_NegativeDurationClamped(t *testing.T) {
	t.Parallel()

	row := domain.RawTripRow{
		TimestampStart: "2024-03-01T10:30:00",
		TimestampEnd:   "2024-03-01T10:00:00", // ends before it starts
	}

	trip, _, err := NormalizeRow(row)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if trip.DurationMinutes != 0 {
		t.Errorf("expected non-positive duration clamped to 0, got %d", trip.DurationMinutes)
	}
}

func TestFormatClock_Midnight(t *testing.T) {
	t.Parallel()

	row := domain.RawTripRow{TimestampStart: "2024-03-01T00:05:00"}
	trip, _, err := NormalizeRow(row)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if trip.RequestTime != "12:05 AM" {
		t.Errorf("expected 12:05 AM, got %s", trip.RequestTime)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want float64
	}{
		{"14.50", 14.50},
		{"$14.50", 14.50},
		{"1,234.56", 1234.56},
		{"  7 ", 7},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range testCases {
		if got := parseAmount(tc.in); got != tc.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDurationMinutes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want int
	}{
		{"39 min", 39},
		{"39min", 39},
		{"1h 12m", 72},
		{"2h", 120},
		{"", 0},
		{"soon", 0},
	}
	for _, tc := range testCases {
		if got := ParseDurationMinutes(tc.in); got != tc.want {
			t.Errorf("ParseDurationMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
