package stats

import (
	"testing"

	"lastmile/internal/domain"
)

func tripAt(requestTime string, pay float64) *domain.TripRecord {
	return &domain.TripRecord{Restaurant: "Unknown", RequestTime: requestTime, TotalPay: pay}
}

func TestParseHour(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"07:09 PM", 19, true},
		{"12:00 PM", 12, true},
		{"12:30 AM", 0, true},
		{"09:15 AM", 9, true},
		{"14:30", 14, true},
		{"00:05", 0, true},
		{"23:59", 23, true},
		{"24:00", 0, false},
		{"", 0, false},
		{"noonish", 0, false},
	}
	for _, tc := range testCases {
		got, ok := parseHour(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseHour(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHourlyBuckets_Scoring(t *testing.T) {
	t.Parallel()

	// Hour 14 has the most trips; hour 20 the best average pay.
	ledger := testLedger(day("2024-03-01",
		tripAt("09:00 AM", 10),
		tripAt("09:30 AM", 10),
		tripAt("02:00 PM", 12),
		tripAt("02:15 PM", 12),
		tripAt("02:40 PM", 12),
		tripAt("08:00 PM", 30),
	))

	buckets := HourlyBuckets(ledger)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 hour buckets, got %d", len(buckets))
	}

	byHour := make(map[int]HourBucket)
	for _, b := range buckets {
		byHour[b.Hour] = b
	}

	// Hour 14: 3/3 trips, 12/30 avg pay -> 0.5 + 0.2 = 0.7
	if got := byHour[14].Score; !closeTo(got, 0.7) {
		t.Errorf("expected hour 14 score 0.7, got %v", got)
	}
	// Hour 20: 1/3 trips, 30/30 avg pay -> 1/6 + 0.5
	if got := byHour[20].Score; !closeTo(got, 1.0/6+0.5) {
		t.Errorf("expected hour 20 score %v, got %v", 1.0/6+0.5, got)
	}
	// Hour 9: 2/3 trips, 10/30 avg pay -> 1/3 + 1/6 = 0.5
	if got := byHour[9].Score; !closeTo(got, 0.5) {
		t.Errorf("expected hour 9 score 0.5, got %v", got)
	}

	if buckets[0].Hour != 14 {
		t.Errorf("expected hour 14 ranked first, got %d", buckets[0].Hour)
	}
}

func TestHourlyPeaks_MergesContiguousRanges(t *testing.T) {
	t.Parallel()

	// Only hours 9, 10 and 14 appear, so all three are peaks.
	ledger := testLedger(day("2024-03-01",
		tripAt("09:00 AM", 10),
		tripAt("10:00 AM", 10),
		tripAt("02:00 PM", 10),
	))

	peaks := HourlyPeaks(ledger)

	if len(peaks.Ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(peaks.Ranges))
	}
	if peaks.Label != "9a-11a, 2p" {
		t.Errorf("expected label %q, got %q", "9a-11a, 2p", peaks.Label)
	}
	if !closeTo(peaks.TopAvgPay, 10) {
		t.Errorf("expected top avg pay 10, got %v", peaks.TopAvgPay)
	}
}

func TestHourlyPeaks_TopFourOnly(t *testing.T) {
	t.Parallel()

	// Six distinct hours with strictly decreasing trip counts; only the top
	// four may contribute to the peak ranges.
	var trips []*domain.TripRecord
	hours := []string{"06:00 AM", "07:00 AM", "08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM"}
	for i, h := range hours {
		for n := 0; n < len(hours)-i; n++ {
			trips = append(trips, tripAt(h, 10))
		}
	}
	ledger := testLedger(day("2024-03-01", trips...))

	peaks := HourlyPeaks(ledger)

	if len(peaks.Ranges) != 1 {
		t.Fatalf("expected 1 merged range, got %d", len(peaks.Ranges))
	}
	if peaks.Label != "6a-10a" {
		t.Errorf("expected label 6a-10a, got %q", peaks.Label)
	}
}

func TestHourlyPeaks_EmptyLedger(t *testing.T) {
	t.Parallel()

	peaks := HourlyPeaks(testLedger())
	if peaks.Label != "" || len(peaks.Ranges) != 0 {
		t.Errorf("expected empty result, got %+v", peaks)
	}
}

func TestFormatHour(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   int
		want string
	}{
		{0, "12a"},
		{7, "7a"},
		{11, "11a"},
		{12, "12p"},
		{19, "7p"},
		{23, "11p"},
		{24, "12p"}, // exclusive close of an 11p peak
	}
	for _, tc := range testCases {
		if got := formatHour(tc.in); got != tc.want {
			t.Errorf("formatHour(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func closeTo(got, want float64) bool {
	const eps = 1e-9
	diff := got - want
	return diff < eps && diff > -eps
}
