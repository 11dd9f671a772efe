package ingest

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"lastmile/internal/domain"
)

// timestampLayouts are the accepted forms for raw trip timestamps. Layouts
// without a zone are interpreted in local time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeRow converts a raw trip row into a canonical TripRecord and its
// grouping date (YYYY-MM-DD). It fails only when the start timestamp is
// missing or unparseable, since the date key depends on it; every other
// malformed field degrades to a zero value.
func NormalizeRow(row domain.RawTripRow) (*domain.TripRecord, string, error) {
	start, err := parseTimestamp(row.TimestampStart)
	if err != nil {
		return nil, "", fmt.Errorf("bad start timestamp %q: %w", row.TimestampStart, err)
	}

	// Date portion of the start timestamp is the grouping key. Derived
	// from the parsed time so stray whitespace in the raw string cannot
	// shift the slice.
	date := start.Format("2006-01-02")

	trip := &domain.TripRecord{
		ID:             firstNonEmpty(row.ExternalTripID, row.TripID),
		Restaurant:     firstNonEmpty(row.Restaurant, "Unknown"),
		PickupAddress:  row.PickupAddress,
		DropoffAddress: row.DropoffAddress,
		RequestTime:    formatClock(start),
		DistanceMiles:  clampNonNegative(parseAmount(row.Distance)),
		TotalPay:       clampNonNegative(parseAmount(row.NetEarnings)),
		BaseFare:       parseAmount(row.BaseFare),
		Tip:            clampNonNegative(parseAmount(row.Tips)),
		Incentive:      parseAmount(row.Bonuses),
		OrderRefund:    parseAmount(row.Fees),
		ServiceType:    row.ServiceType,
		ProductType:    row.ProductType,
		PickupCoords:   parseCoords(row.PickupLng, row.PickupLat),
		DropoffCoords:  parseCoords(row.DropoffLng, row.DropoffLat),
	}

	if end, endErr := parseTimestamp(row.TimestampEnd); endErr == nil {
		trip.DropoffTime = formatClock(end)
		minutes := int(math.Round(end.Sub(start).Minutes()))
		if minutes > 0 {
			trip.DurationMinutes = minutes
		}
	}

	return trip, date, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// formatClock renders a time as a padded 12-hour clock, e.g. "07:09 PM".
func formatClock(t time.Time) string {
	hour := t.Hour()
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d %s", display, t.Minute(), ampm)
}

// parseAmount parses a numeric-or-string source field, returning 0 on any
// failure. Currency symbols and thousands separators are tolerated.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func parseCoords(lng, lat string) *domain.Coords {
	if strings.TrimSpace(lng) == "" || strings.TrimSpace(lat) == "" {
		return nil
	}
	lngV, err1 := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	latV, err2 := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &domain.Coords{Lng: lngV, Lat: latV}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var (
	hourMinutePattern = regexp.MustCompile(`(\d+)h\s*(\d+)?m?`)
	minutePattern     = regexp.MustCompile(`(\d+)\s*min`)
)

// ParseDurationMinutes parses a human duration like "39 min" or "1h 12m"
// into whole minutes, returning 0 when the form is unrecognized. Used for
// manually entered trips, which may carry either form.
func ParseDurationMinutes(s string) int {
	if s == "" {
		return 0
	}
	if m := hourMinutePattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		mins := 0
		if m[2] != "" {
			mins, _ = strconv.Atoi(m[2])
		}
		return hours*60 + mins
	}
	if m := minutePattern.FindStringSubmatch(s); m != nil {
		mins, _ := strconv.Atoi(m[1])
		return mins
	}
	return 0
}
