package stats

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lastmile/internal/domain"
)

// HourBucket aggregates trips requested within one hour of the day.
type HourBucket struct {
	Hour     int // 0..23
	Trips    int
	Earnings float64
	AvgPay   float64
	Score    float64 // blended frequency + avg pay, 0..1
}

// HourRange is a contiguous run of peak hours.
type HourRange struct {
	Start int
	End   int // last included hour
}

// PeakHours is the hourly peak detection result.
type PeakHours struct {
	Ranges    []HourRange
	Label     string  // e.g. "9a-11a, 2p"
	TopAvgPay float64 // average pay per trip across the top-scoring hours
	Buckets   []HourBucket
}

var clockPattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)`)

// parseHour extracts a 24-hour bucket from a request time. Both the
// normalizer's "hh:mm AM/PM" form and a bare 24-hour "HH:mm" form are
// accepted; the latter covers manually entered trips.
func parseHour(requestTime string) (int, bool) {
	s := strings.TrimSpace(requestTime)
	if s == "" {
		return 0, false
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return 0, false
		}
		isPM := strings.EqualFold(m[3], "PM")
		if isPM && hour != 12 {
			hour += 12
		}
		if !isPM && hour == 12 {
			hour = 0
		}
		return hour, true
	}

	head, _, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// HourlyBuckets aggregates all trips into hour-of-day buckets and scores
// each one. Score = 0.5*(trips/maxTrips) + 0.5*(avgPay/maxAvgPay). Buckets
// are returned sorted by score, best first.
func HourlyBuckets(ledger *domain.Ledger) []HourBucket {
	byHour := make(map[int]*HourBucket)
	for _, day := range ledger.Days {
		for _, trip := range day.Trips {
			hour, ok := parseHour(trip.RequestTime)
			if !ok {
				continue
			}
			b, exists := byHour[hour]
			if !exists {
				b = &HourBucket{Hour: hour}
				byHour[hour] = b
			}
			b.Trips++
			b.Earnings += trip.TotalPay
		}
	}

	buckets := make([]HourBucket, 0, len(byHour))
	var maxTrips int
	var maxAvgPay float64
	for _, b := range byHour {
		b.AvgPay = safeDiv(b.Earnings, float64(b.Trips))
		if b.Trips > maxTrips {
			maxTrips = b.Trips
		}
		if b.AvgPay > maxAvgPay {
			maxAvgPay = b.AvgPay
		}
		buckets = append(buckets, *b)
	}

	for i := range buckets {
		buckets[i].Score = safeDiv(float64(buckets[i].Trips), float64(maxTrips))*0.5 +
			safeDiv(buckets[i].AvgPay, maxAvgPay)*0.5
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Score != buckets[j].Score {
			return buckets[i].Score > buckets[j].Score
		}
		return buckets[i].Hour < buckets[j].Hour
	})
	return buckets
}

// HourlyPeaks selects the top 4 scoring hours and merges them into
// contiguous display ranges.
func HourlyPeaks(ledger *domain.Ledger) PeakHours {
	buckets := HourlyBuckets(ledger)
	if len(buckets) == 0 {
		return PeakHours{}
	}

	top := len(buckets)
	if top > 4 {
		top = 4
	}

	hours := make([]int, top)
	var paySum float64
	for i := 0; i < top; i++ {
		hours[i] = buckets[i].Hour
		paySum += buckets[i].AvgPay
	}
	sort.Ints(hours)

	ranges := mergeContiguous(hours)
	labels := make([]string, len(ranges))
	for i, r := range ranges {
		labels[i] = formatRange(r)
	}

	return PeakHours{
		Ranges:    ranges,
		Label:     strings.Join(labels, ", "),
		TopAvgPay: paySum / float64(top),
		Buckets:   buckets,
	}
}

// mergeContiguous collapses consecutive hours into ranges; input must be
// sorted ascending.
func mergeContiguous(hours []int) []HourRange {
	if len(hours) == 0 {
		return nil
	}
	ranges := []HourRange{{Start: hours[0], End: hours[0]}}
	for _, h := range hours[1:] {
		last := &ranges[len(ranges)-1]
		if h == last.End+1 {
			last.End = h
			continue
		}
		ranges = append(ranges, HourRange{Start: h, End: h})
	}
	return ranges
}

// formatRange renders a range as "7a" or "7a-9a". The upper endpoint is
// displayed as End+1: the exclusive close of the last included hour.
func formatRange(r HourRange) string {
	if r.Start == r.End {
		return formatHour(r.Start)
	}
	return formatHour(r.Start) + "-" + formatHour(r.End+1)
}

func formatHour(h int) string {
	ampm := "a"
	if h >= 12 {
		ampm = "p"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d%s", display, ampm)
}
