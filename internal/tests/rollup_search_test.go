package tests

import (
	"context"
	"fmt"
	"testing"

	"lastmile/internal/domain"
	"lastmile/internal/service"
)

// ──────────────────────────────────────────────
// 3. ROLLUPS AND SEARCH OVER A LOADED LEDGER
// ──────────────────────────────────────────────

func twoDayHistory() []domain.RawTripRow {
	rows := threeTripDay()
	return append(rows, domain.RawTripRow{
		TimestampStart: "2024-03-02T11:00:00",
		TimestampEnd:   "2024-03-02T11:30:00",
		Restaurant:     "Wendy's",
		NetEarnings:    "30",
		Tips:           "10",
		Distance:       "5",
	})
}

func TestStatsService_GlobalAndSummary(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(twoDayHistory()...), NewMockManualTripRepository())
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}

	// No cache wired; every call recomputes from the ledger.
	statsService := service.NewStatsService(ledgerService, nil)

	global, err := statsService.GlobalStats()
	if err != nil {
		t.Fatalf("expected global stats, got: %v", err)
	}
	if global.TotalTrips != 4 || global.TotalEarnings != 75 ||
		global.TotalTips != 16 || global.TotalDistance != 11 || global.TotalDays != 2 {
		t.Errorf("unexpected global stats: %+v", global)
	}

	summary, tax, err := statsService.Summary()
	if err != nil {
		t.Fatalf("expected summary, got: %v", err)
	}
	if summary.AvgPerTrip != 18.75 {
		t.Errorf("expected 18.75 avg per trip, got %v", summary.AvgPerTrip)
	}
	if summary.AvgPerDay != 37.5 {
		t.Errorf("expected 37.5 avg per day, got %v", summary.AvgPerDay)
	}
	// 11 miles at the mileage rate against 75 gross.
	miles := 11.0
	wantDeduction := miles * 0.67
	if tax.MileageDeduction != wantDeduction || tax.TaxableIncome != 75-wantDeduction {
		t.Errorf("unexpected tax estimate: %+v", tax)
	}
}

func TestStatsService_RecomputesAfterManualInsert(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(twoDayHistory()...), NewMockManualTripRepository())
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}
	statsService := service.NewStatsService(ledgerService, nil)

	before, err := statsService.GlobalStats()
	if err != nil {
		t.Fatalf("expected global stats, got: %v", err)
	}

	_, err = ledgerService.InsertManualTrip(context.Background(), service.InsertManualTripRequest{
		Date:            "2024-03-03",
		Restaurant:      "Wingstop",
		RequestTime:     "20:00",
		DurationMinutes: 18,
		DistanceMiles:   2,
		BaseFare:        12,
		Tip:             4,
	})
	if err != nil {
		t.Fatalf("expected manual insert to succeed, got: %v", err)
	}

	after, err := statsService.GlobalStats()
	if err != nil {
		t.Fatalf("expected global stats, got: %v", err)
	}
	if after.TotalTrips != before.TotalTrips+1 {
		t.Errorf("expected trip count to grow by 1, got %d -> %d", before.TotalTrips, after.TotalTrips)
	}
	if after.TotalEarnings != before.TotalEarnings+16 {
		t.Errorf("expected earnings to grow by 16, got %v -> %v", before.TotalEarnings, after.TotalEarnings)
	}
	if after.TotalDays != before.TotalDays+1 {
		t.Errorf("expected a new day bucket, got %d -> %d", before.TotalDays, after.TotalDays)
	}
}

func TestReadPaths_DoNotAliasTheLiveLedger(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(twoDayHistory()...), NewMockManualTripRepository())
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}
	statsService := service.NewStatsService(ledgerService, nil)
	searchService := service.NewSearchService(ledgerService)

	daysBefore, err := statsService.Days()
	if err != nil {
		t.Fatalf("expected days, got: %v", err)
	}
	_, resultBefore, err := searchService.Search("chipotle")
	if err != nil {
		t.Fatalf("expected search to succeed, got: %v", err)
	}

	// Grow the first day in place; snapshots taken above must not move.
	_, err = ledgerService.InsertManualTrip(context.Background(), service.InsertManualTripRequest{
		Date:            "2024-03-01",
		Restaurant:      "Chipotle",
		RequestTime:     "21:00",
		DurationMinutes: 20,
		DistanceMiles:   3,
		BaseFare:        10,
		Tip:             2,
	})
	if err != nil {
		t.Fatalf("expected manual insert to succeed, got: %v", err)
	}

	if daysBefore[0].Stats.TripCount != 3 || daysBefore[0].Stats.TotalEarnings != 45 {
		t.Errorf("day summary changed under the caller: %+v", daysBefore[0].Stats)
	}
	if resultBefore.Days[0].Stats.TripCount != 3 || resultBefore.Days[0].Stats.TotalEarnings != 45 {
		t.Errorf("search result changed under the caller: %+v", resultBefore.Days[0].Stats)
	}
}

func TestReadPaths_ConcurrentWithInserts(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(twoDayHistory()...), NewMockManualTripRepository())
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}
	statsService := service.NewStatsService(ledgerService, nil)
	searchService := service.NewSearchService(ledgerService)

	done := make(chan error, 1)
	go func() {
		for i := 0; i < 20; i++ {
			_, err := ledgerService.InsertManualTrip(context.Background(), service.InsertManualTripRequest{
				Date:            "2024-03-01",
				Restaurant:      "Chipotle",
				RequestTime:     fmt.Sprintf("21:%02d", i),
				DurationMinutes: 20,
				DistanceMiles:   1,
				BaseFare:        5,
			})
			if err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for i := 0; i < 20; i++ {
		days, err := statsService.Days()
		if err != nil {
			t.Fatalf("expected days, got: %v", err)
		}
		for _, d := range days {
			if d.Stats.TripCount < 1 {
				t.Errorf("day %s read with no trips", d.Date)
			}
		}
		if _, _, err := searchService.Search("chipotle"); err != nil {
			t.Fatalf("expected search to succeed, got: %v", err)
		}
	}

	if err := <-done; err != nil {
		t.Fatalf("expected inserts to succeed, got: %v", err)
	}
}

func TestSearchService_FiltersDays(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(twoDayHistory()...), NewMockManualTripRepository())
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}
	searchService := service.NewSearchService(ledgerService)

	_, result, err := searchService.Search("chipotle")
	if err != nil {
		t.Fatalf("expected search to succeed, got: %v", err)
	}
	if result.Count != 1 || result.TotalEarnings != 45 {
		t.Errorf("expected the Chipotle day only, got count=%d earnings=%v", result.Count, result.TotalEarnings)
	}
	if len(result.Days) != 1 || result.Days[0].Date != "2024-03-01" {
		t.Errorf("expected 2024-03-01 to match, got %+v", result.Days)
	}

	predicate, result, err := searchService.Search("over 40")
	if err != nil {
		t.Fatalf("expected search to succeed, got: %v", err)
	}
	if predicate.MinEarnings != 40 {
		t.Errorf("expected min earnings 40, got %v", predicate.MinEarnings)
	}
	if result.Count != 1 || result.Days[0].Date != "2024-03-01" {
		t.Errorf("expected only the 45-dollar day over 40, got %+v", result)
	}

	_, result, err = searchService.Search("   ")
	if err != nil {
		t.Fatalf("expected blank search to succeed, got: %v", err)
	}
	if result.Count != 2 || result.TotalEarnings != 75 {
		t.Errorf("expected blank query to match everything, got count=%d earnings=%v", result.Count, result.TotalEarnings)
	}
}

func TestSearchService_ReindexesAfterInsert(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(twoDayHistory()...), NewMockManualTripRepository())
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}
	searchService := service.NewSearchService(ledgerService)

	_, result, err := searchService.Search("wingstop")
	if err != nil {
		t.Fatalf("expected search to succeed, got: %v", err)
	}
	if result.Count != 0 {
		t.Fatalf("expected no Wingstop days before insert, got %d", result.Count)
	}

	_, err = ledgerService.InsertManualTrip(context.Background(), service.InsertManualTripRequest{
		Date:            "2024-03-03",
		Restaurant:      "Wingstop",
		RequestTime:     "20:00",
		DurationMinutes: 18,
		DistanceMiles:   2,
		BaseFare:        12,
		Tip:             4,
	})
	if err != nil {
		t.Fatalf("expected manual insert to succeed, got: %v", err)
	}

	// The index is rebuilt lazily off the ledger version.
	_, result, err = searchService.Search("wingstop")
	if err != nil {
		t.Fatalf("expected search to succeed, got: %v", err)
	}
	if result.Count != 1 || result.Days[0].Date != "2024-03-03" {
		t.Errorf("expected the inserted day to match, got %+v", result)
	}
}
