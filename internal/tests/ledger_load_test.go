package tests

import (
	"context"
	"errors"
	"testing"

	"lastmile/internal/domain"
	"lastmile/internal/service"
)

// ──────────────────────────────────────────────
// 1. LEDGER LOAD AND AGGREGATION
// ──────────────────────────────────────────────

func threeTripDay() []domain.RawTripRow {
	return []domain.RawTripRow{
		{
			TimestampStart: "2024-03-01T09:00:00",
			TimestampEnd:   "2024-03-01T09:20:00",
			Restaurant:     "Chipotle",
			NetEarnings:    "10",
			Tips:           "1",
			Distance:       "2",
		},
		{
			TimestampStart: "2024-03-01T12:00:00",
			TimestampEnd:   "2024-03-01T12:30:00",
			Restaurant:     "Panera",
			NetEarnings:    "20",
			Tips:           "5",
			Distance:       "3",
		},
		{
			TimestampStart: "2024-03-01T18:00:00",
			TimestampEnd:   "2024-03-01T18:15:00",
			Restaurant:     "Chipotle",
			NetEarnings:    "15",
			Tips:           "0",
			Distance:       "1",
		},
	}
}

func TestLoad_SingleDayScenario(t *testing.T) {
	t.Parallel()

	source := NewMockTripSource(threeTripDay()...)
	ledgerService := service.NewLedgerService(source, NewMockManualTripRepository())

	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}

	err := ledgerService.Read(func(ledger *domain.Ledger, version uint64) {
		if version == 0 {
			t.Error("expected version to advance on load")
		}
		if len(ledger.Days) != 1 {
			t.Fatalf("expected 1 day, got %d", len(ledger.Days))
		}
		day := ledger.Days[0]
		if day.Date != "2024-03-01" {
			t.Errorf("expected date 2024-03-01, got %s", day.Date)
		}
		if day.Stats.TripCount != 3 {
			t.Errorf("expected 3 trips, got %d", day.Stats.TripCount)
		}
		if day.Stats.TotalEarnings != 45 {
			t.Errorf("expected 45 earnings, got %v", day.Stats.TotalEarnings)
		}
		if day.Stats.TotalTips != 6 {
			t.Errorf("expected 6 tips, got %v", day.Stats.TotalTips)
		}
		if day.Stats.TotalDistance != 6 {
			t.Errorf("expected 6 distance, got %v", day.Stats.TotalDistance)
		}

		// Globals mirror the single day exactly.
		if ledger.Stats.TotalTrips != 3 || ledger.Stats.TotalEarnings != 45 ||
			ledger.Stats.TotalTips != 6 || ledger.Stats.TotalDistance != 6 ||
			ledger.Stats.TotalDays != 1 {
			t.Errorf("globals disagree with day stats: %+v", ledger.Stats)
		}
	})
	if err != nil {
		t.Fatalf("expected read to succeed, got: %v", err)
	}
}

func TestLoad_FetchFailureIsFatal(t *testing.T) {
	t.Parallel()

	source := NewMockTripSource()
	source.FetchError = errors.New("backend unavailable")
	ledgerService := service.NewLedgerService(source, NewMockManualTripRepository())

	err := ledgerService.Load(context.Background())
	if !errors.Is(err, service.ErrLoadFailed) {
		t.Fatalf("expected ErrLoadFailed, got: %v", err)
	}

	// No partial data: the ledger stays unloaded.
	readErr := ledgerService.Read(func(*domain.Ledger, uint64) {})
	if !errors.Is(readErr, service.ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded after failed load, got: %v", readErr)
	}
}

func TestRead_BeforeLoad(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(), NewMockManualTripRepository())
	err := ledgerService.Read(func(*domain.Ledger, uint64) {
		t.Error("callback must not run before load")
	})
	if !errors.Is(err, service.ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got: %v", err)
	}
}

func TestDayDetail(t *testing.T) {
	t.Parallel()

	ledgerService := service.NewLedgerService(NewMockTripSource(threeTripDay()...), NewMockManualTripRepository())
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}

	day, err := ledgerService.DayDetail("2024-03-01")
	if err != nil {
		t.Fatalf("expected day detail, got: %v", err)
	}
	if len(day.Trips) != 3 {
		t.Errorf("expected 3 trips in detail, got %d", len(day.Trips))
	}

	if _, err := ledgerService.DayDetail("2024-01-01"); !errors.Is(err, service.ErrDayNotFound) {
		t.Errorf("expected ErrDayNotFound, got: %v", err)
	}
}
