package service

import (
	"context"
	"time"

	"lastmile/internal/domain"
	internalRedis "lastmile/internal/redis"
	"lastmile/internal/stats"
)

// StatsService exposes the statistics engine over the current ledger. Every
// rollup is a pure recomputation; the optional Redis cache short-circuits
// repeat requests at the same data version.
type StatsService struct {
	ledgers *LedgerService
	cache   *internalRedis.RollupCache
}

// NewStatsService creates a new StatsService. cache may be nil.
func NewStatsService(ledgers *LedgerService, cache *internalRedis.RollupCache) *StatsService {
	return &StatsService{ledgers: ledgers, cache: cache}
}

// GlobalStats returns the ledger totals.
func (s *StatsService) GlobalStats() (domain.GlobalStats, error) {
	var out domain.GlobalStats
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		out = l.Stats
	})
	return out, err
}

// Summary returns the all-history averages and the tax estimate.
func (s *StatsService) Summary() (stats.Summary, stats.TaxEstimate, error) {
	var summary stats.Summary
	var tax stats.TaxEstimate
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		summary = stats.Summarize(l)
		tax = stats.EstimateTax(l.Stats)
	})
	return summary, tax, err
}

// Days returns value snapshots of every day bucket, oldest first. Snapshots
// are taken under the ledger lock so they stay stable across later inserts.
func (s *StatsService) Days() ([]domain.DaySummary, error) {
	var out []domain.DaySummary
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		out = make([]domain.DaySummary, len(l.Days))
		for i, d := range l.Days {
			out[i] = d.Summary()
		}
	})
	return out, err
}

// WeekStats sums the Sunday-start week containing the given time.
func (s *StatsService) WeekStats(weekStart time.Time) (stats.WeekRollup, error) {
	var out stats.WeekRollup
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		out = stats.WeekStats(l, stats.WeekStartOf(weekStart))
	})
	return out, err
}

// LatestWeekStats sums the most recent week present in the data.
func (s *StatsService) LatestWeekStats() (stats.WeekRollup, error) {
	var out stats.WeekRollup
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		out = stats.WeekStats(l, stats.LatestWeekStart(l))
	})
	return out, err
}

// Monthly returns the calendar-month rollups, oldest first.
func (s *StatsService) Monthly(ctx context.Context) ([]stats.MonthRollup, error) {
	var cached []stats.MonthRollup
	if s.fromCache(ctx, "monthly", &cached) {
		return cached, nil
	}

	var out []stats.MonthRollup
	var version uint64
	err := s.ledgers.Read(func(l *domain.Ledger, v uint64) {
		out = stats.MonthlyRollup(l)
		version = v
	})
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "monthly", version, out)
	return out, nil
}

// WeekdayTotals returns total earnings and trips per weekday plus the best
// weekday by total earnings.
func (s *StatsService) WeekdayTotals() ([7]stats.WeekdayTotals, stats.WeekdayTotals, error) {
	var totals [7]stats.WeekdayTotals
	var best stats.WeekdayTotals
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		totals = stats.WeekdayTotalsRollup(l)
		best = stats.BestWeekdayByTotal(l)
	})
	return totals, best, err
}

// WeekdayEfficiency returns per-trip averages per weekday plus the best
// weekday by average earnings per trip.
func (s *StatsService) WeekdayEfficiency() ([7]stats.WeekdayEfficiency, stats.WeekdayEfficiency, error) {
	var rollup [7]stats.WeekdayEfficiency
	var best stats.WeekdayEfficiency
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		rollup = stats.WeekdayEfficiencyRollup(l)
		best = stats.BestWeekdayByAvgPerTrip(l)
	})
	return rollup, best, err
}

// HourlyPeaks returns the peak-hours detection result.
func (s *StatsService) HourlyPeaks(ctx context.Context) (stats.PeakHours, error) {
	var cached stats.PeakHours
	if s.fromCache(ctx, "hourly-peaks", &cached) {
		return cached, nil
	}

	var out stats.PeakHours
	var version uint64
	err := s.ledgers.Read(func(l *domain.Ledger, v uint64) {
		out = stats.HourlyPeaks(l)
		version = v
	})
	if err != nil {
		return stats.PeakHours{}, err
	}
	s.toCache(ctx, "hourly-peaks", version, out)
	return out, nil
}

// Efficiency returns the trip efficiency report, with the trip list cut to
// the given category filter ("all" keeps everything).
func (s *StatsService) Efficiency(ctx context.Context, filter string) (stats.EfficiencyReport, error) {
	report, err := s.efficiencyReport(ctx)
	if err != nil {
		return stats.EfficiencyReport{}, err
	}
	report.Trips = stats.FilterTrips(report.Trips, filter)
	return report, nil
}

func (s *StatsService) efficiencyReport(ctx context.Context) (stats.EfficiencyReport, error) {
	var cached stats.EfficiencyReport
	if s.fromCache(ctx, "efficiency", &cached) {
		return cached, nil
	}

	var out stats.EfficiencyReport
	var version uint64
	err := s.ledgers.Read(func(l *domain.Ledger, v uint64) {
		out = stats.Efficiency(l)
		version = v
	})
	if err != nil {
		return stats.EfficiencyReport{}, err
	}
	s.toCache(ctx, "efficiency", version, out)
	return out, nil
}

// RestaurantRankings bundles the three restaurant top-N lists.
type RestaurantRankings struct {
	BestTippers  []stats.RestaurantStats
	MostFrequent []stats.RestaurantStats
	BestValue    []stats.RestaurantStats
}

// Restaurants returns the restaurant intelligence rankings.
func (s *StatsService) Restaurants(ctx context.Context) (RestaurantRankings, error) {
	var cached RestaurantRankings
	if s.fromCache(ctx, "restaurants", &cached) {
		return cached, nil
	}

	var out RestaurantRankings
	var version uint64
	err := s.ledgers.Read(func(l *domain.Ledger, v uint64) {
		out = RestaurantRankings{
			BestTippers:  stats.BestTippers(l),
			MostFrequent: stats.MostFrequent(l),
			BestValue:    stats.BestValue(l),
		}
		version = v
	})
	if err != nil {
		return RestaurantRankings{}, err
	}
	s.toCache(ctx, "restaurants", version, out)
	return out, nil
}

// TopDays returns the n highest-earning days.
func (s *StatsService) TopDays(n int) ([]stats.RankedDay, error) {
	var out []stats.RankedDay
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		out = stats.TopDays(l, n)
	})
	return out, err
}

// Insights returns the headline findings block.
func (s *StatsService) Insights() (stats.Insights, error) {
	var out stats.Insights
	err := s.ledgers.Read(func(l *domain.Ledger, _ uint64) {
		out = stats.BuildInsights(l)
	})
	return out, err
}

// fromCache loads a cached rollup for the current version. Cache errors are
// swallowed; the caller recomputes.
func (s *StatsService) fromCache(ctx context.Context, name string, dest any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, name, s.ledgers.Version(), dest)
	return err == nil && ok
}

// toCache stores a rollup; failures are ignored since the cache is purely
// an optimization.
func (s *StatsService) toCache(ctx context.Context, name string, version uint64, value any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, name, version, value)
}
