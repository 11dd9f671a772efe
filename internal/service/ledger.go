package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"lastmile/internal/domain"
	"lastmile/internal/ingest"
	"lastmile/internal/repository"
)

// LedgerService owns the in-memory trip ledger. It is built once from the
// full trip source fetch, then mutated only through InsertManualTrip and
// LoadPersistedTrips. Reads run under a shared lock; the two mutation paths
// are serialized behind the write lock since an insertion touches a day
// bucket and the global stats non-atomically.
type LedgerService struct {
	source     repository.TripSource
	manualRepo repository.ManualTripRepository

	mu      sync.RWMutex
	ledger  *domain.Ledger
	version uint64
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(source repository.TripSource, manualRepo repository.ManualTripRepository) *LedgerService {
	return &LedgerService{source: source, manualRepo: manualRepo}
}

// Load fetches the full trip history, aggregates it into a fresh ledger,
// and folds in any persisted manual trips. A fetch failure abandons the
// whole aggregation.
func (s *LedgerService) Load(ctx context.Context) error {
	rows, err := s.source.FetchAllTrips(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	ledger := ingest.BuildLedger(rows)

	s.mu.Lock()
	s.ledger = ledger
	s.version++
	s.mu.Unlock()

	if s.manualRepo != nil {
		if _, err := s.LoadPersistedTrips(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Read runs fn against the current ledger and its data version under the
// shared lock. fn must not mutate the ledger or retain it past the call.
func (s *LedgerService) Read(fn func(ledger *domain.Ledger, version uint64)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ledger == nil {
		return ErrNotLoaded
	}
	fn(s.ledger, s.version)
	return nil
}

// Version returns the current data version. The version increases on every
// mutation and keys the rollup cache.
func (s *LedgerService) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// InsertManualTripRequest contains the parameters for a user-entered trip.
type InsertManualTripRequest struct {
	Date            string // YYYY-MM-DD
	Restaurant      string
	PickupAddress   string
	DropoffAddress  string
	RequestTime     string
	DurationMinutes int
	DistanceMiles   float64
	BaseFare        float64
	Tip             float64
	Incentive       float64
}

// InsertManualTrip validates, persists, and merges a user-entered trip into
// the ledger at its date-sorted position. Total pay for a manual entry is
// the sum of its components; there is no separate net-earnings figure.
func (s *LedgerService) InsertManualTrip(ctx context.Context, req InsertManualTripRequest) (*domain.ManualTrip, error) {
	if _, err := time.ParseInLocation("2006-01-02", req.Date, time.Local); err != nil {
		return nil, ErrInvalidTripDate
	}
	if req.Restaurant == "" {
		return nil, ErrInvalidRestaurant
	}
	if req.BaseFare < 0 || req.Tip < 0 || req.Incentive < 0 || req.DistanceMiles < 0 {
		return nil, ErrInvalidAmount
	}

	manual := &domain.ManualTrip{
		ID:   uuid.New().String(),
		Date: req.Date,
		Trip: domain.TripRecord{
			Restaurant:      req.Restaurant,
			PickupAddress:   req.PickupAddress,
			DropoffAddress:  req.DropoffAddress,
			RequestTime:     req.RequestTime,
			DropoffTime:     req.RequestTime,
			DurationMinutes: req.DurationMinutes,
			DistanceMiles:   req.DistanceMiles,
			BaseFare:        req.BaseFare,
			Tip:             req.Tip,
			Incentive:       req.Incentive,
			TotalPay:        req.BaseFare + req.Tip + req.Incentive,
			ManualEntry:     true,
		},
	}

	// Persist first so a storage failure never leaves the ledger holding a
	// trip that would vanish on reload.
	if s.manualRepo != nil {
		if err := s.manualRepo.Save(ctx, manual); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger == nil {
		return nil, ErrNotLoaded
	}
	ingest.Insert(s.ledger, manual.Date, manual.Record())
	s.version++

	return manual, nil
}

// LoadPersistedTrips fetches all persisted manual trips and merges the ones
// not already present. Reloading the same set twice never double-counts:
// a manual trip is identified by its (date, request time, restaurant) tuple.
func (s *LedgerService) LoadPersistedTrips(ctx context.Context) (int, error) {
	trips, err := s.manualRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return s.ApplyPersistedTrips(trips)
}

// ApplyPersistedTrips merges previously persisted manual trips into the
// ledger, skipping duplicates. Returns how many were inserted.
func (s *LedgerService) ApplyPersistedTrips(trips []*domain.ManualTrip) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger == nil {
		return 0, ErrNotLoaded
	}

	added := 0
	for _, manual := range trips {
		if day := s.ledger.Day(manual.Date); day != nil && containsManualTrip(day, manual) {
			continue
		}
		ingest.Insert(s.ledger, manual.Date, manual.Record())
		added++
	}
	if added > 0 {
		s.version++
	}
	return added, nil
}

// containsManualTrip reports whether the day already holds a manual trip
// with the same request time and restaurant.
func containsManualTrip(day *domain.DayBucket, manual *domain.ManualTrip) bool {
	for _, t := range day.Trips {
		if t.ManualEntry && t.RequestTime == manual.Trip.RequestTime && t.Restaurant == manual.Trip.Restaurant {
			return true
		}
	}
	return false
}

// DayDetail returns a copy-safe view of one day bucket.
func (s *LedgerService) DayDetail(date string) (*domain.DayBucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ledger == nil {
		return nil, ErrNotLoaded
	}
	day := s.ledger.Day(date)
	if day == nil {
		return nil, ErrDayNotFound
	}

	detail := &domain.DayBucket{Date: day.Date, Stats: day.Stats}
	detail.Trips = append(detail.Trips, day.Trips...)
	return detail, nil
}
